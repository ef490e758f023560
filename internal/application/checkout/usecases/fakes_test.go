package usecases

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"paygate/internal/domain/order"
	vo "paygate/internal/domain/order/valueobjects"
	"paygate/internal/infrastructure/checkout/encoding"
	"paygate/internal/infrastructure/checkout/rsacrypt"
	apperrors "paygate/internal/shared/errors"
	"paygate/internal/shared/logger"
)

const testCallbackKey = "aB3dE5fG7hJ9kL1mN3pQ5rS7tU9vW1xY"

type memoryOrderRepo struct {
	mu      sync.Mutex
	orders  map[uint]*order.Order
	updates int
}

func newMemoryOrderRepo() *memoryOrderRepo {
	return &memoryOrderRepo{orders: make(map[uint]*order.Order)}
}

func (r *memoryOrderRepo) Create(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID() == 0 {
		o.SetID(uint(len(r.orders) + 1))
	}
	r.orders[o.ID()] = o
	return nil
}

func (r *memoryOrderRepo) Update(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID()]; !ok {
		return apperrors.NewNotFoundError("order not found")
	}
	r.orders[o.ID()] = o
	r.updates++
	return nil
}

func (r *memoryOrderRepo) GetByID(_ context.Context, id uint) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("order not found")
	}
	return o, nil
}

func (r *memoryOrderRepo) updateCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates
}

type memorySettingStore struct {
	mu          sync.Mutex
	values      map[string]string
	callbackKey string
}

func newMemorySettingStore() *memorySettingStore {
	return &memorySettingStore{
		values:      make(map[string]string),
		callbackKey: testCallbackKey,
	}
}

func (s *memorySettingStore) Get(_ context.Context, key, defaultValue string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return defaultValue, nil
}

func (s *memorySettingStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memorySettingStore) GetOrCreateCallbackKey(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callbackKey, nil
}

type staticRedirects struct{}

func (staticRedirects) OrderReceivedURL(o *order.Order) string {
	return fmt.Sprintf("https://shop.example/checkout/order-received/%s", o.Number())
}

func (staticRedirects) OrderPaymentRetryURL(o *order.Order) string {
	return fmt.Sprintf("https://shop.example/checkout/order-pay/%s", o.Number())
}

type recordingNotifier struct {
	ch chan PaidOrderNotification
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{ch: make(chan PaidOrderNotification, 1)}
}

func (n *recordingNotifier) NotifyOrderPaid(_ context.Context, notification PaidOrderNotification) error {
	n.ch <- notification
	return nil
}

// callbackKeyPair generates the merchant key pair for the inbound direction:
// tests encrypt with the public key the way the gateway does, the use case
// decrypts with the private PEM from config.
func callbackKeyPair(t *testing.T) (privPEM string, pub *rsa.PublicKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	privPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER}))
	return privPEM, &key.PublicKey
}

func makeCallbackToken(t *testing.T, pub *rsa.PublicKey, payload interface{}) string {
	t.Helper()

	plaintext, err := json.Marshal(payload)
	require.NoError(t, err)

	ciphertext, err := rsacrypt.Encrypt(pub, plaintext)
	require.NoError(t, err)

	return encoding.Encode(ciphertext)
}

func seedOrder(t *testing.T, repo *memoryOrderRepo, id uint, number string, cents int64) *order.Order {
	t.Helper()

	o, err := order.NewOrder(number, vo.NewMoney(cents, "GYD"))
	require.NoError(t, err)
	o.SetID(id)
	require.NoError(t, repo.Create(context.Background(), o))
	return o
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

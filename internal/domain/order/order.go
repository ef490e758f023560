package order

import (
	"fmt"
	"time"

	vo "paygate/internal/domain/order/valueobjects"
	"paygate/internal/shared/biztime"
)

// Note is a timestamped audit entry on an order.
type Note struct {
	At   time.Time
	Text string
}

type Order struct {
	id     uint
	number string
	amount vo.Money
	status vo.OrderStatus

	transactionID *string
	notes         []Note
	metadata      map[string]interface{}

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewOrder(number string, amount vo.Money) (*Order, error) {
	if number == "" {
		return nil, fmt.Errorf("order number is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}

	now := biztime.NowUTC()
	return &Order{
		number:    number,
		amount:    amount,
		status:    vo.OrderStatusPending,
		metadata:  make(map[string]interface{}),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// MarkAsPaid transitions the order to completed and records the processor
// transaction id. Calling it on an already-completed order is a no-op so a
// replayed callback cannot double-apply the paid side effects.
func (o *Order) MarkAsPaid(transactionID string) error {
	if o.status == vo.OrderStatusCompleted {
		return nil
	}

	if o.status.IsTerminal() {
		return fmt.Errorf("cannot mark order as paid with status %s", o.status)
	}

	now := biztime.NowUTC()
	o.status = vo.OrderStatusCompleted
	o.transactionID = &transactionID
	o.updatedAt = now
	o.version++

	return nil
}

// Fail transitions the order to failed and records the reason.
func (o *Order) Fail(reason string) error {
	if o.status.IsTerminal() {
		return fmt.Errorf("cannot mark order as failed with terminal status %s", o.status)
	}

	o.status = vo.OrderStatusFailed
	o.metadata["failure_reason"] = reason
	o.updatedAt = biztime.NowUTC()
	o.version++

	return nil
}

// Cancel transitions the order to cancelled and records the reason.
func (o *Order) Cancel(reason string) error {
	if o.status.IsTerminal() {
		return fmt.Errorf("cannot cancel order with terminal status %s", o.status)
	}

	o.status = vo.OrderStatusCancelled
	o.metadata["cancel_reason"] = reason
	o.updatedAt = biztime.NowUTC()
	o.version++

	return nil
}

// MarkProcessing transitions a pending order to processing, used when the
// shopper is handed off to the hosted payment page.
func (o *Order) MarkProcessing() error {
	if o.status.IsTerminal() {
		return fmt.Errorf("cannot mark order as processing with terminal status %s", o.status)
	}
	if o.status == vo.OrderStatusProcessing {
		return nil
	}

	o.status = vo.OrderStatusProcessing
	o.updatedAt = biztime.NowUTC()
	o.version++

	return nil
}

// AddNote appends a timestamped audit note.
func (o *Order) AddNote(text string) {
	o.notes = append(o.notes, Note{At: biztime.NowUTC(), Text: text})
	o.updatedAt = biztime.NowUTC()
}

func (o *Order) SetMetadata(key string, value interface{}) {
	if o.metadata == nil {
		o.metadata = make(map[string]interface{})
	}
	o.metadata[key] = value
	o.updatedAt = biztime.NowUTC()
	o.version++
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) Amount() vo.Money {
	return o.amount
}

func (o *Order) Status() vo.OrderStatus {
	return o.status
}

func (o *Order) TransactionID() *string {
	return o.transactionID
}

func (o *Order) Notes() []Note {
	return o.notes
}

func (o *Order) Metadata() map[string]interface{} {
	return o.metadata
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// SetID sets the order ID after persistence (used by repository after Create)
func (o *Order) SetID(id uint) {
	o.id = id
}

// OrderReconstructParams carries persisted state back into a domain Order.
type OrderReconstructParams struct {
	ID            uint
	Number        string
	Amount        vo.Money
	Status        vo.OrderStatus
	TransactionID *string
	Notes         []Note
	Metadata      map[string]interface{}
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructOrder(params OrderReconstructParams) *Order {
	metadata := params.Metadata
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	return &Order{
		id:            params.ID,
		number:        params.Number,
		amount:        params.Amount,
		status:        params.Status,
		transactionID: params.TransactionID,
		notes:         params.Notes,
		metadata:      metadata,
		version:       params.Version,
		createdAt:     params.CreatedAt,
		updatedAt:     params.UpdatedAt,
	}
}

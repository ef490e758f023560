package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "paygate/internal/domain/order/valueobjects"
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("1007", vo.NewMoney(2500, "GYD"))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, "1007", o.Number())
		assert.Equal(t, vo.OrderStatusPending, o.Status())
		assert.Equal(t, 0, o.Version())
		assert.Nil(t, o.TransactionID())
		assert.NotNil(t, o.Metadata())
	})

	t.Run("requires a number", func(t *testing.T) {
		_, err := NewOrder("", vo.NewMoney(2500, "GYD"))
		assert.Error(t, err)
	})

	t.Run("requires a positive amount", func(t *testing.T) {
		_, err := NewOrder("1007", vo.NewMoney(0, "GYD"))
		assert.Error(t, err)

		_, err = NewOrder("1007", vo.NewMoney(-100, "GYD"))
		assert.Error(t, err)
	})
}

func TestOrderMarkAsPaid(t *testing.T) {
	t.Run("records transaction id and bumps version", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.MarkAsPaid("TX-99"))

		assert.Equal(t, vo.OrderStatusCompleted, o.Status())
		require.NotNil(t, o.TransactionID())
		assert.Equal(t, "TX-99", *o.TransactionID())
		assert.Equal(t, 1, o.Version())
	})

	t.Run("is idempotent on a completed order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkAsPaid("TX-99"))

		require.NoError(t, o.MarkAsPaid("TX-other"))

		assert.Equal(t, "TX-99", *o.TransactionID())
		assert.Equal(t, 1, o.Version())
	})

	t.Run("rejected on a failed order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Fail("declined"))

		assert.Error(t, o.MarkAsPaid("TX-99"))
		assert.Equal(t, vo.OrderStatusFailed, o.Status())
	})
}

func TestOrderFailAndCancel(t *testing.T) {
	t.Run("fail records the reason", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Fail("Invalid Secret Key."))

		assert.Equal(t, vo.OrderStatusFailed, o.Status())
		assert.Equal(t, "Invalid Secret Key.", o.Metadata()["failure_reason"])
		assert.Equal(t, 1, o.Version())
	})

	t.Run("cancel records the reason", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel("Payment cancelled by user."))

		assert.Equal(t, vo.OrderStatusCancelled, o.Status())
		assert.Equal(t, "Payment cancelled by user.", o.Metadata()["cancel_reason"])
	})

	t.Run("cannot fail a completed order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.MarkAsPaid("TX-99"))

		assert.Error(t, o.Fail("late failure"))
		assert.Equal(t, vo.OrderStatusCompleted, o.Status())
	})

	t.Run("cannot cancel a failed order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Fail("declined"))

		assert.Error(t, o.Cancel("too late"))
	})
}

func TestOrderMarkProcessing(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.MarkProcessing())
	assert.Equal(t, vo.OrderStatusProcessing, o.Status())
	assert.Equal(t, 1, o.Version())

	// repeat is a no-op
	require.NoError(t, o.MarkProcessing())
	assert.Equal(t, 1, o.Version())

	require.NoError(t, o.MarkAsPaid("TX-99"))
	assert.Error(t, o.MarkProcessing())
}

func TestOrderNotesAndMetadata(t *testing.T) {
	o := newTestOrder(t)

	o.AddNote("first")
	o.AddNote("second")

	require.Len(t, o.Notes(), 2)
	assert.Equal(t, "first", o.Notes()[0].Text)
	assert.Equal(t, "second", o.Notes()[1].Text)
	assert.False(t, o.Notes()[0].At.IsZero())
	// notes do not bump the version, they always accompany a transition
	assert.Equal(t, 0, o.Version())

	o.SetMetadata("mmg_transaction_id", uint(42))
	assert.Equal(t, uint(42), o.Metadata()["mmg_transaction_id"])
	assert.Equal(t, 1, o.Version())
}

func TestReconstructOrder(t *testing.T) {
	tx := "TX-99"
	o := ReconstructOrder(OrderReconstructParams{
		ID:            7,
		Number:        "1007",
		Amount:        vo.NewMoney(2500, "GYD"),
		Status:        vo.OrderStatusCompleted,
		TransactionID: &tx,
		Version:       3,
	})

	assert.Equal(t, uint(7), o.ID())
	assert.Equal(t, vo.OrderStatusCompleted, o.Status())
	assert.Equal(t, 3, o.Version())
	assert.NotNil(t, o.Metadata())
}

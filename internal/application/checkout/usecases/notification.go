package usecases

import (
	"context"
	"time"

	vo "paygate/internal/domain/order/valueobjects"
)

// PaidOrderNotification carries everything the merchant notification needs
// so the sender never has to reload the order.
type PaidOrderNotification struct {
	OrderID       uint
	OrderNumber   string
	Amount        vo.Money
	TransactionID string
	PaidAt        time.Time
}

// PaidOrderNotifier notifies the merchant that an order was paid. It runs
// off the callback request path; failures are logged, never surfaced to the
// gateway.
type PaidOrderNotifier interface {
	NotifyOrderPaid(ctx context.Context, n PaidOrderNotification) error
}

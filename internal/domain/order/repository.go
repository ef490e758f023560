package order

import "context"

// Repository persists orders. Update must perform an atomic compare-and-swap
// on the version column; concurrent duplicate callbacks serialize there.
// Every mutating entity method bumps the version exactly once, so Update
// compares against the version the row was loaded with.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
}

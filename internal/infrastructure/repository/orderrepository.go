package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"paygate/internal/domain/order"
	"paygate/internal/infrastructure/persistence/mappers"
	"paygate/internal/infrastructure/persistence/models"
	apperrors "paygate/internal/shared/errors"
)

type OrderRepository struct {
	db     *gorm.DB
	mapper mappers.OrderMapper
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db, mapper: mappers.NewOrderMapper()}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	o.SetID(model.ID)

	return nil
}

// Update persists the order with a compare-and-swap on the version column.
// The entity bumps its version exactly once per mutation, so the row must
// still hold the version the order was loaded with; a concurrent writer
// makes the swap miss and the caller gets a conflict.
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"transaction_id": model.TransactionID,
			"notes":          model.Notes,
			"metadata":       model.Metadata,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("order was modified concurrently")
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

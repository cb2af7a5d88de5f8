package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderRepository is the persistence collaborator of the order registry.
// Any failure is reported as errs.PersistenceError.
type OrderRepository interface {
	// NextID allocates the identity of the next committed order.
	NextID(ctx context.Context) (int64, error)

	// Add stores a committed order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus stores one status change. value is the status name as
	// returned by String.
	UpdateStatus(ctx context.Context, orderID int64, field order.StatusField, value string) error

	// GetAll loads every stored order with its line items, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)
}

package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order events to a message broker. It is only
// called after the change has been committed.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}

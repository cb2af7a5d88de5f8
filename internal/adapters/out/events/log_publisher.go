package events

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
)

// LogPublisher writes events to the log instead of a broker. It is used when
// no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "order_events")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...order.Event) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "order event",
			"kind", e.Kind,
			"order_id", e.OrderID,
			"field", e.Field,
			"value", e.Value,
		)
	}
	return nil
}

// Package events publishes order events to Kafka or RabbitMQ as JSON messages.
package events

import (
	"encoding/json"
	"strconv"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// Message is the wire form of an order.Event.
type Message struct {
	ID                string    `json:"id"`
	Kind              string    `json:"kind"`
	OrderID           int64     `json:"order_id"`
	TableNumber       int       `json:"table_number"`
	Total             string    `json:"total"`
	PreparationStatus string    `json:"preparation_status"`
	PaymentStatus     string    `json:"payment_status"`
	Field             string    `json:"field,omitempty"`
	Value             string    `json:"value,omitempty"`
	OccurredAt        time.Time `json:"occurred_at"`
}

func newMessage(e order.Event) Message {
	return Message{
		ID:                e.ID.String(),
		Kind:              string(e.Kind),
		OrderID:           e.OrderID,
		TableNumber:       e.TableNumber,
		Total:             e.Total,
		PreparationStatus: e.PreparationStatus,
		PaymentStatus:     e.PaymentStatus,
		Field:             string(e.Field),
		Value:             e.Value,
		OccurredAt:        e.OccurredAt.UTC(),
	}
}

func encode(e order.Event) ([]byte, error) {
	return json.Marshal(newMessage(e))
}

// orderKey keeps all events of one order on one partition / routing key.
func orderKey(e order.Event) string {
	return strconv.FormatInt(e.OrderID, 10)
}

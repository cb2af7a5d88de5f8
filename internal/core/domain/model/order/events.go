package order

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names what happened to an order.
type EventKind string

const (
	EventOrderPlaced        EventKind = "order.placed"
	EventOrderStatusChanged EventKind = "order.status_changed"
)

// Event is published after a change to an order has been stored.
// For EventOrderPlaced, Field and Value are empty.
type Event struct {
	ID                uuid.UUID
	Kind              EventKind
	OrderID           int64
	TableNumber       int
	Total             string
	PreparationStatus string
	PaymentStatus     string
	Field             StatusField
	Value             string
	OccurredAt        time.Time
}

// NewPlacedEvent describes a freshly committed order.
func NewPlacedEvent(o *Order) Event {
	e := newEvent(EventOrderPlaced, o)
	e.OccurredAt = o.CreatedAt()
	return e
}

// NewStatusChangedEvent describes a status change of o on field.
func NewStatusChangedEvent(o *Order, field StatusField, at time.Time) Event {
	e := newEvent(EventOrderStatusChanged, o)
	e.Field = field
	switch field {
	case PreparationStatusField:
		e.Value = o.PreparationStatus().String()
	case PaymentStatusField:
		e.Value = o.PaymentStatus().String()
	}
	e.OccurredAt = at
	return e
}

func newEvent(kind EventKind, o *Order) Event {
	return Event{
		ID:                uuid.New(),
		Kind:              kind,
		OrderID:           o.ID(),
		TableNumber:       o.TableNumber(),
		Total:             o.Total().String(),
		PreparationStatus: o.PreparationStatus().String(),
		PaymentStatus:     o.PaymentStatus().String(),
	}
}

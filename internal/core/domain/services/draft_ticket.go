package services

import (
	"sync"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
)

// DraftTicket is the one order under construction. All terminals share it.
type DraftTicket struct {
	mu      sync.Mutex
	builder *order.Builder
}

func NewDraftTicket() *DraftTicket {
	return &DraftTicket{builder: order.NewBuilder()}
}

// AddItem adds quantity of item to the draft.
func (d *DraftTicket) AddItem(item menu.Item, quantity int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.builder.AddItem(item, quantity)
}

// Cancel drops every line of the draft.
func (d *DraftTicket) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.builder.Clear()
}

// Snapshot returns a copy of the lines and the current total.
func (d *DraftTicket) Snapshot() ([]order.LineItem, kernel.Money) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.builder.Items(), d.builder.Total()
}

// Place commits the draft into registry. The draft stays locked until the
// order is persisted and registered, so no line can slip in between.
func (d *DraftTicket) Place(
	registry *OrderRegistry,
	tableNumber int,
	assignIdentity order.IdentityAllocator,
	clock order.Clock,
	persist OrderSink,
) (*order.Order, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return registry.CommitAndRegister(d.builder, tableNumber, assignIdentity, clock, persist)
}

package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrInvalidQuantity is returned when a line is added with a quantity below 1
	// or would end up above MaxLineQuantity.
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 999")

	// ErrInvalidTableNumber is returned when a ticket is committed for a table number below 1.
	ErrInvalidTableNumber = errors.New("table number must be greater than 0")

	// ErrEmptyOrder is returned when a builder without line items is committed.
	ErrEmptyOrder = errors.New("order has no line items")

	// ErrIdentityAllocatorIsRequired is returned when Commit is called without an allocator.
	ErrIdentityAllocatorIsRequired = errors.New("identity allocator is required")
)

// MaxLineQuantity bounds the quantity of one line, merged adds included.
const MaxLineQuantity = 999

// IdentityAllocator hands out the identity of a committed order. Identity
// assignment belongs to persistence, so the builder only calls it.
type IdentityAllocator func() (int64, error)

// Clock returns the commit timestamp.
type Clock func() time.Time

// Builder accumulates line items for an order that has not been placed yet.
// Insertion order is display order. The total is derived on every read.
//
// A Builder is not safe for concurrent use; see services.DraftTicket.
//
// Example:
//
//	b := order.NewBuilder()
//	_ = b.AddItem(soup, 2)
//	_ = b.AddItem(soup, 1) // merged: one line, quantity 3
//	o, err := b.Commit(5, allocate, time.Now())
//	// o.Total() == 3 x soup price, b.IsEmpty() == true
type Builder struct {
	items []LineItem
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddItem adds quantity of ref. When a line for ref's identity already exists
// its quantity grows and its captured price is kept, even if ref.Price() has
// changed since. Otherwise a new line captures ref's name and price now.
// Quantities are bounded by MaxLineQuantity and the total by kernel.MaxAmount.
// A failed call leaves the builder unchanged.
func (b *Builder) AddItem(ref menu.Item, quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	next := slices.Clone(b.items)
	if idx := b.indexOf(ref.ID()); idx >= 0 {
		merged, err := next[idx].withAddedQuantity(quantity)
		if err != nil {
			return err
		}
		next[idx] = merged
	} else {
		line, err := NewLineItem(ref, quantity)
		if err != nil {
			return err
		}
		next = append(next, line)
	}

	if total := sumSubtotals(next); total.ExceedsMax() {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%w, order total %s would exceed %s",
				ErrInvalidQuantity, total, kernel.MaxAmount.StringFixed(kernel.Scale)),
		)
	}

	b.items = next
	return nil
}

// Total is the sum of all subtotals; zero for an empty builder.
func (b *Builder) Total() kernel.Money {
	return sumSubtotals(b.items)
}

// Items returns a copy of the lines in insertion order.
func (b *Builder) Items() []LineItem {
	return slices.Clone(b.items)
}

// Len returns the number of distinct lines.
func (b *Builder) Len() int {
	return len(b.items)
}

// IsEmpty reports whether the builder has no lines.
func (b *Builder) IsEmpty() bool {
	return len(b.items) == 0
}

// Clear drops all lines. It is the explicit cancel of a ticket.
func (b *Builder) Clear() {
	b.items = nil
}

// Freeze validates the builder and produces the Order it would commit to,
// without clearing the builder. Callers that must persist before the builder
// is released use Freeze followed by Clear.
func (b *Builder) Freeze(tableNumber int, assignIdentity IdentityAllocator, now time.Time) (*Order, error) {
	if err := errors.Join(
		validateTableNumber(tableNumber),
		b.validateNotEmpty(),
	); err != nil {
		return nil, err
	}

	if assignIdentity == nil {
		return nil, ErrIdentityAllocatorIsRequired
	}

	id, err := assignIdentity()
	if err != nil {
		return nil, err
	}

	return newOrder(id, tableNumber, now, slices.Clone(b.items))
}

// Commit freezes the builder into an Order and clears it. On failure the
// builder keeps its lines so the ticket can be corrected and retried.
func (b *Builder) Commit(tableNumber int, assignIdentity IdentityAllocator, now time.Time) (*Order, error) {
	o, err := b.Freeze(tableNumber, assignIdentity, now)
	if err != nil {
		return nil, err
	}

	b.Clear()
	return o, nil
}

func (b *Builder) indexOf(menuItemID int64) int {
	return slices.IndexFunc(b.items, func(l LineItem) bool {
		return l.menuItemID == menuItemID
	})
}

func (b *Builder) validateNotEmpty() error {
	if b.IsEmpty() {
		return errs.NewValueIsRequiredErrorWithCause("line items", ErrEmptyOrder)
	}
	return nil
}

func validateTableNumber(tableNumber int) error {
	if tableNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"table number",
			fmt.Errorf("%w, got %d", ErrInvalidTableNumber, tableNumber),
		)
	}
	return nil
}

func sumSubtotals(items []LineItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range items {
		total = total.Add(l.Subtotal())
	}
	return total
}

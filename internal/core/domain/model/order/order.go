package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// by Builder.Commit, Builder.Freeze or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via Builder.Commit or RestoreOrder")
)

// StatusField names one of the two independent status axes of an order. It is
// what persistence receives with a status change.
type StatusField string

const (
	PreparationStatusField StatusField = "preparation_status"
	PaymentStatusField     StatusField = "payment_status"
)

// Order is a committed ticket. It is the aggregate root for everything that
// happens after placement.
//
// Order follows these invariants:
//   - identity, table number and creation time never change
//   - line items are frozen; the slice is owned by the order and never shared
//   - total is the snapshot taken at commit, not a live sum
//   - status changes go through PreparationStatus.TransitionTo and PaymentStatus.TransitionTo
type Order struct {
	// id is assigned at commit by the persistence collaborator
	id int64

	// tableNumber is copied from the commit call
	tableNumber int

	// createdAt is the commit timestamp
	createdAt time.Time

	// items are moved out of the builder at commit
	items []LineItem

	// total is the stored snapshot of the builder total at commit time
	total kernel.Money

	preparationStatus PreparationStatus
	paymentStatus     PaymentStatus

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

func newOrder(id int64, tableNumber int, createdAt time.Time, items []LineItem) (*Order, error) {
	o := &Order{
		preparationStatus: Placed,
		paymentStatus:     Unpaid,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableNumber(tableNumber),
		o.setCreatedAt(createdAt),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = sumSubtotals(o.items)
	return o, nil
}

// RestoreOrder rebuilds a stored order. The stored total is taken as given and
// not recomputed from the items.
func RestoreOrder(
	id int64,
	tableNumber int,
	createdAt time.Time,
	items []LineItem,
	total kernel.Money,
	preparationStatus PreparationStatus,
	paymentStatus PaymentStatus,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setTableNumber(tableNumber),
		o.setCreatedAt(createdAt),
		o.setItems(slices.Clone(items)),
		total.Validate(),
		preparationStatus.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.total = total
	o.preparationStatus = preparationStatus
	o.paymentStatus = paymentStatus
	return o, nil
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) TableNumber() int {
	return o.tableNumber
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the frozen lines.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// Total returns the snapshot taken at commit.
func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) PreparationStatus() PreparationStatus {
	return o.preparationStatus
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// SetPreparationStatus moves the preparation axis to target. Items, total and
// the payment axis are untouched. On error the order is unchanged.
func (o *Order) SetPreparationStatus(target PreparationStatus) error {
	if err := o.Validate(); err != nil {
		return err
	}

	next, err := o.preparationStatus.TransitionTo(target)
	if err != nil {
		return err
	}

	o.preparationStatus = next
	return nil
}

// SetPaymentStatus moves the payment axis to target. Items, total and the
// preparation axis are untouched. On error the order is unchanged.
func (o *Order) SetPaymentStatus(target PaymentStatus) error {
	if err := o.Validate(); err != nil {
		return err
	}

	next, err := o.paymentStatus.TransitionTo(target)
	if err != nil {
		return err
	}

	o.paymentStatus = next
	return nil
}

// Clone returns an independent copy. Callers outside the registry only ever
// see clones.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.items = slices.Clone(o.items)
	return &c
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setTableNumber(tableNumber int) error {
	if err := validateTableNumber(tableNumber); err != nil {
		return err
	}
	o.tableNumber = tableNumber
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("order creation time")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("line items", ErrEmptyOrder)
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

package services

import (
	"errors"
	"fmt"
	"iter"
	"sync"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrClockIsRequired is returned when an order is committed without a clock.
	ErrClockIsRequired = errors.New("clock is required")

	// ErrOrderIsAlreadyRegistered is returned when an identity is handed out twice.
	ErrOrderIsAlreadyRegistered = errors.New("order is already registered")
)

// OrderSink stores a freshly committed order. It is called before the order
// becomes visible in the registry.
type OrderSink func(o *order.Order) error

// StatusSink stores a single status change of a registered order.
type StatusSink func(orderID int64, field order.StatusField, value string) error

// OrderRegistry holds every committed order in placement order.
//
// Orders enter only through CommitAndRegister or Restore and are never
// removed. Callers receive clones, so nothing outside the registry can mutate
// a registered order.
type OrderRegistry struct {
	mu       sync.RWMutex
	orders   map[int64]*order.Order
	sequence []int64
	machine  OrderStatusMachine
}

func NewOrderRegistry() *OrderRegistry {
	return &OrderRegistry{
		orders:  make(map[int64]*order.Order),
		machine: NewOrderStatusMachine(),
	}
}

// Restore loads stored orders, typically once at startup. Orders are
// appended in the given order. Nothing is registered if any order is
// invalid or duplicated.
func (r *OrderRegistry) Restore(orders []*order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int64]struct{}, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if _, ok := seen[o.ID()]; ok {
			return r.duplicateError(o.ID())
		}
		if _, ok := r.orders[o.ID()]; ok {
			return r.duplicateError(o.ID())
		}
		seen[o.ID()] = struct{}{}
	}

	for _, o := range orders {
		r.insert(o.Clone())
	}
	return nil
}

// CommitAndRegister freezes builder into an order for tableNumber, hands it to
// persist and registers it. The builder is cleared only after all of that
// succeeded; on any failure the builder and the registry are unchanged.
// persist may be nil when no storage is involved.
func (r *OrderRegistry) CommitAndRegister(
	builder *order.Builder,
	tableNumber int,
	assignIdentity order.IdentityAllocator,
	clock order.Clock,
	persist OrderSink,
) (*order.Order, error) {
	if builder == nil {
		return nil, errs.NewValueIsRequiredError("builder")
	}
	if clock == nil {
		return nil, ErrClockIsRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	o, err := builder.Freeze(tableNumber, assignIdentity, clock())
	if err != nil {
		return nil, err
	}

	if _, ok := r.orders[o.ID()]; ok {
		return nil, r.duplicateError(o.ID())
	}

	if persist != nil {
		if err = persist(o.Clone()); err != nil {
			return nil, err
		}
	}

	r.insert(o)
	builder.Clear()
	return o.Clone(), nil
}

// Get returns a copy of the order with the given identity.
func (r *OrderRegistry) Get(id int64) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o.Clone(), nil
}

// List returns the orders in placement order as they are at the time of the
// call. The sequence can be ranged over any number of times and always yields
// the same snapshot; later changes to the registry do not show up in it.
func (r *OrderRegistry) List() iter.Seq[*order.Order] {
	r.mu.RLock()
	snapshot := make([]*order.Order, 0, len(r.sequence))
	for _, id := range r.sequence {
		snapshot = append(snapshot, r.orders[id].Clone())
	}
	r.mu.RUnlock()

	return func(yield func(*order.Order) bool) {
		for _, o := range snapshot {
			if !yield(o.Clone()) {
				return
			}
		}
	}
}

// Len returns the number of registered orders.
func (r *OrderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sequence)
}

// ApplyPreparationStatus moves the order's preparation axis to target.
// persist may be nil.
func (r *OrderRegistry) ApplyPreparationStatus(
	id int64,
	target order.PreparationStatus,
	persist StatusSink,
) (*order.Order, error) {
	return r.apply(id, persist, func(o *order.Order) (order.StatusField, string, error) {
		if _, err := r.machine.SetPreparationStatus(o, target); err != nil {
			return "", "", err
		}
		return order.PreparationStatusField, o.PreparationStatus().String(), nil
	})
}

// ApplyPaymentStatus moves the order's payment axis to target.
// persist may be nil.
func (r *OrderRegistry) ApplyPaymentStatus(
	id int64,
	target order.PaymentStatus,
	persist StatusSink,
) (*order.Order, error) {
	return r.apply(id, persist, func(o *order.Order) (order.StatusField, string, error) {
		if _, err := r.machine.SetPaymentStatus(o, target); err != nil {
			return "", "", err
		}
		return order.PaymentStatusField, o.PaymentStatus().String(), nil
	})
}

func (r *OrderRegistry) apply(
	id int64,
	persist StatusSink,
	transition func(o *order.Order) (order.StatusField, string, error),
) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	next := current.Clone()
	field, value, err := transition(next)
	if err != nil {
		return nil, err
	}

	if persist != nil {
		if err = persist(id, field, value); err != nil {
			return nil, err
		}
	}

	r.orders[id] = next
	return next.Clone(), nil
}

func (r *OrderRegistry) insert(o *order.Order) {
	r.orders[o.ID()] = o
	r.sequence = append(r.sequence, o.ID())
}

func (r *OrderRegistry) duplicateError(id int64) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"order id", fmt.Errorf("%w: %d", ErrOrderIsAlreadyRegistered, id))
}


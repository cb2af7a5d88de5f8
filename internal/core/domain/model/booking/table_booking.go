package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/pkg/errs"
)

var ErrTableBookingIsNotConstructed = errors.New("TableBooking must be created via NewTableBooking or RestoreTableBooking")

// TableBooking is a reservation of one table.
type TableBooking struct {
	id           int64
	tableNumber  int
	capacity     int
	customerName string
	bookedAt     time.Time

	isConstructed bool
}

// NewTableBooking creates a booking that has not been stored yet. bookedAt is
// taken from the caller's clock.
func NewTableBooking(tableNumber, capacity int, customerName string, bookedAt time.Time) (*TableBooking, error) {
	b := &TableBooking{isConstructed: true}

	if err := errors.Join(
		b.setTableNumber(tableNumber),
		b.setCapacity(capacity),
		b.setCustomerName(customerName),
		b.setBookedAt(bookedAt),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreTableBooking rebuilds a stored booking.
func RestoreTableBooking(
	id int64,
	tableNumber, capacity int,
	customerName string,
	bookedAt time.Time,
) (*TableBooking, error) {
	b, err := NewTableBooking(tableNumber, capacity, customerName, bookedAt)
	if err != nil {
		return nil, err
	}

	if err = b.SetID(id); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *TableBooking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrTableBookingIsNotConstructed
	}
	return nil
}

func (b *TableBooking) ID() int64 {
	return b.id
}

func (b *TableBooking) TableNumber() int {
	return b.tableNumber
}

func (b *TableBooking) Capacity() int {
	return b.capacity
}

func (b *TableBooking) CustomerName() string {
	return b.customerName
}

func (b *TableBooking) BookedAt() time.Time {
	return b.bookedAt
}

// SetID records the identity assigned by persistence.
func (b *TableBooking) SetID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("booking id", fmt.Errorf("%d is not greater than 0", id))
	}
	b.id = id
	return nil
}

// Update changes table, capacity and customer. The booking time is kept.
// On error the booking is unchanged.
func (b *TableBooking) Update(tableNumber, capacity int, customerName string) error {
	if err := b.Validate(); err != nil {
		return err
	}

	updated := *b
	if err := errors.Join(
		updated.setTableNumber(tableNumber),
		updated.setCapacity(capacity),
		updated.setCustomerName(customerName),
	); err != nil {
		return err
	}

	*b = updated
	return nil
}

func (b *TableBooking) setTableNumber(tableNumber int) error {
	if tableNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"table number", fmt.Errorf("%d is not greater than 0", tableNumber))
	}
	b.tableNumber = tableNumber
	return nil
}

func (b *TableBooking) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	b.capacity = capacity
	return nil
}

func (b *TableBooking) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	b.customerName = name
	return nil
}

func (b *TableBooking) setBookedAt(bookedAt time.Time) error {
	if bookedAt.IsZero() {
		return errs.NewValueIsRequiredError("booking time")
	}
	b.bookedAt = bookedAt
	return nil
}

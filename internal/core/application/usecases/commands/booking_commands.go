package commands

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateBookingCommandIsNotConstructed = errors.New(
		"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
	)
	ErrUpdateBookingCommandIsNotConstructed = errors.New(
		"UpdateBookingCommand must be created via NewUpdateBookingCommand constructor",
	)
	ErrDeleteBookingCommandIsNotConstructed = errors.New(
		"DeleteBookingCommand must be created via NewDeleteBookingCommand constructor",
	)
)

// CreateBookingCommand reserves a table. Table number and capacity are
// checked by booking.NewTableBooking.
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	tableNumber  int
	capacity     int
	customerName string

	guard guard.ConstructorGuard
}

func NewCreateBookingCommand(tableNumber, capacity int, customerName string) (CreateBookingCommand, error) {
	if err := validateName("customer name", customerName); err != nil {
		return CreateBookingCommand{}, err
	}

	return CreateBookingCommand{
		tableNumber:  tableNumber,
		capacity:     capacity,
		customerName: strings.TrimSpace(customerName),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) TableNumber() int {
	return c.tableNumber
}

func (c CreateBookingCommand) Capacity() int {
	return c.capacity
}

func (c CreateBookingCommand) CustomerName() string {
	return c.customerName
}

// UpdateBookingCommand changes table, capacity and customer of a booking.
type UpdateBookingCommand struct { //nolint:recvcheck //using for validation
	id           int64
	tableNumber  int
	capacity     int
	customerName string

	guard guard.ConstructorGuard
}

func NewUpdateBookingCommand(id int64, tableNumber, capacity int, customerName string) (UpdateBookingCommand, error) {
	if err := errors.Join(
		validateID("booking id", id),
		validateName("customer name", customerName),
	); err != nil {
		return UpdateBookingCommand{}, err
	}

	return UpdateBookingCommand{
		id:           id,
		tableNumber:  tableNumber,
		capacity:     capacity,
		customerName: strings.TrimSpace(customerName),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateBookingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingCommandIsNotConstructed)
}

func (c UpdateBookingCommand) ID() int64 {
	return c.id
}

func (c UpdateBookingCommand) TableNumber() int {
	return c.tableNumber
}

func (c UpdateBookingCommand) Capacity() int {
	return c.capacity
}

func (c UpdateBookingCommand) CustomerName() string {
	return c.customerName
}

type DeleteBookingCommand struct { //nolint:recvcheck //using for validation
	id int64

	guard guard.ConstructorGuard
}

func NewDeleteBookingCommand(id int64) (DeleteBookingCommand, error) {
	if err := validateID("booking id", id); err != nil {
		return DeleteBookingCommand{}, err
	}
	return DeleteBookingCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteBookingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBookingCommandIsNotConstructed)
}

func (c DeleteBookingCommand) ID() int64 {
	return c.id
}

package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand commits the draft ticket as an order for a table.
// The table number is checked by the builder at commit, so an invalid table
// fails with order.ErrInvalidTableNumber and the draft is kept.
//
// Example:
//
//	cmd := NewPlaceOrderCommand(5)
//	placed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrEmptyOrder) {
//	    // nothing on the ticket yet
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	tableNumber int

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(tableNumber int) PlaceOrderCommand {
	return PlaceOrderCommand{
		tableNumber: tableNumber,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) TableNumber() int {
	return c.tableNumber
}

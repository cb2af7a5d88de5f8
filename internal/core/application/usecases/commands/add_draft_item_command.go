package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrAddDraftItemCommandIsNotConstructed = errors.New(
	"AddDraftItemCommand must be created via NewAddDraftItemCommand constructor",
)

// AddDraftItemCommand adds a quantity of a menu item to the draft ticket.
// The quantity is checked by the builder.
type AddDraftItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID int64
	quantity   int

	guard guard.ConstructorGuard
}

func NewAddDraftItemCommand(menuItemID int64, quantity int) (AddDraftItemCommand, error) {
	if err := validateID("menu item id", menuItemID); err != nil {
		return AddDraftItemCommand{}, err
	}

	return AddDraftItemCommand{
		menuItemID: menuItemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddDraftItemCommand) Validate() error {
	return c.guard.Validate(ErrAddDraftItemCommandIsNotConstructed)
}

func (c AddDraftItemCommand) MenuItemID() int64 {
	return c.menuItemID
}

func (c AddDraftItemCommand) Quantity() int {
	return c.quantity
}

package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
	ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
		"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
	)
)

// CreateMenuItemCommand adds an entry to the menu catalog.
//
// Example:
//
//	cmd, err := NewCreateMenuItemCommand("Soup", "4.00")
//	if err != nil {
//	    return err // blank name or malformed price
//	}
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand parses price as a decimal string.
func NewCreateMenuItemCommand(name, price string) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{guard: guard.NewConstructorGuard()}

	parsed, priceErr := kernel.MoneyFromString(price)
	if err := errors.Join(validateName("menu item name", name), priceErr); err != nil {
		return CreateMenuItemCommand{}, err
	}

	cmd.name = name
	cmd.price = parsed
	return cmd, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Name() string {
	return c.name
}

func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// UpdateMenuItemCommand replaces name and price of a menu item. Line items
// that already captured the old values are not touched.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	id    int64
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(id int64, name, price string) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{guard: guard.NewConstructorGuard()}

	parsed, priceErr := kernel.MoneyFromString(price)
	if err := errors.Join(
		validateID("menu item id", id),
		validateName("menu item name", name),
		priceErr,
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	cmd.id = id
	cmd.name = name
	cmd.price = parsed
	return cmd, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) ID() int64 {
	return c.id
}

func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	id int64

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(id int64) (DeleteMenuItemCommand, error) {
	if err := validateID("menu item id", id); err != nil {
		return DeleteMenuItemCommand{}, err
	}
	return DeleteMenuItemCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) ID() int64 {
	return c.id
}

func validateName(paramName, name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

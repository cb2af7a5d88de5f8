package menu

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("menu Item must be created via NewItem or RestoreItem constructor")

// Item is a menu catalog entry.
//
// Invariants:
//   - name is not blank
//   - price is a valid non-negative amount
//   - id is zero until the catalog has persisted the item, positive afterwards
type Item struct { //nolint:recvcheck //using for validation
	id    int64
	name  string
	price kernel.Money
	guard guard.ConstructorGuard
}

// NewItem creates an item that has not been stored yet.
//
// Example:
//
//	soup, err := menu.NewItem("Soup", kernel.MustMoney("4.00"))
//	if err != nil {
//	    return err
//	}
//	stored, err := repo.Add(ctx, soup) // stored.ID() > 0
func NewItem(name string, price kernel.Money) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem rebuilds a stored item. The id must be positive.
func RestoreItem(id int64, name string, price kernel.Money) (Item, error) {
	item, err := NewItem(name, price)
	if err != nil {
		return Item{}, err
	}

	if err = item.setID(id); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsStored reports whether persistence has assigned an identity.
func (i Item) IsStored() bool {
	return i.id > 0
}

func (i Item) ID() int64 {
	return i.id
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Price() kernel.Money {
	return i.price
}

// Update returns a copy with a new name and price. The identity is kept.
func (i Item) Update(name string, price kernel.Money) (Item, error) {
	if err := i.Validate(); err != nil {
		return Item{}, err
	}

	updated := Item{id: i.id, guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		updated.setName(name),
		updated.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return updated, nil
}

// WithID returns a copy carrying the identity assigned by persistence.
func (i Item) WithID(id int64) (Item, error) {
	if err := i.Validate(); err != nil {
		return Item{}, err
	}

	stored := i
	if err := stored.setID(id); err != nil {
		return Item{}, err
	}
	return stored, nil
}

func (i *Item) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menu item id", fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

package order

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created through a constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem constructor")

// LineItem is one menu entry and its quantity within a builder or an order.
// Name and unit price are copies taken when the line was first added; they
// do not follow later menu edits.
type LineItem struct { //nolint:recvcheck //using for validation
	menuItemID int64
	name       string
	quantity   int
	unitPrice  kernel.Money
	guard      guard.ConstructorGuard
}

// NewLineItem captures name and price of a stored menu item.
func NewLineItem(ref menu.Item, quantity int) (LineItem, error) {
	if err := validateQuantity(quantity); err != nil {
		return LineItem{}, err
	}

	if err := ref.Validate(); err != nil {
		return LineItem{}, err
	}

	if !ref.IsStored() {
		return LineItem{}, errs.NewValueIsRequiredError("menu item id")
	}

	return LineItem{
		menuItemID: ref.ID(),
		name:       ref.Name(),
		quantity:   quantity,
		unitPrice:  ref.Price(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreLineItem rebuilds a stored line.
func RestoreLineItem(menuItemID int64, name string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	var errList []error

	if menuItemID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"menu item id", fmt.Errorf("%d is not greater than 0", menuItemID)))
	}
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("line item name"))
	}
	errList = append(errList, validateQuantity(quantity), unitPrice.Validate())

	if err := errors.Join(errList...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		menuItemID: menuItemID,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l LineItem) MenuItemID() int64 {
	return l.menuItemID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal is quantity x unit price at order time.
func (l LineItem) Subtotal() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}

// withAddedQuantity returns the merged line. The sum is bounded like any
// single quantity.
func (l LineItem) withAddedQuantity(quantity int) (LineItem, error) {
	if err := validateQuantity(quantity); err != nil {
		return LineItem{}, err
	}
	if quantity > MaxLineQuantity-l.quantity {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%w, line would hold %d + %d, at most %d allowed",
				ErrInvalidQuantity, l.quantity, quantity, MaxLineQuantity),
		)
	}
	l.quantity += quantity
	return l, nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 || quantity > MaxLineQuantity {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%w, got %d", ErrInvalidQuantity, quantity),
		)
	}
	return nil
}

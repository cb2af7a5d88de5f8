package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a Money value was not created through
// one of its constructors.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString or ZeroMoney constructors")

// Scale is the number of decimal places an amount may carry.
const Scale = 2

// MaxAmount is the largest amount that can be stored.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// Money is an immutable non-negative monetary amount.
// Amounts are exact decimals, so totals built from many line items never drift.
//
// Example:
//
//	price, err := kernel.MoneyFromString("4.00")
//	if err != nil {
//	    // Handle validation error
//	}
//	subtotal := price.Mul(3) // 12.00
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// ZeroMoney returns a valid amount of zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// NewMoney creates Money from a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}
	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}
	return m, nil
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid. It panics otherwise.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate checks that the value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Mul returns the amount multiplied by a non-negative quantity.
func (m Money) Mul(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// ExceedsMax reports whether the amount is above MaxAmount. Sums and products
// are not range checked, so callers building totals check this.
func (m Money) ExceedsMax() bool {
	return m.amount.GreaterThan(MaxAmount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares amounts numerically, so 12 and 12.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(Scale)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	if !amount.Equal(amount.Round(Scale)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), Scale),
		)
	}
	if amount.GreaterThan(MaxAmount) {
		return errs.NewValueIsOutOfRangeError("money", amount.String(), "0", MaxAmount.StringFixed(Scale))
	}
	m.amount = amount
	return nil
}

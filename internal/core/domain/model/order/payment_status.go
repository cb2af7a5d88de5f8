package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// PaymentStatus is the billing-side lifecycle of an order. It is independent
// of PreparationStatus.
//
// State transitions:
//
//	Unpaid <──> Paid ──> Refunded (terminal)
//
// Unpaid -> Refunded is rejected: nothing was paid.
type PaymentStatus int

const (
	// PaymentUnknown is the zero value and never valid.
	PaymentUnknown PaymentStatus = iota

	// Unpaid is the initial status of a committed order.
	Unpaid

	// Paid means the check was settled.
	Paid

	// Refunded is terminal.
	Refunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "unknown",
		Unpaid:         "unpaid",
		Paid:           "paid",
		Refunded:       "refunded",
	}
}

// ParsePaymentStatus maps a wire or storage name to a status. Matching is
// case-insensitive.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentUnknown && str == name {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status", fmt.Errorf("%q is not a valid status", s))
}

func (s PaymentStatus) Validate() error {
	if s < Unpaid || s > Refunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// TransitionTo returns target when moving from s to target is allowed.
func (s PaymentStatus) TransitionTo(target PaymentStatus) (PaymentStatus, error) {
	if err := target.Validate(); err != nil {
		return PaymentUnknown, errs.NewTransitionIsInvalidErrorWithCause(
			"payment status", s.String(), target.String(), err)
	}

	if err := s.Validate(); err != nil {
		return PaymentUnknown, errs.NewTransitionIsInvalidErrorWithCause(
			"payment status", s.String(), target.String(), err)
	}

	switch {
	case s == Unpaid && target == Refunded,
		s == Refunded && target != Refunded:
		return PaymentUnknown, errs.NewTransitionIsInvalidError(
			"payment status", s.String(), target.String())
	}

	return target, nil
}

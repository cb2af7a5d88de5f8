package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// PreparationStatus is the kitchen-side lifecycle of an order.
//
// State transitions:
//
//	Placed <──> Preparing ──> Served
//	   │            │           │
//	   └────────────┴───────────┴──> Cancelled (terminal)
//
// Re-asserting the current status is always a no-op success, except that
// nothing leaves Cancelled. Served only accepts Served or Cancelled.
type PreparationStatus int

const (
	// PreparationUnknown is the zero value and never valid.
	PreparationUnknown PreparationStatus = iota

	// Placed is the initial status of a committed order.
	Placed

	// Preparing means the kitchen is working on the order.
	Preparing

	// Served means the order reached the table.
	Served

	// Cancelled is terminal.
	Cancelled
)

func getPreparationStatusStrings() map[PreparationStatus]string {
	return map[PreparationStatus]string{
		PreparationUnknown: "unknown",
		Placed:             "placed",
		Preparing:          "preparing",
		Served:             "served",
		Cancelled:          "cancelled",
	}
}

// ParsePreparationStatus maps a wire or storage name to a status. Matching is
// case-insensitive.
func ParsePreparationStatus(s string) (PreparationStatus, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getPreparationStatusStrings() {
		if status != PreparationUnknown && str == name {
			return status, nil
		}
	}
	return PreparationUnknown, errs.NewValueIsInvalidErrorWithCause(
		"preparation status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the value is one of the four enumerated statuses.
func (s PreparationStatus) Validate() error {
	if s < Placed || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparation status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s PreparationStatus) String() string {
	if str, ok := getPreparationStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// TransitionTo returns target when moving from s to target is allowed.
//
// Invalid transitions:
//   - any target that is not enumerated
//   - Cancelled -> anything but Cancelled
//   - Served -> Placed or Preparing
//
// Placed and Preparing may move freely between each other so staff can revert
// a mis-click.
func (s PreparationStatus) TransitionTo(target PreparationStatus) (PreparationStatus, error) {
	if err := target.Validate(); err != nil {
		return PreparationUnknown, errs.NewTransitionIsInvalidErrorWithCause(
			"preparation status", s.String(), target.String(), err)
	}

	if err := s.Validate(); err != nil {
		return PreparationUnknown, errs.NewTransitionIsInvalidErrorWithCause(
			"preparation status", s.String(), target.String(), err)
	}

	switch {
	case s == Cancelled && target != Cancelled,
		s == Served && target != Served && target != Cancelled:
		return PreparationUnknown, errs.NewTransitionIsInvalidError(
			"preparation status", s.String(), target.String())
	}

	return target, nil
}

package commands

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

func validateID(paramName string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// unknownTarget reports a status name that is not enumerated. The current
// status is not known yet, so the move is reported from any status.
func unknownTarget(paramName, target string, cause error) error {
	return errs.NewTransitionIsInvalidErrorWithCause(paramName, "any", fmt.Sprintf("%q", target), cause)
}

package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrChangePreparationStatusCommandIsNotConstructed = errors.New(
	"ChangePreparationStatusCommand must be created via NewChangePreparationStatusCommand constructor",
)

// ChangePreparationStatusCommand moves a registered order along the kitchen axis.
//
// Example:
//
//	cmd, err := NewChangePreparationStatusCommand(12, "preparing")
//	if err != nil {
//	    return err // unknown status name or bad id
//	}
type ChangePreparationStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.PreparationStatus

	guard guard.ConstructorGuard
}

// NewChangePreparationStatusCommand parses status by name. A name outside the
// four statuses is an invalid transition, whatever the order's current status.
func NewChangePreparationStatusCommand(orderID int64, status string) (ChangePreparationStatusCommand, error) {
	cmd := ChangePreparationStatusCommand{guard: guard.NewConstructorGuard()}

	parsed, parseErr := order.ParsePreparationStatus(status)
	if parseErr != nil {
		parseErr = unknownTarget("preparation status", status, parseErr)
	}
	if err := errors.Join(validateID("order id", orderID), parseErr); err != nil {
		return ChangePreparationStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.status = parsed
	return cmd, nil
}

func (c ChangePreparationStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePreparationStatusCommandIsNotConstructed)
}

func (c ChangePreparationStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c ChangePreparationStatusCommand) Status() order.PreparationStatus {
	return c.status
}

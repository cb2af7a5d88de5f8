package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrChangePaymentStatusCommandIsNotConstructed = errors.New(
	"ChangePaymentStatusCommand must be created via NewChangePaymentStatusCommand constructor",
)

// ChangePaymentStatusCommand moves a registered order along the billing axis.
type ChangePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewChangePaymentStatusCommand parses status by name. An unknown name is an
// invalid transition.
func NewChangePaymentStatusCommand(orderID int64, status string) (ChangePaymentStatusCommand, error) {
	cmd := ChangePaymentStatusCommand{guard: guard.NewConstructorGuard()}

	parsed, parseErr := order.ParsePaymentStatus(status)
	if parseErr != nil {
		parseErr = unknownTarget("payment status", status, parseErr)
	}
	if err := errors.Join(validateID("order id", orderID), parseErr); err != nil {
		return ChangePaymentStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.status = parsed
	return cmd, nil
}

func (c ChangePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentStatusCommandIsNotConstructed)
}

func (c ChangePaymentStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c ChangePaymentStatusCommand) Status() order.PaymentStatus {
	return c.status
}

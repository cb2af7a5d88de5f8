package services

import (
	"restaurant/internal/core/domain/model/order"
)

// OrderStatusMachine validates and applies status transitions on an order.
// The two axes are independent: a preparation change never touches payment,
// and neither touches line items or the total.
//
// Example usage:
//
//	machine := services.NewOrderStatusMachine()
//	o, err := machine.SetPreparationStatus(o, order.Preparing)
//	if errors.Is(err, errs.ErrTransitionIsInvalid) {
//	    // e.g. the order was already cancelled
//	}
type OrderStatusMachine struct{}

func NewOrderStatusMachine() OrderStatusMachine {
	return OrderStatusMachine{}
}

// SetPreparationStatus moves o to target in place and returns it.
func (m OrderStatusMachine) SetPreparationStatus(
	o *order.Order,
	target order.PreparationStatus,
) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.SetPreparationStatus(target); err != nil {
		return nil, err
	}

	return o, nil
}

// SetPaymentStatus moves o to target in place and returns it.
func (m OrderStatusMachine) SetPaymentStatus(
	o *order.Order,
	target order.PaymentStatus,
) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.SetPaymentStatus(target); err != nil {
		return nil, err
	}

	return o, nil
}

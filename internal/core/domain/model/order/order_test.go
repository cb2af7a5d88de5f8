package order_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	b := order.NewBuilder()
	require.NoError(t, b.AddItem(mustMenuItem(t, 1, "Soup", "4.00"), 2))
	require.NoError(t, b.AddItem(mustMenuItem(t, 2, "Bread", "1.50"), 1))

	o, err := b.Commit(5, fixedIdentity(10), commitTime)
	require.NoError(t, err)
	return o
}

func TestRestoreOrder(t *testing.T) {
	soup, err := order.RestoreLineItem(1, "Soup", 2, kernel.MustMoney("4.00"))
	require.NoError(t, err)

	t.Run("should restore stored order with stored total", func(t *testing.T) {
		o, err := order.RestoreOrder(3, 2, commitTime, []order.LineItem{soup},
			kernel.MustMoney("7.50"), order.Served, order.Paid)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(3), o.ID())
		assert.Equal(t, "7.50", o.Total().String(), "stored total must not be recomputed")
		assert.Equal(t, order.Served, o.PreparationStatus())
		assert.Equal(t, order.Paid, o.PaymentStatus())
	})

	t.Run("should collect every invalid field", func(t *testing.T) {
		_, err := order.RestoreOrder(0, 0, commitTime, nil,
			kernel.MustMoney("1"), order.PreparationUnknown, order.PaymentUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTableNumber)
		require.ErrorIs(t, err, order.ErrEmptyOrder)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "preparation status")
		assert.Contains(t, err.Error(), "payment status")
	})

	t.Run("should not alias input slice", func(t *testing.T) {
		items := []order.LineItem{soup}
		o, err := order.RestoreOrder(3, 2, commitTime, items,
			kernel.MustMoney("8"), order.Placed, order.Unpaid)
		require.NoError(t, err)

		items[0] = order.LineItem{}

		require.NoError(t, o.Items()[0].Validate())
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	assert.NoError(t, placedOrder(t).Validate())
}

func TestOrder_SetPreparationStatus(t *testing.T) {
	t.Run("should move placed to preparing and served", func(t *testing.T) {
		o := placedOrder(t)

		require.NoError(t, o.SetPreparationStatus(order.Preparing))
		require.NoError(t, o.SetPreparationStatus(order.Served))

		assert.Equal(t, order.Served, o.PreparationStatus())
		assert.Equal(t, order.Unpaid, o.PaymentStatus())
		assert.Equal(t, "9.50", o.Total().String())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should leave order unchanged on rejected move", func(t *testing.T) {
		o := placedOrder(t)
		require.NoError(t, o.SetPreparationStatus(order.Cancelled))

		err := o.SetPreparationStatus(order.Placed)

		require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
		assert.Equal(t, order.Cancelled, o.PreparationStatus())
	})

	t.Run("should fail on unconstructed order", func(t *testing.T) {
		err := (&order.Order{}).SetPreparationStatus(order.Preparing)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_SetPaymentStatus(t *testing.T) {
	t.Run("should pay and refund", func(t *testing.T) {
		o := placedOrder(t)

		require.NoError(t, o.SetPaymentStatus(order.Paid))
		require.NoError(t, o.SetPaymentStatus(order.Refunded))

		assert.Equal(t, order.Refunded, o.PaymentStatus())
		assert.Equal(t, order.Placed, o.PreparationStatus())
	})

	t.Run("should allow paid on cancelled order", func(t *testing.T) {
		o := placedOrder(t)
		require.NoError(t, o.SetPreparationStatus(order.Cancelled))

		require.NoError(t, o.SetPaymentStatus(order.Paid))

		assert.Equal(t, order.Cancelled, o.PreparationStatus())
		assert.Equal(t, order.Paid, o.PaymentStatus())
	})

	t.Run("should reject refund of unpaid order", func(t *testing.T) {
		o := placedOrder(t)

		err := o.SetPaymentStatus(order.Refunded)

		require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
		assert.Equal(t, order.Unpaid, o.PaymentStatus())
	})
}

func TestOrder_Clone(t *testing.T) {
	o := placedOrder(t)

	c := o.Clone()
	require.NoError(t, c.SetPreparationStatus(order.Preparing))

	assert.True(t, o.IsEqual(c))
	assert.Equal(t, order.Placed, o.PreparationStatus())
	assert.Equal(t, order.Preparing, c.PreparationStatus())
	assert.Equal(t, o.Items(), c.Items())

	var nilOrder *order.Order
	assert.Nil(t, nilOrder.Clone())
}

package queries_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderQueryHandler(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	soup, err := menu.RestoreItem(1, "Soup", kernel.MustMoney("4.00"))
	require.NoError(t, err)

	registry := services.NewOrderRegistry()
	draft := services.NewDraftTicket()
	next := int64(0)
	allocate := func() (int64, error) { next++; return next, nil }
	clock := func() time.Time { return now }

	require.NoError(t, draft.AddItem(soup, 3))
	_, err = draft.Place(registry, 5, allocate, clock, nil)
	require.NoError(t, err)
	require.NoError(t, draft.AddItem(soup, 1))
	_, err = draft.Place(registry, 2, allocate, clock, nil)
	require.NoError(t, err)
	_, err = registry.ApplyPaymentStatus(2, order.Paid, nil)
	require.NoError(t, err)
	require.NoError(t, draft.AddItem(soup, 2))

	h := queries.NewOrderQueryHandler(registry, draft)

	t.Run("should list orders in placement order", func(t *testing.T) {
		orders, err := h.HandleAll(t.Context(), queries.NewGetAllOrdersQuery())

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, 5, orders[0].TableNumber)
		assert.Equal(t, "12.00", orders[0].Total.String())
		assert.Equal(t, "placed", orders[0].PreparationStatus)
		assert.Equal(t, "paid", orders[1].PaymentStatus)
		require.Len(t, orders[0].Items, 1)
		assert.Equal(t, "12.00", orders[0].Items[0].Subtotal.String())
	})

	t.Run("should get one order", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery(1)
		require.NoError(t, err)

		o, err := h.HandleOne(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, int64(1), o.ID)
		assert.Equal(t, now, o.CreatedAt)
	})

	t.Run("should fail for unknown order", func(t *testing.T) {
		q, _ := queries.NewGetOrderQuery(99)

		_, err := h.HandleOne(t.Context(), q)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject non-positive order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return draft", func(t *testing.T) {
		d, err := h.HandleDraft(t.Context(), queries.NewGetDraftQuery())

		require.NoError(t, err)
		require.Len(t, d.Items, 1)
		assert.Equal(t, 2, d.Items[0].Quantity)
		assert.Equal(t, "8.00", d.Total.String())
	})

	t.Run("should count the kitchen backlog", func(t *testing.T) {
		backlog, err := h.HandleBacklog(t.Context(), queries.NewGetKitchenBacklogQuery())

		require.NoError(t, err)
		assert.Equal(t, queries.KitchenBacklogResponse{Placed: 2, Unpaid: 1}, backlog)
		assert.Equal(t, 2, backlog.Open())
	})

	t.Run("should skip cancelled orders when counting unpaid", func(t *testing.T) {
		_, err := registry.ApplyPreparationStatus(1, order.Cancelled, nil)
		require.NoError(t, err)

		backlog, err := h.HandleBacklog(t.Context(), queries.NewGetKitchenBacklogQuery())

		require.NoError(t, err)
		assert.Equal(t, queries.KitchenBacklogResponse{Placed: 1, Cancelled: 1}, backlog)
	})
}

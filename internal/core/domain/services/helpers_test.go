package services_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func sequence(start int64) order.IdentityAllocator {
	next := start
	return func() (int64, error) {
		id := next
		next++
		return id, nil
	}
}

func soup(t *testing.T) menu.Item {
	t.Helper()
	item, err := menu.RestoreItem(1, "Soup", kernel.MustMoney("4.00"))
	require.NoError(t, err)
	return item
}

func builderWithSoup(t *testing.T, qty int) *order.Builder {
	t.Helper()
	b := order.NewBuilder()
	require.NoError(t, b.AddItem(soup(t), qty))
	return b
}

package menu_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create unstored item", func(t *testing.T) {
		item, err := menu.NewItem("  Soup ", kernel.MustMoney("4.00"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Soup", item.Name())
		assert.Equal(t, "4.00", item.Price().String())
		assert.False(t, item.IsStored())
		assert.Zero(t, item.ID())
	})

	t.Run("should fail with blank name and invalid price", func(t *testing.T) {
		_, err := menu.NewItem(" ", kernel.Money{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "menu item name")
		assert.Contains(t, err.Error(), "money must be created")
	})

	t.Run("should accept free item", func(t *testing.T) {
		item, err := menu.NewItem("Water", kernel.ZeroMoney())

		require.NoError(t, err)
		assert.True(t, item.Price().IsZero())
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should restore stored item", func(t *testing.T) {
		item, err := menu.RestoreItem(7, "Bread", kernel.MustMoney("1.50"))

		require.NoError(t, err)
		assert.Equal(t, int64(7), item.ID())
		assert.True(t, item.IsStored())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		_, err := menu.RestoreItem(0, "Bread", kernel.MustMoney("1.50"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})
}

func TestItem_Update(t *testing.T) {
	original, err := menu.RestoreItem(3, "Soup", kernel.MustMoney("4.00"))
	require.NoError(t, err)

	updated, err := original.Update("Tomato Soup", kernel.MustMoney("5.00"))

	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ID())
	assert.Equal(t, "Tomato Soup", updated.Name())
	assert.Equal(t, "Soup", original.Name(), "original snapshot must not change")
	assert.Equal(t, "4.00", original.Price().String())
}

func TestItem_WithID(t *testing.T) {
	item, _ := menu.NewItem("Tea", kernel.MustMoney("2"))

	stored, err := item.WithID(11)
	require.NoError(t, err)
	assert.Equal(t, int64(11), stored.ID())

	_, err = item.WithID(-1)
	require.Error(t, err)

	var zero menu.Item
	_, err = zero.WithID(1)
	assert.Equal(t, menu.ErrItemIsNotConstructed, err)
}

package services_test

import (
	"errors"
	"sync"
	"testing"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRegistry_CommitAndRegister(t *testing.T) {
	t.Run("should register committed order and clear builder", func(t *testing.T) {
		registry := services.NewOrderRegistry()
		b := builderWithSoup(t, 2)
		require.NoError(t, b.AddItem(soup(t), 1))

		var persisted *order.Order
		o, err := registry.CommitAndRegister(b, 5, sequence(1), clock, func(o *order.Order) error {
			persisted = o
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 5, o.TableNumber())
		assert.Equal(t, "12.00", o.Total().String())
		assert.Equal(t, order.Placed, o.PreparationStatus())
		assert.Equal(t, order.Unpaid, o.PaymentStatus())
		assert.Equal(t, now, o.CreatedAt())
		assert.True(t, b.IsEmpty())
		assert.Equal(t, 1, registry.Len())
		require.NotNil(t, persisted)
		assert.Equal(t, o.ID(), persisted.ID())
	})

	t.Run("should not register empty builder", func(t *testing.T) {
		registry := services.NewOrderRegistry()
		_, err := registry.CommitAndRegister(builderWithSoup(t, 1), 1, sequence(1), clock, nil)
		require.NoError(t, err)

		_, err = registry.CommitAndRegister(order.NewBuilder(), 3, sequence(2), clock, nil)

		require.ErrorIs(t, err, order.ErrEmptyOrder)
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("should leave registry and builder unchanged on failures", func(t *testing.T) {
		registry := services.NewOrderRegistry()
		b := builderWithSoup(t, 2)
		storageErr := errs.NewPersistenceError("add order", errors.New("connection reset"))

		_, err := registry.CommitAndRegister(b, 2, func() (int64, error) {
			return 0, storageErr
		}, clock, nil)
		require.ErrorIs(t, err, errs.ErrPersistence)

		_, err = registry.CommitAndRegister(b, 2, sequence(1), clock, func(*order.Order) error {
			return storageErr
		})
		require.ErrorIs(t, err, errs.ErrPersistence)

		_, err = registry.CommitAndRegister(b, 0, sequence(1), clock, nil)
		require.ErrorIs(t, err, order.ErrInvalidTableNumber)

		_, err = registry.CommitAndRegister(b, 2, sequence(1), nil, nil)
		require.ErrorIs(t, err, services.ErrClockIsRequired)

		assert.Zero(t, registry.Len())
		assert.Equal(t, 2, b.Items()[0].Quantity())
	})

	t.Run("should reject identity handed out twice", func(t *testing.T) {
		registry := services.NewOrderRegistry()
		_, err := registry.CommitAndRegister(builderWithSoup(t, 1), 1, sequence(7), clock, nil)
		require.NoError(t, err)

		b := builderWithSoup(t, 1)
		_, err = registry.CommitAndRegister(b, 1, sequence(7), clock, nil)

		require.ErrorIs(t, err, services.ErrOrderIsAlreadyRegistered)
		assert.Equal(t, 1, registry.Len())
		assert.False(t, b.IsEmpty())
	})

	t.Run("should require builder", func(t *testing.T) {
		_, err := services.NewOrderRegistry().CommitAndRegister(nil, 1, sequence(1), clock, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderRegistry_Get(t *testing.T) {
	registry := services.NewOrderRegistry()
	placed, err := registry.CommitAndRegister(builderWithSoup(t, 1), 1, sequence(3), clock, nil)
	require.NoError(t, err)

	t.Run("should return copy of registered order", func(t *testing.T) {
		got, err := registry.Get(placed.ID())
		require.NoError(t, err)

		require.NoError(t, got.SetPreparationStatus(order.Cancelled))

		again, err := registry.Get(placed.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Placed, again.PreparationStatus())
	})

	t.Run("should fail with not found", func(t *testing.T) {
		_, err := registry.Get(404)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrderRegistry_List(t *testing.T) {
	registry := services.NewOrderRegistry()
	allocate := sequence(1)
	for table := 1; table <= 3; table++ {
		_, err := registry.CommitAndRegister(builderWithSoup(t, table), table, allocate, clock, nil)
		require.NoError(t, err)
	}

	seq := registry.List()

	t.Run("should yield orders in placement order", func(t *testing.T) {
		var tables []int
		for o := range seq {
			tables = append(tables, o.TableNumber())
		}
		assert.Equal(t, []int{1, 2, 3}, tables)
	})

	t.Run("should be restartable and ignore later changes", func(t *testing.T) {
		_, err := registry.ApplyPreparationStatus(1, order.Served, nil)
		require.NoError(t, err)
		_, err = registry.CommitAndRegister(builderWithSoup(t, 1), 9, allocate, clock, nil)
		require.NoError(t, err)

		count := 0
		for o := range seq {
			count++
			assert.Equal(t, order.Placed, o.PreparationStatus())
		}
		assert.Equal(t, 3, count)

		fresh := 0
		for range registry.List() {
			fresh++
		}
		assert.Equal(t, 4, fresh)
	})

	t.Run("should stop early", func(t *testing.T) {
		for o := range registry.List() {
			assert.Equal(t, 1, o.TableNumber())
			break
		}
	})
}

func TestOrderRegistry_ApplyPreparationStatus(t *testing.T) {
	t.Run("should persist and apply change", func(t *testing.T) {
		registry := services.NewOrderRegistry()
		placed, err := registry.CommitAndRegister(builderWithSoup(t, 1), 1, sequence(1), clock, nil)
		require.NoError(t, err)

		var gotField order.StatusField
		var gotValue string
		updated, err := registry.ApplyPreparationStatus(placed.ID(), order.Preparing,
			func(id int64, field order.StatusField, value string) error {
				assert.Equal(t, placed.ID(), id)
				gotField, gotValue = field, value
				return nil
			})

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, updated.PreparationStatus())
		assert.Equal(t, order.PreparationStatusField, gotField)
		assert.Equal(t, "preparing", gotValue)

		stored, _ := registry.Get(placed.ID())
		assert.Equal(t, order.Preparing, stored.PreparationStatus())
	})

	t.Run("should keep old status when persistence fails", func(t *testing.T) {
		registry := services.NewOrderRegistry()
		placed, err := registry.CommitAndRegister(builderWithSoup(t, 1), 1, sequence(1), clock, nil)
		require.NoError(t, err)

		_, err = registry.ApplyPreparationStatus(placed.ID(), order.Cancelled,
			func(int64, order.StatusField, string) error {
				return errs.NewPersistenceError("update order", errors.New("timeout"))
			})

		require.ErrorIs(t, err, errs.ErrPersistence)
		stored, _ := registry.Get(placed.ID())
		assert.Equal(t, order.Placed, stored.PreparationStatus())
	})

	t.Run("should not persist rejected transition", func(t *testing.T) {
		registry := services.NewOrderRegistry()
		placed, err := registry.CommitAndRegister(builderWithSoup(t, 1), 1, sequence(1), clock, nil)
		require.NoError(t, err)
		_, err = registry.ApplyPreparationStatus(placed.ID(), order.Cancelled, nil)
		require.NoError(t, err)

		_, err = registry.ApplyPreparationStatus(placed.ID(), order.Placed,
			func(int64, order.StatusField, string) error {
				t.Fatal("persist must not be called")
				return nil
			})

		require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	})

	t.Run("should fail with not found", func(t *testing.T) {
		_, err := services.NewOrderRegistry().ApplyPreparationStatus(1, order.Served, nil)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrderRegistry_ApplyPaymentStatus(t *testing.T) {
	registry := services.NewOrderRegistry()
	placed, err := registry.CommitAndRegister(builderWithSoup(t, 1), 1, sequence(1), clock, nil)
	require.NoError(t, err)

	_, err = registry.ApplyPaymentStatus(placed.ID(), order.Refunded, nil)
	require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)

	_, err = registry.ApplyPaymentStatus(placed.ID(), order.Paid, nil)
	require.NoError(t, err)
	updated, err := registry.ApplyPaymentStatus(placed.ID(), order.Refunded, nil)
	require.NoError(t, err)

	assert.Equal(t, order.Refunded, updated.PaymentStatus())
	assert.Equal(t, order.Placed, updated.PreparationStatus())
}

func TestOrderRegistry_Restore(t *testing.T) {
	t.Run("should load orders in given order", func(t *testing.T) {
		first, _ := builderWithSoup(t, 1).Commit(1, sequence(20), now)
		second, _ := builderWithSoup(t, 1).Commit(2, sequence(10), now)

		registry := services.NewOrderRegistry()
		require.NoError(t, registry.Restore([]*order.Order{first, second}))

		var ids []int64
		for o := range registry.List() {
			ids = append(ids, o.ID())
		}
		assert.Equal(t, []int64{20, 10}, ids)
	})

	t.Run("should reject duplicates atomically", func(t *testing.T) {
		first, _ := builderWithSoup(t, 1).Commit(1, sequence(5), now)
		dup, _ := builderWithSoup(t, 1).Commit(2, sequence(5), now)

		registry := services.NewOrderRegistry()
		err := registry.Restore([]*order.Order{first, dup})

		require.ErrorIs(t, err, services.ErrOrderIsAlreadyRegistered)
		assert.Zero(t, registry.Len())
	})
}

func TestOrderRegistry_ConcurrentStatusChanges(t *testing.T) {
	registry := services.NewOrderRegistry()
	placed, err := registry.CommitAndRegister(builderWithSoup(t, 1), 1, sequence(1), clock, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = registry.ApplyPreparationStatus(placed.ID(), order.Preparing, nil)
		}()
		go func() {
			defer wg.Done()
			_, _ = registry.ApplyPaymentStatus(placed.ID(), order.Paid, nil)
		}()
	}
	wg.Wait()

	got, err := registry.Get(placed.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Preparing, got.PreparationStatus())
	assert.Equal(t, order.Paid, got.PaymentStatus(), "no update may be lost")
}

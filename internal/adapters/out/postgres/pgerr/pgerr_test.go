package pgerr_test

import (
	"errors"
	"testing"

	"restaurant/internal/adapters/out/postgres/pgerr"
	"restaurant/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("should keep nil", func(t *testing.T) {
		assert.NoError(t, pgerr.Wrap("add order", nil))
	})

	t.Run("should name server error code", func(t *testing.T) {
		driverErr := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}

		err := pgerr.Wrap("add order", driverErr)

		require.ErrorIs(t, err, errs.ErrPersistence)
		assert.Contains(t, err.Error(), "add order")
		assert.Contains(t, err.Error(), "unique_violation [23505]")
		assert.True(t, pgerr.IsUniqueViolation(err))

		var pqErr *pq.Error
		require.ErrorAs(t, err, &pqErr)
	})

	t.Run("should wrap any other error", func(t *testing.T) {
		cause := errors.New("connection reset by peer")

		err := pgerr.Wrap("load orders", cause)

		require.ErrorIs(t, err, errs.ErrPersistence)
		require.ErrorIs(t, err, cause)
		assert.False(t, pgerr.IsUniqueViolation(err))
	})
}

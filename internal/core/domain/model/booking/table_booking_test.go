package booking_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/booking"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookedAt = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func TestNewTableBooking(t *testing.T) {
	t.Run("should create booking", func(t *testing.T) {
		b, err := booking.NewTableBooking(4, 2, " Ada ", bookedAt)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Zero(t, b.ID())
		assert.Equal(t, 4, b.TableNumber())
		assert.Equal(t, 2, b.Capacity())
		assert.Equal(t, "Ada", b.CustomerName())
		assert.Equal(t, bookedAt, b.BookedAt())
	})

	t.Run("should collect all invalid fields", func(t *testing.T) {
		_, err := booking.NewTableBooking(0, -1, "", time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "table number")
		assert.Contains(t, err.Error(), "capacity")
		assert.Contains(t, err.Error(), "customer name")
		assert.Contains(t, err.Error(), "booking time")
	})
}

func TestRestoreTableBooking(t *testing.T) {
	b, err := booking.RestoreTableBooking(8, 1, 6, "Grace", bookedAt)
	require.NoError(t, err)
	assert.Equal(t, int64(8), b.ID())

	_, err = booking.RestoreTableBooking(0, 1, 6, "Grace", bookedAt)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTableBooking_Update(t *testing.T) {
	t.Run("should update and keep booking time", func(t *testing.T) {
		b, err := booking.RestoreTableBooking(1, 1, 2, "Ada", bookedAt)
		require.NoError(t, err)

		require.NoError(t, b.Update(3, 5, "Ada Lovelace"))

		assert.Equal(t, int64(1), b.ID())
		assert.Equal(t, 3, b.TableNumber())
		assert.Equal(t, 5, b.Capacity())
		assert.Equal(t, "Ada Lovelace", b.CustomerName())
		assert.Equal(t, bookedAt, b.BookedAt())
	})

	t.Run("should leave booking unchanged on error", func(t *testing.T) {
		b, err := booking.RestoreTableBooking(1, 1, 2, "Ada", bookedAt)
		require.NoError(t, err)

		err = b.Update(7, 0, "Bob")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 1, b.TableNumber())
		assert.Equal(t, "Ada", b.CustomerName())
	})

	t.Run("should fail on unconstructed booking", func(t *testing.T) {
		err := (&booking.TableBooking{}).Update(1, 1, "x")
		require.ErrorIs(t, err, booking.ErrTableBookingIsNotConstructed)
	})
}

package ports

import (
	"context"

	"restaurant/internal/core/domain/model/booking"
)

// BookingRepository stores table bookings.
type BookingRepository interface {
	// Add stores a new booking and sets its identity.
	Add(ctx context.Context, aggregate *booking.TableBooking) error
	Update(ctx context.Context, aggregate *booking.TableBooking) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*booking.TableBooking, error)
}

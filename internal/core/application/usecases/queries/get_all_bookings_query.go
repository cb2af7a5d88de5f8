package queries

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var ErrGetAllBookingsQueryIsNotConstructed = errors.New(
	"GetAllBookingsQuery must be created via NewGetAllBookingsQuery constructor",
)

// GetAllBookingsQuery lists table bookings, most recent booking time first.
type GetAllBookingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllBookingsQuery() GetAllBookingsQuery {
	return GetAllBookingsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllBookingsQueryIsNotConstructed)
}

type GetAllBookingsQueryResponse struct {
	ID           int64
	TableNumber  int
	Capacity     int
	CustomerName string
	BookedAt     time.Time
}

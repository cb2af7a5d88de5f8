package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetAllBookingsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllBookingsQueryHandler(db *gorm.DB) GetAllBookingsQueryHandler {
	return GetAllBookingsQueryHandler{db: db}
}

func (h GetAllBookingsQueryHandler) Handle(
	ctx context.Context,
	query GetAllBookingsQuery,
) ([]GetAllBookingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bookings := make([]GetAllBookingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_number,
			capacity,
			customer_name,
			booked_at
		FROM table_bookings
		ORDER BY booked_at DESC, id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var b GetAllBookingsQueryResponse
		if err = rows.Scan(&b.ID, &b.TableNumber, &b.Capacity, &b.CustomerName, &b.BookedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

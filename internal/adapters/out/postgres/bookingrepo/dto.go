// Package bookingrepo stores table bookings with GORM.
package bookingrepo

import (
	"time"

	"restaurant/internal/core/domain/model/booking"
)

type TableBookingDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	TableNumber  int       `gorm:"not null"`
	Capacity     int       `gorm:"not null"`
	CustomerName string    `gorm:"not null"`
	BookedAt     time.Time `gorm:"not null;index"`
}

func (TableBookingDTO) TableName() string {
	return "table_bookings"
}

func fromDomain(b *booking.TableBooking) TableBookingDTO {
	return TableBookingDTO{
		ID:           b.ID(),
		TableNumber:  b.TableNumber(),
		Capacity:     b.Capacity(),
		CustomerName: b.CustomerName(),
		BookedAt:     b.BookedAt(),
	}
}

func toDomain(dto TableBookingDTO) (*booking.TableBooking, error) {
	return booking.RestoreTableBooking(dto.ID, dto.TableNumber, dto.Capacity, dto.CustomerName, dto.BookedAt)
}

package bookingrepo

import (
	"context"
	"errors"

	"restaurant/internal/adapters/out/postgres/pgerr"
	"restaurant/internal/core/domain/model/booking"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBookingRepository implements ports.BookingRepository using GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Add inserts the booking and sets the identity assigned by the database on it.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.TableBooking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add table booking", err)
	}

	return aggregate.SetID(dto.ID)
}

func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.TableBooking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TableBookingDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"table_number":  dto.TableNumber,
			"capacity":      dto.Capacity,
			"customer_name": dto.CustomerName,
		})
	if result.Error != nil {
		return pgerr.Wrap("update table booking", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("table booking", dto.ID)
	}

	return nil
}

func (r *GormBookingRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&TableBookingDTO{}, id)
	if result.Error != nil {
		return pgerr.Wrap("delete table booking", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("table booking", id)
	}

	return nil
}

func (r *GormBookingRepository) Get(ctx context.Context, id int64) (*booking.TableBooking, error) {
	var dto TableBookingDTO
	err := r.db.WithContext(ctx).First(&dto, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("table booking", id, err)
		}
		return nil, pgerr.Wrap("get table booking", err)
	}

	return toDomain(dto)
}

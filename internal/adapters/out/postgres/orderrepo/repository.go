package orderrepo

import (
	"context"
	"fmt"

	"restaurant/internal/adapters/out/postgres/pgerr"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// NextID draws the next value of the orders id sequence. The value is never
// handed out again, even if the surrounding transaction rolls back.
func (r *GormOrderRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval(pg_get_serial_sequence('orders', 'id'))").
		Scan(&id).Error; err != nil {
		return 0, pgerr.Wrap("allocate order id", err)
	}
	return id, nil
}

// Add stores the order row and then its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	dto := fromDomain(aggregate)
	if err := db.Omit("Items").Create(&dto).Error; err != nil {
		return pgerr.Wrap("add order", err)
	}

	items := itemsFromDomain(aggregate)
	if err := db.Create(&items).Error; err != nil {
		return pgerr.Wrap("add order items", err)
	}

	return nil
}

// UpdateStatus writes one status column.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	orderID int64,
	field order.StatusField,
	value string,
) error {
	switch field {
	case order.PreparationStatusField, order.PaymentStatusField:
	default:
		return errs.NewValueIsInvalidErrorWithCause("status field", fmt.Errorf("%q is unknown", field))
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderID).
		Update(string(field), value)
	if result.Error != nil {
		return pgerr.Wrap("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID)
	}

	return nil
}

// GetAll loads every order with its lines, in id order.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Wrap("load orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("restore order %d: %w", dto.ID, err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Package orderrepo stores committed orders and their line items with GORM.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. The id column is a bigserial;
// its sequence hands out order identities before the row is inserted.
type OrderDTO struct {
	ID                int64           `gorm:"primaryKey;autoIncrement"`
	TableNumber       int             `gorm:"not null"`
	CreatedAt         time.Time       `gorm:"not null"`
	Total             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PreparationStatus string          `gorm:"type:varchar(16);not null;index"`
	PaymentStatus     string          `gorm:"type:varchar(16);not null"`
	Items             []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one frozen line of an order. menu_item_id is not a foreign
// key: menu entries may be deleted while orders are kept.
type OrderItemDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	OrderID    int64           `gorm:"not null;index"`
	Position   int             `gorm:"not null"`
	MenuItemID int64           `gorm:"not null"`
	Name       string          `gorm:"not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                o.ID(),
		TableNumber:       o.TableNumber(),
		CreatedAt:         o.CreatedAt(),
		Total:             o.Total().Amount(),
		PreparationStatus: o.PreparationStatus().String(),
		PaymentStatus:     o.PaymentStatus().String(),
	}
}

func itemsFromDomain(o *order.Order) []OrderItemDTO {
	items := o.Items()
	dtos := make([]OrderItemDTO, 0, len(items))
	for i, l := range items {
		dtos = append(dtos, OrderItemDTO{
			OrderID:    o.ID(),
			Position:   i,
			MenuItemID: l.MenuItemID(),
			Name:       l.Name(),
			Quantity:   l.Quantity(),
			UnitPrice:  l.UnitPrice().Amount(),
		})
	}
	return dtos
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, err := kernel.NewMoney(itemDTO.UnitPrice)
		if err != nil {
			return nil, err
		}

		item, err := order.RestoreLineItem(itemDTO.MenuItemID, itemDTO.Name, itemDTO.Quantity, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	preparation, err := order.ParsePreparationStatus(dto.PreparationStatus)
	if err != nil {
		return nil, err
	}

	payment, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, dto.TableNumber, dto.CreatedAt, items, total, preparation, payment)
}

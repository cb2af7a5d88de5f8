// Package menurepo stores menu catalog entries with GORM.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

type MenuItemDTO struct {
	ID    int64           `gorm:"primaryKey;autoIncrement"`
	Name  string          `gorm:"not null"`
	Price decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:    item.ID(),
		Name:  item.Name(),
		Price: item.Price().Amount(),
	}
}

func toDomain(dto MenuItemDTO) (menu.Item, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return menu.Item{}, err
	}
	return menu.RestoreItem(dto.ID, dto.Name, price)
}

package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllMenuItemsQueryHandler reads the menu catalog.
//
// Example:
//
//	handler := NewGetAllMenuItemsQueryHandler(db)
//	items, err := handler.Handle(ctx, NewGetAllMenuItemsQuery())
type GetAllMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllMenuItemsQueryHandler(db *gorm.DB) GetAllMenuItemsQueryHandler {
	return GetAllMenuItemsQueryHandler{db: db}
}

func (h GetAllMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenuItemsQuery,
) ([]GetAllMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetAllMenuItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM menu_items
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetAllMenuItemsQueryResponse
		var price decimal.Decimal

		if err = rows.Scan(&item.ID, &item.Name, &price); err != nil {
			return nil, err
		}

		if item.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

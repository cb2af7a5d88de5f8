package menurepo

import (
	"context"
	"errors"

	"restaurant/internal/adapters/out/postgres/pgerr"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Add inserts a new entry and returns it with the identity the database assigned.
func (r *GormMenuRepository) Add(ctx context.Context, item menu.Item) (menu.Item, error) {
	if err := item.Validate(); err != nil {
		return menu.Item{}, err
	}

	dto := fromDomain(item)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return menu.Item{}, pgerr.Wrap("add menu item", err)
	}

	return item.WithID(dto.ID)
}

func (r *GormMenuRepository) Update(ctx context.Context, item menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.IsStored() {
		return errs.NewValueIsRequiredError("menu item id")
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "price": dto.Price})
	if result.Error != nil {
		return pgerr.Wrap("update menu item", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", dto.ID)
	}

	return nil
}

func (r *GormMenuRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, id)
	if result.Error != nil {
		return pgerr.Wrap("delete menu item", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id)
	}

	return nil
}

func (r *GormMenuRepository) Get(ctx context.Context, id int64) (menu.Item, error) {
	var dto MenuItemDTO
	err := r.db.WithContext(ctx).First(&dto, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menu.Item{}, errs.NewObjectNotFoundErrorWithCause("menu item", id, err)
		}
		return menu.Item{}, pgerr.Wrap("get menu item", err)
	}

	return toDomain(dto)
}

package ports

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
)

// MenuRepository stores the menu catalog.
type MenuRepository interface {
	// Add stores a new item and returns it with its assigned identity.
	Add(ctx context.Context, item menu.Item) (menu.Item, error)

	// Update stores a changed name and price. Orders keep their captured copies.
	Update(ctx context.Context, item menu.Item) error

	// Delete removes an item. Returns errs.ObjectNotFoundError when it does not exist.
	Delete(ctx context.Context, id int64) error

	// Get returns errs.ObjectNotFoundError when the item does not exist.
	Get(ctx context.Context, id int64) (menu.Item, error)
}

// MenuCache keeps menu snapshots close to the draft ticket. Implementations
// report a miss with found == false and a nil error.
type MenuCache interface {
	Get(ctx context.Context, id int64) (item menu.Item, found bool, err error)
	Set(ctx context.Context, item menu.Item) error
	Invalidate(ctx context.Context, id int64) error
}

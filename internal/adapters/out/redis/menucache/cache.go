// Package menucache keeps snapshots of menu catalog entries in Redis so that
// adding an item to the draft ticket does not need a database round trip.
package menucache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "menu:item:"

type snapshot struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// RedisMenuCache implements ports.MenuCache. Entries expire after ttl; a zero
// ttl keeps them until they are invalidated.
type RedisMenuCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisMenuCache(client redis.Cmdable, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{client: client, ttl: ttl}
}

// Get returns the cached entry. found is false on a miss.
func (c *RedisMenuCache) Get(ctx context.Context, id int64) (menu.Item, bool, error) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return menu.Item{}, false, nil
	}
	if err != nil {
		return menu.Item{}, false, fmt.Errorf("read menu item %d from cache: %w", id, err)
	}

	var s snapshot
	if err = json.Unmarshal(raw, &s); err != nil {
		return menu.Item{}, false, fmt.Errorf("decode cached menu item %d: %w", id, err)
	}

	price, err := kernel.MoneyFromString(s.Price)
	if err != nil {
		return menu.Item{}, false, err
	}

	item, err := menu.RestoreItem(s.ID, s.Name, price)
	if err != nil {
		return menu.Item{}, false, err
	}
	return item, true, nil
}

func (c *RedisMenuCache) Set(ctx context.Context, item menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.IsStored() {
		return errs.NewValueIsRequiredError("menu item id")
	}

	raw, err := json.Marshal(snapshot{
		ID:    item.ID(),
		Name:  item.Name(),
		Price: item.Price().String(),
	})
	if err != nil {
		return err
	}

	if err = c.client.Set(ctx, key(item.ID()), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("write menu item %d to cache: %w", item.ID(), err)
	}
	return nil
}

func (c *RedisMenuCache) Invalidate(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("evict menu item %d from cache: %w", id, err)
	}
	return nil
}

func key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

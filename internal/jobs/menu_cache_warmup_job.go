package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// MenuReader lists the whole menu catalog.
type MenuReader interface {
	Handle(ctx context.Context, query queries.GetAllMenuItemsQuery) ([]queries.GetAllMenuItemsQueryResponse, error)
}

// MenuCacheWarmupJob copies the menu catalog into the menu cache on a
// schedule, so entries evicted by expiry are back before the next draft add.
type MenuCacheWarmupJob struct {
	reader   MenuReader
	cache    ports.MenuCache
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewMenuCacheWarmupJob(
	reader MenuReader,
	cache ports.MenuCache,
	schedule string,
	logger *slog.Logger,
) *MenuCacheWarmupJob {
	return &MenuCacheWarmupJob{
		reader:   reader,
		cache:    cache,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "menu_cache_warmup_job"),
	}
}

// Start warms the cache once, then on every tick of the schedule.
func (j *MenuCacheWarmupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.run(context.Background())
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Menu cache warmup job started", "schedule", j.schedule)
	return nil
}

func (j *MenuCacheWarmupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Menu cache warmup job stopped")
}

func (j *MenuCacheWarmupJob) run(ctx context.Context) {
	items, err := j.reader.Handle(ctx, queries.NewGetAllMenuItemsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Menu cache warmup job failed", "error", err)
		return
	}

	cached := 0
	for _, resp := range items {
		item, err := menu.RestoreItem(resp.ID, resp.Name, resp.Price)
		if err != nil {
			j.logger.WarnContext(ctx, "Skipping invalid menu item", "id", resp.ID, "error", err)
			continue
		}

		if err = j.cache.Set(ctx, item); err != nil {
			// the cache is down; the next tick retries
			j.logger.ErrorContext(ctx, "Menu cache warmup job failed", "error", err)
			return
		}
		cached++
	}

	j.logger.DebugContext(ctx, "Menu cache warmed", "items", cached)
}

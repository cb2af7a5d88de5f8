package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BacklogReader reports how many orders sit in each preparation status.
type BacklogReader interface {
	HandleBacklog(ctx context.Context, query queries.GetKitchenBacklogQuery) (queries.KitchenBacklogResponse, error)
}

// KitchenBacklogJob logs the kitchen backlog on a schedule.
type KitchenBacklogJob struct {
	reader   BacklogReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewKitchenBacklogJob(reader BacklogReader, schedule string, logger *slog.Logger) *KitchenBacklogJob {
	return &KitchenBacklogJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "kitchen_backlog_job"),
	}
}

// Start registers the job and starts its scheduler.
func (j *KitchenBacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen backlog job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *KitchenBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Kitchen backlog job stopped")
}

func (j *KitchenBacklogJob) run(ctx context.Context) {
	backlog, err := j.reader.HandleBacklog(ctx, queries.NewGetKitchenBacklogQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Kitchen backlog job failed", "error", err)
		return
	}

	level := slog.LevelInfo
	if backlog.Open() == 0 {
		level = slog.LevelDebug
	}

	j.logger.Log(ctx, level, "Kitchen backlog",
		"placed", backlog.Placed,
		"preparing", backlog.Preparing,
		"served", backlog.Served,
		"cancelled", backlog.Cancelled,
		"unpaid", backlog.Unpaid,
	)
}

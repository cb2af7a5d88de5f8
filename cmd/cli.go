package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant/api"
	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/events"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/redis/menucache"
	"restaurant/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "restaurant",
		Short:         "Restaurant order service",
		Long:          "Serves the menu, the draft ticket, placed orders and table bookings over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

// Execute runs the command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}

			db, err := postgres.Open(cfg.DSN())
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := postgres.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	var (
		port    string
		migrate bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and background jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.HTTPPort = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, migrate)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP port, overrides HTTP_PORT")
	cmd.Flags().BoolVar(&migrate, "migrate", true, "migrate the schema before serving")
	return cmd
}

func serve(ctx context.Context, cfg Config, migrate bool) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := postgres.Open(cfg.DSN())
	if err != nil {
		return err
	}
	defer closeDB(db)

	if migrate {
		if err := postgres.Migrate(db); err != nil {
			return err
		}
	}

	publisher, closePublisher, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	cache, closeCache, err := newMenuCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	root := NewCompositionRoot(cfg, db, publisher, cache, logger)
	if err := root.RestoreOrders(ctx); err != nil {
		return err
	}

	doc, err := api.Load()
	if err != nil {
		return err
	}
	e, err := httpin.NewRouter(root.CreateServer(), doc, logger)
	if err != nil {
		return err
	}

	jm := root.CreateJobManager()
	if err := jm.StartAll(); err != nil {
		return err
	}
	defer jm.StopAll()

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newPublisher picks the order event publisher named by EVENTS_BROKER. The
// returned func releases the broker connection.
func newPublisher(cfg Config, logger *slog.Logger) (ports.OrderEventPublisher, func(), error) {
	switch cfg.EventsBroker {
	case BrokerKafka:
		writer := events.NewKafkaWriter(cfg.KafkaBrokers(), cfg.KafkaOrderChangedTopic)
		return events.NewKafkaPublisher(writer), closeQuietly(writer), nil
	case BrokerRabbitMQ:
		conn, err := events.DialRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			return nil, nil, err
		}
		publisher, err := events.NewRabbitMQPublisher(conn.Channel(), cfg.RabbitMQExchange)
		if err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		return publisher, closeQuietly(conn), nil
	default:
		return events.NewLogPublisher(logger), func() {}, nil
	}
}

// newMenuCache returns a nil cache when REDIS_ADDR is empty.
func newMenuCache(ctx context.Context, cfg Config) (ports.MenuCache, func(), error) {
	if cfg.RedisAddr == "" {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	return menucache.NewRedisMenuCache(client, cfg.MenuCacheTTL), closeQuietly(client), nil
}

func closeQuietly(c io.Closer) func() {
	return func() { _ = c.Close() }
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

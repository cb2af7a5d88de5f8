package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())

	for _, key := range []string{
		"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_PASSWORD", "DB_SSLMODE",
		"REDIS_ADDR", "MENU_CACHE_TTL", "EVENTS_BROKER", "KAFKA_HOST",
		"KAFKA_ORDER_CHANGED_TOPIC", "RABBITMQ_URL", "RABBITMQ_EXCHANGE",
		"BACKLOG_JOB_SCHEDULE", "MENU_WARMUP_SCHEDULE",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("DB_USER", "restaurant")
	t.Setenv("DB_NAME", "restaurant")
}

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults without a .env file", func(t *testing.T) {
		setBaseEnv(t)

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, 10*time.Minute, cfg.MenuCacheTTL)
		assert.Equal(t, BrokerNone, cfg.EventsBroker)
		assert.Equal(t, "@every 1m", cfg.BacklogJobSchedule)
		assert.Empty(t, cfg.RedisAddr)
	})

	t.Run("should read values from .env", func(t *testing.T) {
		setBaseEnv(t)
		require.NoError(t, os.Unsetenv("HTTP_PORT"))
		require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("HTTP_PORT=9090\nMENU_CACHE_TTL=30s\n"), 0o600))
		require.NoError(t, os.Unsetenv("MENU_CACHE_TTL"))

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, 30*time.Second, cfg.MenuCacheTTL)
	})

	t.Run("should reject a malformed cache ttl", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("MENU_CACHE_TTL", "soon")

		_, err := LoadConfig()

		require.ErrorContains(t, err, "MENU_CACHE_TTL")
	})

	t.Run("should require database settings", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("DB_USER", "")
		t.Setenv("DB_NAME", "")

		_, err := LoadConfig()

		require.ErrorContains(t, err, "DB_USER is required")
		require.ErrorContains(t, err, "DB_NAME is required")
	})
}

func TestConfig_Validate(t *testing.T) {
	base := Config{DBUser: "u", DBName: "n", EventsBroker: BrokerNone}

	t.Run("should require kafka host for kafka", func(t *testing.T) {
		cfg := base
		cfg.EventsBroker = BrokerKafka
		assert.ErrorContains(t, cfg.Validate(), "KAFKA_HOST")
	})

	t.Run("should require url for rabbitmq", func(t *testing.T) {
		cfg := base
		cfg.EventsBroker = BrokerRabbitMQ
		assert.ErrorContains(t, cfg.Validate(), "RABBITMQ_URL")
	})

	t.Run("should reject unknown broker", func(t *testing.T) {
		cfg := base
		cfg.EventsBroker = "carrier-pigeon"
		assert.ErrorContains(t, cfg.Validate(), "unknown")
	})

	t.Run("should accept no broker", func(t *testing.T) {
		assert.NoError(t, base.Validate())
	})
}

func TestConfig_DSNAndBrokers(t *testing.T) {
	cfg := Config{
		DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "n", DBSslMode: "disable",
		KafkaHost: "k1:9092, k2:9092,,",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers())
}

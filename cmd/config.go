package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Events broker names accepted in EVENTS_BROKER.
const (
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
	BrokerNone     = "none"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr    string
	MenuCacheTTL time.Duration

	EventsBroker           string
	KafkaHost              string
	KafkaOrderChangedTopic string
	RabbitMQURL            string
	RabbitMQExchange       string

	BacklogJobSchedule string
	MenuWarmupSchedule string
}

// LoadConfig reads the environment, after loading .env if there is one.
// Variables already set in the environment win over .env.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	ttl, err := time.ParseDuration(envOr("MENU_CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("MENU_CACHE_TTL: %w", err)
	}

	cfg := Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		MenuCacheTTL: ttl,

		EventsBroker:           strings.ToLower(envOr("EVENTS_BROKER", BrokerNone)),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: envOr("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		RabbitMQURL:            os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:       envOr("RABBITMQ_EXCHANGE", "orders"),

		BacklogJobSchedule: envOr("BACKLOG_JOB_SCHEDULE", "@every 1m"),
		MenuWarmupSchedule: envOr("MENU_WARMUP_SCHEDULE", "@every 5m"),
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings that have no usable default.
func (c Config) Validate() error {
	var errs []error

	if c.DBUser == "" {
		errs = append(errs, errors.New("DB_USER is required"))
	}
	if c.DBName == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}

	switch c.EventsBroker {
	case BrokerKafka:
		if c.KafkaHost == "" {
			errs = append(errs, errors.New("KAFKA_HOST is required for the kafka broker"))
		}
	case BrokerRabbitMQ:
		if c.RabbitMQURL == "" {
			errs = append(errs, errors.New("RABBITMQ_URL is required for the rabbitmq broker"))
		}
	case BrokerNone:
	default:
		errs = append(errs, fmt.Errorf("EVENTS_BROKER %q is unknown", c.EventsBroker))
	}

	return errors.Join(errs...)
}

// DSN is the lib/pq connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

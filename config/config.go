package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	ServerPort   string
	BookingDelay time.Duration
	SeedFile     string
	CatalogDSN   string
	RabbitURL    string
	LogLevel     string
	LogFormat    string
}

// Load reads .env (if present), then the environment, then command-line
// flags. Later sources win.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	delay, err := time.ParseDuration(getEnv("BOOKING_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("BOOKING_DELAY: %w", err)
	}

	cfg := &Config{}
	flags := pflag.NewFlagSet("event-ticketing", pflag.ContinueOnError)
	flags.StringVar(&cfg.ServerPort, "port", getEnv("SERVER_PORT", "8080"), "HTTP listen port")
	flags.DurationVar(&cfg.BookingDelay, "booking-delay", delay, "simulated latency before a booking is committed")
	flags.StringVar(&cfg.SeedFile, "seed-file", getEnv("SEED_FILE", ""), "YAML catalog of users and events")
	flags.StringVar(&cfg.CatalogDSN, "catalog-dsn", getEnv("CATALOG_DSN", ""), "Postgres DSN of a read-only catalog")
	flags.StringVar(&cfg.RabbitURL, "rabbitmq-url", getEnv("RABBITMQ_URL", ""), "AMQP URL for domain events (empty disables)")
	flags.StringVar(&cfg.LogLevel, "log-level", getEnv("LOG_LEVEL", "info"), "debug, info, warn or error")
	flags.StringVar(&cfg.LogFormat, "log-format", getEnv("LOG_FORMAT", "text"), "text or json")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return errors.New("server port is required")
	}
	if c.BookingDelay < 0 {
		return fmt.Errorf("booking delay must not be negative, got %s", c.BookingDelay)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}

// Logger builds the process logger on w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, _ := c.Level()
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start, read from the
// environment. A .env file is loaded first when present (local runs);
// containerized deployments inject the variables directly.
type Config struct {
	DatabaseDSN   string
	GRPCAddress   string
	APIToken      string
	Timezone      *time.Location
	SweepInterval time.Duration
}

const (
	defaultGRPCAddress   = ":8080"
	defaultAPIToken      = "dev-token"
	defaultTimezone      = "UTC"
	defaultSweepInterval = time.Minute
)

// Load reads the configuration from the environment, loading envPath as a
// .env file first if it exists.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		// Missing .env is fine; env vars may come from the environment
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envPath, err)
		}
	}

	cfg := &Config{
		DatabaseDSN: os.Getenv("DB_CONN_STR"),
		GRPCAddress: envOr("GRPC_ADDRESS", defaultGRPCAddress),
		APIToken:    envOr("API_TOKEN", defaultAPIToken),
	}

	if cfg.DatabaseDSN == "" {
		// Build the DSN from individual vars (Docker friendly)
		host := envOr("DB_HOST", "localhost")
		port := envOr("DB_PORT", "5432")
		user := envOr("DB_USER", "postgres")
		password := envOr("DB_PASSWORD", "postgres")
		dbname := envOr("DB_NAME", "moneybook")
		sslmode := envOr("DB_SSLMODE", "disable")

		cfg.DatabaseDSN = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode)
	}

	tzName := envOr("APP_TIMEZONE", defaultTimezone)
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tzName, err)
	}
	cfg.Timezone = loc

	cfg.SweepInterval = defaultSweepInterval
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SWEEP_INTERVAL %q: %w", raw, err)
		}
		if interval <= 0 {
			return nil, fmt.Errorf("SWEEP_INTERVAL must be positive")
		}
		cfg.SweepInterval = interval
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

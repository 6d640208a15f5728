// Package config loads configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"fund-nav-tracker/internal/domain"
)

// Config holds all configuration for the application.
type Config struct {
	Exchange   ExchangeConfig
	Postgres   PostgresConfig
	Clickhouse ClickhouseConfig
	Assets     []domain.Asset
}

// ExchangeConfig holds exchange API configuration.
type ExchangeConfig struct {
	BaseURL string
}

// PostgresConfig holds PostgreSQL configuration.
type PostgresConfig struct {
	DSN string
}

// ClickhouseConfig holds the optional analytics mirror configuration.
// An empty DSN disables the mirror.
type ClickhouseConfig struct {
	DSN string
}

// Load loads configuration from environment variables. When envFile is
// non-empty the file is loaded first; a missing file is an error since the
// operator asked for it explicitly.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	assets, err := parseAssets(os.Getenv("TRACKER_ASSETS"))
	if err != nil {
		return nil, fmt.Errorf("parse TRACKER_ASSETS: %w", err)
	}
	if err := domain.ValidateAssets(assets); err != nil {
		return nil, fmt.Errorf("validate assets: %w", err)
	}

	return &Config{
		Exchange: ExchangeConfig{
			BaseURL: getEnv("BINANCE_BASE_URL", "https://api.binance.com"),
		},
		Postgres: PostgresConfig{
			DSN: getEnv("POSTGRES_DSN", ""),
		},
		Clickhouse: ClickhouseConfig{
			DSN: getEnv("CLICKHOUSE_DSN", ""),
		},
		Assets: assets,
	}, nil
}

// parseAssets parses "SYMBOL=label,SYMBOL=label" pairs. An empty spec
// falls back to the default benchmark mapping.
func parseAssets(spec string) ([]domain.Asset, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return domain.DefaultAssets, nil
	}

	var assets []domain.Asset
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		symbol, label, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed pair %q, want SYMBOL=label", pair)
		}
		assets = append(assets, domain.Asset{
			Symbol: strings.TrimSpace(symbol),
			Label:  strings.TrimSpace(label),
		})
	}
	return assets, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

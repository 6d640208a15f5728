package config

import (
	"testing"

	"fund-nav-tracker/internal/domain"
)

func TestParseAssets_Default(t *testing.T) {
	assets, err := parseAssets("")
	if err != nil {
		t.Fatalf("parseAssets failed: %v", err)
	}
	if len(assets) != len(domain.DefaultAssets) {
		t.Errorf("expected default mapping, got %v", assets)
	}
}

func TestParseAssets_CustomMapping(t *testing.T) {
	assets, err := parseAssets("BTCUSDT=benchmark_btc, DOGEUSDT=benchmark_doge")
	if err != nil {
		t.Fatalf("parseAssets failed: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}
	if assets[1].Symbol != "DOGEUSDT" || assets[1].Label != "benchmark_doge" {
		t.Errorf("unexpected second asset: %+v", assets[1])
	}
}

func TestParseAssets_Malformed(t *testing.T) {
	if _, err := parseAssets("BTCUSDT"); err == nil {
		t.Error("expected error for pair without label")
	}
}

func TestLoad_RejectsDuplicateLabels(t *testing.T) {
	t.Setenv("TRACKER_ASSETS", "BTCUSDT=benchmark_btc,ETHUSDT=benchmark_btc")

	if _, err := Load(""); err == nil {
		t.Error("expected error for duplicate labels")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TRACKER_ASSETS", "")
	t.Setenv("BINANCE_BASE_URL", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("CLICKHOUSE_DSN", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Exchange.BaseURL != "https://api.binance.com" {
		t.Errorf("unexpected default base URL: %s", cfg.Exchange.BaseURL)
	}
	if cfg.Clickhouse.DSN != "" {
		t.Errorf("expected mirror disabled by default, got %q", cfg.Clickhouse.DSN)
	}
}

// Package main is the tracker entry point. A single run performs exactly
// one fetch → persist → NAV cycle and exits; with -cron it stays resident
// and repeats the cycle on a schedule.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fund-nav-tracker/internal/config"
	"fund-nav-tracker/internal/exchange"
	"fund-nav-tracker/internal/observability"
	"fund-nav-tracker/internal/orchestrator"
	"fund-nav-tracker/internal/reporting"
	"fund-nav-tracker/internal/schedule"
	"fund-nav-tracker/internal/storage"
	"fund-nav-tracker/internal/storage/clickhouse"
	"fund-nav-tracker/internal/storage/memory"
	pgstore "fund-nav-tracker/internal/storage/postgres"
)

func main() {
	envFile := flag.String("env-file", "", "Optional .env file to load before reading the environment")
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string (overrides POSTGRES_DSN)")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "ClickHouse DSN for the price mirror (overrides CLICKHOUSE_DSN)")
	useMemory := flag.Bool("use-memory", false, "Use in-memory storage instead of PostgreSQL (dry run)")
	cronSpec := flag.String("cron", "", "Cron spec for daemon mode (empty: run once and exit)")
	metricsAddr := flag.String("metrics-addr", "", "Prometheus metrics HTTP address for daemon mode (empty to disable)")
	navCSV := flag.String("nav-csv", "", "Write the NAV table as CSV to this file after a one-shot run")
	flag.Parse()

	logger := log.New(os.Stdout, "[tracker] ", log.LstdFlags)

	cfg, err := config.Load(*envFile)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if *postgresDSN != "" {
		cfg.Postgres.DSN = *postgresDSN
	}
	if *clickhouseDSN != "" {
		cfg.Clickhouse.DSN = *clickhouseDSN
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("received signal %v, cancelling", sig)
		cancel()
	}()

	stores, cleanup, err := buildStores(ctx, cfg, *useMemory, logger)
	if err != nil {
		logger.Fatalf("setup storage: %v", err)
	}
	defer cleanup()

	metrics := observability.NewMetrics("")

	orch, err := orchestrator.New(orchestrator.Options{
		Assets:      cfg.Assets,
		Quotes:      exchange.NewBinanceClient(exchange.WithBaseURL(cfg.Exchange.BaseURL)),
		PriceStore:  stores.prices,
		PriceMirror: stores.mirror,
		ShareStore:  stores.shares,
		NavStore:    stores.nav,
		Metrics:     metrics,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatalf("setup orchestrator: %v", err)
	}

	if *cronSpec == "" {
		if _, err := orch.Run(ctx); err != nil {
			logger.Fatalf("cycle cancelled: %v", err)
		}
		if *navCSV != "" {
			if err := exportNavCSV(ctx, stores.nav, *navCSV); err != nil {
				logger.Fatalf("export nav csv: %v", err)
			}
			logger.Printf("wrote NAV export to %s", *navCSV)
		}
		return
	}

	runDaemon(ctx, orch, *cronSpec, *metricsAddr, logger)
}

// cycleStores groups the storage handles for one run.
type cycleStores struct {
	prices storage.PriceStore
	mirror storage.PriceStore // nil when no mirror is configured
	shares storage.ShareStore
	nav    storage.NavStore
}

// buildStores wires the configured backend. Dry runs get in-memory stores
// so no database is touched; otherwise Postgres is required and the
// ClickHouse mirror is attached when a DSN is set.
func buildStores(ctx context.Context, cfg *config.Config, useMemory bool, logger *log.Logger) (*cycleStores, func(), error) {
	if useMemory {
		logger.Printf("dry run: using in-memory storage")
		return &cycleStores{
			prices: memory.NewPriceStore(),
			shares: memory.NewShareStore(),
			nav:    memory.NewNavStore(),
		}, func() {}, nil
	}

	if cfg.Postgres.DSN == "" {
		return nil, nil, fmt.Errorf("POSTGRES_DSN is required (or pass -use-memory)")
	}

	pool, err := pgstore.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	stores := &cycleStores{
		prices: pgstore.NewPriceStore(pool),
		shares: pgstore.NewShareStore(pool),
		nav:    pgstore.NewNavStore(pool),
	}
	cleanup := pool.Close

	if cfg.Clickhouse.DSN != "" {
		conn, err := clickhouse.NewConn(ctx, cfg.Clickhouse.DSN)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("connect clickhouse: %w", err)
		}
		stores.mirror = clickhouse.NewPriceHistoryStore(conn)
		cleanup = func() {
			conn.Close()
			pool.Close()
		}
	}

	return stores, cleanup, nil
}

// exportNavCSV dumps the current NAV table to a CSV file.
func exportNavCSV(ctx context.Context, store storage.NavStore, path string) error {
	records, err := store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read nav table: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := reporting.WriteNavCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}

// runDaemon keeps the process resident, running cycles on the cron spec
// and serving metrics until the context is cancelled.
func runDaemon(ctx context.Context, orch *orchestrator.Orchestrator, cronSpec, metricsAddr string, logger *log.Logger) {
	if metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.Handler())
			mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok"))
			})
			logger.Printf("starting metrics server on %s", metricsAddr)
			if err := http.ListenAndServe(metricsAddr, mux); err != nil && err != http.ErrServerClosed {
				logger.Printf("metrics server error: %v", err)
			}
		}()
	}

	sched := schedule.New(cronSpec, func(ctx context.Context) error {
		_, err := orch.Run(ctx)
		return err
	}, logger)

	if err := sched.Start(ctx); err != nil {
		logger.Fatalf("start scheduler: %v", err)
	}

	<-ctx.Done()
	sched.Stop()
}

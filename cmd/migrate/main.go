// Package main applies the embedded storage schemas.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"fund-nav-tracker/internal/config"
	"fund-nav-tracker/internal/storage/clickhouse"
	"fund-nav-tracker/internal/storage/migrations"
	pgstore "fund-nav-tracker/internal/storage/postgres"
)

func main() {
	envFile := flag.String("env-file", "", "Optional .env file to load before reading the environment")
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string (overrides POSTGRES_DSN)")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "ClickHouse DSN (overrides CLICKHOUSE_DSN, empty skips)")
	flag.Parse()

	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags)

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
	if cfg.Postgres.DSN == "" {
		logger.Fatal("POSTGRES_DSN is required")
	}

	ctx := context.Background()

	pool, err := pgstore.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		logger.Fatalf("postgres migrations: %v", err)
	}
	logger.Printf("postgres schema up to date")

	if cfg.Clickhouse.DSN == "" {
		return
	}

	conn, err := clickhouse.NewConn(ctx, cfg.Clickhouse.DSN)
	if err != nil {
		logger.Fatalf("connect clickhouse: %v", err)
	}
	defer conn.Close()

	if err := migrations.RunClickhouseMigrations(ctx, conn); err != nil {
		logger.Fatalf("clickhouse migrations: %v", err)
	}
	logger.Printf("clickhouse schema up to date")
}

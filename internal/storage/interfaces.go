package storage

import (
	"context"

	"fund-nav-tracker/internal/domain"
)

// PriceStore is the append-only sink for sampled prices
// (balance_all_consolidated table).
type PriceStore interface {
	// AppendAll inserts the records as new rows without touching existing
	// rows. An empty input is a silent no-op: no statement is issued.
	AppendAll(ctx context.Context, records []domain.PriceRecord) error
}

// NavStore is the replace-all sink for derived NAV rows (nav_table).
type NavStore interface {
	// ReplaceAll discards the destination table's content and writes the
	// given records in its place, atomically where the backend allows.
	// An empty input is a silent no-op: no destructive statement is issued.
	ReplaceAll(ctx context.Context, records []domain.NavRecord) error

	// GetAll retrieves all NAV rows ordered by timestamp ascending.
	GetAll(ctx context.Context) ([]domain.NavRecord, error)
}

// ShareStore reads the externally maintained share counts (shares_table).
type ShareStore interface {
	// GetAll retrieves all share rows ordered by timestamp ascending,
	// preserving physical row order within equal timestamps.
	GetAll(ctx context.Context) ([]domain.ShareRecord, error)
}

// FundBalanceStore maintains per-source fund balances (fund_balance_data
// table) via delete-then-append. Not on the core cycle path.
type FundBalanceStore interface {
	// ReplaceSource deletes all rows of one source and appends the given
	// replacement set. An empty input still performs the delete.
	ReplaceSource(ctx context.Context, source string, records []domain.FundBalanceRecord) error

	// GetBySource retrieves all rows for a source ordered by timestamp ascending.
	GetBySource(ctx context.Context, source string) ([]domain.FundBalanceRecord, error)
}

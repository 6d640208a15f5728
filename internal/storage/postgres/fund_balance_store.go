package postgres

import (
	"context"
	"fmt"

	"fund-nav-tracker/internal/domain"
	"fund-nav-tracker/internal/storage"
)

// FundBalanceStore implements storage.FundBalanceStore using PostgreSQL.
type FundBalanceStore struct {
	pool *Pool
}

// NewFundBalanceStore creates a new FundBalanceStore.
func NewFundBalanceStore(pool *Pool) *FundBalanceStore {
	return &FundBalanceStore{pool: pool}
}

// Compile-time interface check.
var _ storage.FundBalanceStore = (*FundBalanceStore)(nil)

// ReplaceSource deletes all rows of one source and appends the replacement
// set in a single transaction. Unlike the NAV sink, an empty replacement
// set still performs the delete: an empty upstream balance report clears
// that source.
func (s *FundBalanceStore) ReplaceSource(ctx context.Context, source string, records []domain.FundBalanceRecord) error {
	if source == "" {
		return storage.ErrInvalidInput
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM fund_balance_data WHERE source = $1`, source); err != nil {
		return fmt.Errorf("delete fund balances for %s: %w", source, err)
	}

	query := `
		INSERT INTO fund_balance_data (timestamp, source, balance)
		VALUES ($1, $2, $3)
	`

	for _, r := range records {
		if _, err := tx.Exec(ctx, query, r.Timestamp, source, r.Balance.String()); err != nil {
			return fmt.Errorf("insert fund balance: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetBySource retrieves all rows for a source ordered by timestamp ascending.
func (s *FundBalanceStore) GetBySource(ctx context.Context, source string) ([]domain.FundBalanceRecord, error) {
	query := `
		SELECT timestamp, source, balance::text
		FROM fund_balance_data
		WHERE source = $1
		ORDER BY timestamp ASC
	`

	rows, err := s.pool.Query(ctx, query, source)
	if err != nil {
		return nil, fmt.Errorf("get fund balances by source: %w", err)
	}
	defer rows.Close()

	var records []domain.FundBalanceRecord
	for rows.Next() {
		var r domain.FundBalanceRecord
		var balance string
		if err := rows.Scan(&r.Timestamp, &r.Source, &balance); err != nil {
			return nil, fmt.Errorf("scan fund balance row: %w", err)
		}
		r.Balance, err = parseDecimal(balance)
		if err != nil {
			return nil, fmt.Errorf("parse balance: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fund balance rows: %w", err)
	}

	return records, nil
}

package postgres

import (
	"context"
	"fmt"

	"fund-nav-tracker/internal/domain"
	"fund-nav-tracker/internal/storage"
)

// NavStore implements storage.NavStore using PostgreSQL.
type NavStore struct {
	pool *Pool
}

// NewNavStore creates a new NavStore.
func NewNavStore(pool *Pool) *NavStore {
	return &NavStore{pool: pool}
}

// Compile-time interface check.
var _ storage.NavStore = (*NavStore)(nil)

// ReplaceAll replaces the nav_table content with the given records inside
// a single transaction. Empty input issues no statement at all, so a cycle
// that computed nothing cannot wipe the previous NAV table.
func (s *NavStore) ReplaceAll(ctx context.Context, records []domain.NavRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM nav_table`); err != nil {
		return fmt.Errorf("clear nav table: %w", err)
	}

	query := `
		INSERT INTO nav_table (timestamp, pm, balance, shares, nav)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, r := range records {
		if r.Label == "" {
			return storage.ErrInvalidInput
		}
		_, err := tx.Exec(ctx, query,
			r.Timestamp, r.Label, r.Price.String(), r.Shares.String(), r.Nav.String(),
		)
		if err != nil {
			return fmt.Errorf("insert nav record: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetAll retrieves all NAV rows ordered by timestamp ascending.
func (s *NavStore) GetAll(ctx context.Context) ([]domain.NavRecord, error) {
	query := `
		SELECT timestamp, pm, balance::text, shares::text, nav::text
		FROM nav_table
		ORDER BY timestamp ASC, pm ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all nav records: %w", err)
	}
	defer rows.Close()

	var records []domain.NavRecord
	for rows.Next() {
		var r domain.NavRecord
		var price, shares, nav string
		if err := rows.Scan(&r.Timestamp, &r.Label, &price, &shares, &nav); err != nil {
			return nil, fmt.Errorf("scan nav record row: %w", err)
		}
		if r.Price, err = parseDecimal(price); err != nil {
			return nil, fmt.Errorf("parse balance: %w", err)
		}
		if r.Shares, err = parseDecimal(shares); err != nil {
			return nil, fmt.Errorf("parse shares: %w", err)
		}
		if r.Nav, err = parseDecimal(nav); err != nil {
			return nil, fmt.Errorf("parse nav: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nav record rows: %w", err)
	}

	return records, nil
}

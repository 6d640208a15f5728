package postgres

import (
	"context"
	"fmt"

	"fund-nav-tracker/internal/domain"
	"fund-nav-tracker/internal/storage"
)

// PriceStore implements storage.PriceStore using PostgreSQL.
// The balance_all_consolidated table carries no unique constraint:
// repeated runs within the same minute append duplicate rows by design.
type PriceStore struct {
	pool *Pool
}

// NewPriceStore creates a new PriceStore.
func NewPriceStore(pool *Pool) *PriceStore {
	return &PriceStore{pool: pool}
}

// Compile-time interface check.
var _ storage.PriceStore = (*PriceStore)(nil)

// AppendAll inserts the records as new rows. Empty input issues no statement.
func (s *PriceStore) AppendAll(ctx context.Context, records []domain.PriceRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO balance_all_consolidated (timestamp, pm, balance)
		VALUES ($1, $2, $3)
	`

	for _, r := range records {
		if r.Label == "" {
			return storage.ErrInvalidInput
		}
		if _, err := tx.Exec(ctx, query, r.Timestamp, r.Label, r.Price.String()); err != nil {
			return fmt.Errorf("insert price record: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetAll retrieves all price rows ordered by timestamp ascending.
func (s *PriceStore) GetAll(ctx context.Context) ([]domain.PriceRecord, error) {
	query := `
		SELECT timestamp, pm, balance::text
		FROM balance_all_consolidated
		ORDER BY timestamp ASC, pm ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all price records: %w", err)
	}
	defer rows.Close()

	var records []domain.PriceRecord
	for rows.Next() {
		var r domain.PriceRecord
		var price string
		if err := rows.Scan(&r.Timestamp, &r.Label, &price); err != nil {
			return nil, fmt.Errorf("scan price record row: %w", err)
		}
		r.Price, err = parseDecimal(price)
		if err != nil {
			return nil, fmt.Errorf("parse balance: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price record rows: %w", err)
	}

	return records, nil
}

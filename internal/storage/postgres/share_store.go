package postgres

import (
	"context"
	"fmt"

	"fund-nav-tracker/internal/domain"
	"fund-nav-tracker/internal/storage"
)

// ShareStore implements storage.ShareStore using PostgreSQL.
// The shares_table is maintained externally; this store only reads it.
type ShareStore struct {
	pool *Pool
}

// NewShareStore creates a new ShareStore.
func NewShareStore(pool *Pool) *ShareStore {
	return &ShareStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ShareStore = (*ShareStore)(nil)

// GetAll retrieves all share rows ordered by timestamp ascending.
// Rows with equal timestamps keep their physical insertion order (ctid),
// which the latest-shares projection uses as its tie-break.
func (s *ShareStore) GetAll(ctx context.Context) ([]domain.ShareRecord, error) {
	query := `
		SELECT timestamp, pm, shares::text
		FROM shares_table
		ORDER BY timestamp ASC, ctid ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all share records: %w", err)
	}
	defer rows.Close()

	var records []domain.ShareRecord
	for rows.Next() {
		var r domain.ShareRecord
		var shares string
		if err := rows.Scan(&r.Timestamp, &r.Label, &shares); err != nil {
			return nil, fmt.Errorf("scan share record row: %w", err)
		}
		r.Shares, err = parseDecimal(shares)
		if err != nil {
			return nil, fmt.Errorf("parse shares: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate share record rows: %w", err)
	}

	return records, nil
}

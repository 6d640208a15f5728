package clickhouse

import (
	"context"
	"fmt"

	"fund-nav-tracker/internal/domain"
	"fund-nav-tracker/internal/storage"
)

// PriceHistoryStore implements storage.PriceStore using ClickHouse as an
// append-only analytics mirror. MergeTree enforces no uniqueness, which
// matches the sink's no-dedup contract.
type PriceHistoryStore struct {
	conn *Conn
}

// NewPriceHistoryStore creates a new PriceHistoryStore.
func NewPriceHistoryStore(conn *Conn) *PriceHistoryStore {
	return &PriceHistoryStore{conn: conn}
}

// Compile-time interface check.
var _ storage.PriceStore = (*PriceHistoryStore)(nil)

// AppendAll inserts the records as new rows. Empty input issues no batch.
func (s *PriceHistoryStore) AppendAll(ctx context.Context, records []domain.PriceRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO price_history (timestamp, pm, balance)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, r := range records {
		if r.Label == "" {
			return storage.ErrInvalidInput
		}
		if err := batch.Append(r.Timestamp, r.Label, r.Price); err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByLabel retrieves all rows for a label, ordered by timestamp ASC.
func (s *PriceHistoryStore) GetByLabel(ctx context.Context, label string) ([]domain.PriceRecord, error) {
	query := `
		SELECT timestamp, pm, balance
		FROM price_history
		WHERE pm = ?
		ORDER BY timestamp ASC
	`

	rows, err := s.conn.Query(ctx, query, label)
	if err != nil {
		return nil, fmt.Errorf("query by label: %w", err)
	}
	defer rows.Close()

	var records []domain.PriceRecord
	for rows.Next() {
		var r domain.PriceRecord
		if err := rows.Scan(&r.Timestamp, &r.Label, &r.Price); err != nil {
			return nil, fmt.Errorf("scan price history row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price history rows: %w", err)
	}

	return records, nil
}

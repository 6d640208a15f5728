// Package memory provides in-memory storage implementations for tests and
// dry runs.
package memory

import (
	"context"
	"sync"

	"fund-nav-tracker/internal/domain"
	"fund-nav-tracker/internal/storage"
)

// PriceStore is an in-memory implementation of storage.PriceStore.
// Rows keep append order and are never deduplicated, matching the
// append-only sink contract.
type PriceStore struct {
	mu   sync.RWMutex
	rows []domain.PriceRecord

	appendCalls int // write calls that actually touched storage
}

// NewPriceStore creates a new in-memory price store.
func NewPriceStore() *PriceStore {
	return &PriceStore{}
}

// Compile-time interface check.
var _ storage.PriceStore = (*PriceStore)(nil)

// AppendAll inserts the records as new rows. Empty input is a no-op and
// does not count as a write call.
func (s *PriceStore) AppendAll(_ context.Context, records []domain.PriceRecord) error {
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if r.Label == "" {
			return storage.ErrInvalidInput
		}
	}
	s.rows = append(s.rows, records...)
	s.appendCalls++

	return nil
}

// GetAll retrieves all rows in append order.
func (s *PriceStore) GetAll(_ context.Context) ([]domain.PriceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PriceRecord, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

// AppendCalls reports how many non-empty write calls were issued.
func (s *PriceStore) AppendCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appendCalls
}

package memory

import (
	"context"
	"sync"

	"fund-nav-tracker/internal/domain"
	"fund-nav-tracker/internal/storage"
)

// FundBalanceStore is an in-memory implementation of storage.FundBalanceStore.
type FundBalanceStore struct {
	mu   sync.RWMutex
	rows map[string][]domain.FundBalanceRecord // keyed by source
}

// NewFundBalanceStore creates a new in-memory fund balance store.
func NewFundBalanceStore() *FundBalanceStore {
	return &FundBalanceStore{rows: make(map[string][]domain.FundBalanceRecord)}
}

// Compile-time interface check.
var _ storage.FundBalanceStore = (*FundBalanceStore)(nil)

// ReplaceSource replaces the rows of one source. An empty replacement set
// clears the source.
func (s *FundBalanceStore) ReplaceSource(_ context.Context, source string, records []domain.FundBalanceRecord) error {
	if source == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replacement := make([]domain.FundBalanceRecord, len(records))
	copy(replacement, records)
	for i := range replacement {
		replacement[i].Source = source
	}
	s.rows[source] = replacement

	return nil
}

// GetBySource retrieves all rows for a source in insertion order.
func (s *FundBalanceStore) GetBySource(_ context.Context, source string) ([]domain.FundBalanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.FundBalanceRecord, len(s.rows[source]))
	copy(out, s.rows[source])
	return out, nil
}

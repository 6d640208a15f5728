package memory

import (
	"context"
	"sort"
	"sync"

	"fund-nav-tracker/internal/domain"
	"fund-nav-tracker/internal/storage"
)

// NavStore is an in-memory implementation of storage.NavStore.
type NavStore struct {
	mu   sync.RWMutex
	rows []domain.NavRecord

	replaceCalls int // write calls that actually touched storage
}

// NewNavStore creates a new in-memory NAV store.
func NewNavStore() *NavStore {
	return &NavStore{}
}

// Compile-time interface check.
var _ storage.NavStore = (*NavStore)(nil)

// ReplaceAll replaces the stored rows wholesale. Empty input is a no-op
// and leaves existing rows untouched.
func (s *NavStore) ReplaceAll(_ context.Context, records []domain.NavRecord) error {
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
	s.rows = make([]domain.NavRecord, len(records))
	copy(s.rows, records)
	s.replaceCalls++

	return nil
}

// GetAll retrieves all rows ordered by timestamp ascending.
func (s *NavStore) GetAll(_ context.Context) ([]domain.NavRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.NavRecord, len(s.rows))
	copy(out, s.rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

// ReplaceCalls reports how many non-empty write calls were issued.
func (s *NavStore) ReplaceCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.replaceCalls
}

package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"fund-nav-tracker/internal/domain"
	"fund-nav-tracker/internal/storage"
)

// ShareStore is an in-memory implementation of storage.ShareStore.
type ShareStore struct {
	mu   sync.RWMutex
	rows []domain.ShareRecord

	// FailReads makes GetAll return an error, for exercising the
	// read-failure path in orchestrator tests.
	FailReads bool
}

// NewShareStore creates a new in-memory share store.
func NewShareStore() *ShareStore {
	return &ShareStore{}
}

// Compile-time interface check.
var _ storage.ShareStore = (*ShareStore)(nil)

// Put appends a share row (test seeding helper).
func (s *ShareStore) Put(r domain.ShareRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, r)
}

// GetAll retrieves all rows ordered by timestamp ascending; rows with
// equal timestamps keep their insertion order.
func (s *ShareStore) GetAll(_ context.Context) ([]domain.ShareRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailReads {
		return nil, errors.New("share store unavailable")
	}

	out := make([]domain.ShareRecord, len(s.rows))
	copy(out, s.rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/acervo/nivela/internal/domain/level"
)

// MemStore implements Store with an ordered in-memory map. Reads and
// writes are guarded by a single RWMutex; the result volume here is a
// grading batch, not a hot path.
type MemStore struct {
	mu    sync.RWMutex
	byID  map[string]int // book id -> index into records
	order []Record

	now func() time.Time
}

// MemOption applies a configuration option to the MemStore.
type MemOption func(*MemStore)

// WithClock overrides the timestamp source, used by tests.
func WithClock(now func() time.Time) MemOption {
	return func(s *MemStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemStore creates an empty results store.
func NewMemStore(opts ...MemOption) *MemStore {
	s := &MemStore{
		byID: make(map[string]int),
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Put stores rec, assigning a fresh ResultID and timestamp. A repeated
// book id keeps its original position in the listing order.
func (s *MemStore) Put(_ context.Context, rec Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ResultID = uuid.NewString()
	rec.CreatedAt = s.now()

	if idx, ok := s.byID[rec.BookID]; ok {
		s.order[idx] = rec
		return rec
	}
	s.byID[rec.BookID] = len(s.order)
	s.order = append(s.order, rec)
	return rec
}

// Get returns the record for bookID, or ErrNotFound.
func (s *MemStore) Get(_ context.Context, bookID string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[bookID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return s.order[idx], nil
}

// List returns all records in first-evaluation order.
func (s *MemStore) List(_ context.Context) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.order))
	copy(out, s.order)
	return out
}

// Count returns the number of stored records.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Distribution counts stored successes per level.
func (s *MemStore) Distribution(_ context.Context) map[level.Level]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dist := make(map[level.Level]int)
	for _, rec := range s.order {
		if rec.Assignment != nil {
			dist[rec.Assignment.Level]++
		}
	}
	return dist
}

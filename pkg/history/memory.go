package history

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps the most recent records in a fixed-size ring.
type MemoryStore struct {
	mu   sync.RWMutex
	ring []Record
	next int
	full bool
}

// NewMemoryStore returns a store holding at most capacity records
// (DefaultLimit when capacity ≤ 0).
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultLimit
	}
	return &MemoryStore{ring: make([]Record, capacity)}
}

// Append adds r, evicting the oldest record when full.
func (s *MemoryStore) Append(ctx context.Context, r Record) error {
	if r.ID == "" {
		return fmt.Errorf("history: record has no id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ring[s.next] = r
	s.next = (s.next + 1) % len(s.ring)
	if s.next == 0 {
		s.full = true
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.next
	if s.full {
		n = len(s.ring)
	}
	n = min(n, clampLimit(limit))

	out := make([]Record, 0, n)
	for i := 1; i <= n; i++ {
		idx := (s.next - i + len(s.ring)) % len(s.ring)
		out = append(out, s.ring[idx])
	}
	return out, nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.full {
		return len(s.ring)
	}
	return s.next
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)

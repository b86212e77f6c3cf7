// Package store holds search results between the moment a provider
// responds and the moment the filter engine runs. The in-memory Store is
// the per-pipeline "latest results" holder; ResultCache keeps raw result
// sets addressable by search id so clients can re-filter without a new
// provider call.
package store

import "sync"

// Store keeps the most recent published result set for one pipeline.
// Every search claims a monotonic sequence number before calling the
// provider; a completion whose sequence is older than the published one is
// discarded, so a slow first response can never clobber a newer search.
type Store[T any] struct {
	mu        sync.Mutex
	issued    uint64
	published uint64
	records   []T
}

func New[T any]() *Store[T] {
	return &Store[T]{}
}

// Begin claims a sequence number for a search about to be issued.
func (s *Store[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Publish replaces the stored set wholesale. Returns false when a newer
// search already published or failed, in which case the records are
// discarded.
func (s *Store[T]) Publish(seq uint64, records []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.published {
		return false
	}
	s.published = seq
	s.records = append([]T(nil), records...)
	return true
}

// Fail clears the store, unless a newer search has already published.
func (s *Store[T]) Fail(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.published {
		return false
	}
	s.published = seq
	s.records = nil
	return true
}

// Snapshot returns a copy of the stored set. Filtering always derives a
// new list from the copy; the stored records are never mutated.
func (s *Store[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.records...)
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

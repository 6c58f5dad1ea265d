package alumni

import (
	"sync"
)

// Store owns the directory records. It replaces the ambient global arrays of
// the old UI: callers receive copies and mutate nothing directly.
type Store struct {
	mu      sync.RWMutex
	records []Record
}

// NewStore seeds the directory with the given records.
func NewStore(seed []Record) *Store {
	records := make([]Record, len(seed))
	copy(records, seed)
	return &Store{records: records}
}

// All returns the records in insertion order.
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Count returns the total number of records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Append adds a record with id = count+1 and returns it. There is no delete
// path, so ids stay unique; if deletion is ever added this scheme needs a
// proper id allocator.
func (s *Store) Append(r Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = len(s.records) + 1
	s.records = append(s.records, r)
	return r
}

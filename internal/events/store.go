package events

import "sync"

// Store owns the event records.
type Store struct {
	mu      sync.RWMutex
	records []Record
}

func NewStore(seed []Record) *Store {
	records := make([]Record, len(seed))
	copy(records, seed)
	return &Store{records: records}
}

func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Append adds an event with id = count+1. Append-only, same as the directory.
func (s *Store) Append(r Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = len(s.records) + 1
	s.records = append(s.records, r)
	return r
}

// FilterByType returns events of the given type, in insertion order. An empty
// type passes everything.
func FilterByType(records []Record, eventType string) []Record {
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if eventType == "" || r.Type == eventType {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

package memories

import (
	"errors"
	"sync"
)

var ErrMemoryNotFound = errors.New("memory not found")

// Store owns the gallery entries. Append-only, id = count+1.
type Store struct {
	mu       sync.RWMutex
	memories []Memory
}

func NewStore(seed []Memory) *Store {
	memories := make([]Memory, len(seed))
	copy(memories, seed)
	return &Store{memories: memories}
}

func (s *Store) All() []Memory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Memory, len(s.memories))
	copy(out, s.memories)
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.memories)
}

func (s *Store) Append(m Memory) Memory {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = len(s.memories) + 1
	s.memories = append(s.memories, m)
	return m
}

// Get returns a memory and bumps its view counter.
func (s *Store) Get(id int) (Memory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.memories {
		if s.memories[i].ID == id {
			s.memories[i].Views++
			return s.memories[i], nil
		}
	}
	return Memory{}, ErrMemoryNotFound
}

// Like bumps a memory's like counter and returns the new count.
func (s *Store) Like(id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.memories {
		if s.memories[i].ID == id {
			s.memories[i].Likes++
			return s.memories[i].Likes, nil
		}
	}
	return 0, ErrMemoryNotFound
}

// FilterByBatch returns memories for one batch in insertion order. "all" or
// the empty string passes everything.
func FilterByBatch(memories []Memory, batch string) []Memory {
	if batch == "" || batch == "all" {
		return memories
	}
	filtered := make([]Memory, 0, len(memories))
	for _, m := range memories {
		if m.Batch == batch {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

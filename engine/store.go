package engine

import (
	"sync"

	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/parameter"
)

// Store is a generic container for a specific component type T
// Sparse set: index map into dense entity/value slices, O(1) remove by swap
type Store[T any] struct {
	mu       sync.RWMutex
	index    map[core.Entity]int
	entities []core.Entity
	values   []T
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, parameter.StoreInitialCapacity),
		values:   make([]T, 0, parameter.StoreInitialCapacity),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e]; ok {
		s.values[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.index[e]; ok {
		return s.values[i], true
	}
	var zero T
	return zero, false
}

// Remove deletes the entity's component
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		s.entities[i] = s.entities[last]
		s.values[i] = s.values[last]
		s.index[s.entities[i]] = i
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.index, e)
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// All returns a copy of the entities with this component
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes every component
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = make(map[core.Entity]int)
	s.entities = s.entities[:0]
	s.values = s.values[:0]
}

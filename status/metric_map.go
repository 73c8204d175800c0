package status

import (
	"sort"
	"sync"
)

// MetricMap hands out one stable cell per name
// Lookups lock; writes through a returned cell do not
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell for name, creating it on first use
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	c := m.cells[name]
	m.mu.RUnlock()
	if c != nil {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c = m.cells[name]; c == nil {
		c = new(T)
		m.cells[name] = c
	}
	return c
}

func (m *MetricMap[T]) Has(name string) bool {
	m.mu.RLock()
	_, ok := m.cells[name]
	m.mu.RUnlock()
	return ok
}

// Names returns the registered names in sorted order
func (m *MetricMap[T]) Names() []string {
	m.mu.RLock()
	names := make([]string, 0, len(m.cells))
	for name := range m.cells {
		names = append(names, name)
	}
	m.mu.RUnlock()
	sort.Strings(names)
	return names
}

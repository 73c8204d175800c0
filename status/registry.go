// Package status holds named atomic metrics: systems cache cells at construction
// and write them from the update loop, the status line and journal read them
package status

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Registry groups counters (snake.length, apple.eaten, engine.ticks) and gauges (engine.hz)
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Gauge](),
	}
}

// Dump formats every metric as name=value, sorted by name
func (r *Registry) Dump() string {
	var parts []string
	for _, name := range r.Ints.Names() {
		parts = append(parts, fmt.Sprintf("%s=%d", name, r.Ints.Get(name).Load()))
	}
	for _, name := range r.Floats.Names() {
		parts = append(parts, fmt.Sprintf("%s=%.1f", name, r.Floats.Get(name).Get()))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

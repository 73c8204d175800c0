package engine

import (
	"sort"

	"github.com/lixenwraith/snek3d/core"
)

// QueryBuilder finds entities by component intersection and exclusion
// Starts from the smallest included store and filters through the rest
//
// Example:
//
//	others := world.Query().
//	    With(world.Components.Placement).
//	    Without(world.Components.Segment).
//	    Without(world.Components.Apple).
//	    Execute()
type QueryBuilder struct {
	include  []QueryableStore
	exclude  []AnyStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{include: make([]QueryableStore, 0, 4)}
}

// With requires entities to be present in store
// Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.include = append(qb.include, store)
	return qb
}

// Without rejects entities present in store
// Panics if called after Execute()
func (qb *QueryBuilder) Without(store AnyStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.exclude = append(qb.exclude, store)
	return qb
}

// Execute runs the query; repeated calls return the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.include) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	sort.Slice(qb.include, func(i, j int) bool {
		return qb.include[i].Count() < qb.include[j].Count()
	})

	candidates := qb.include[0].All()
	filtered := candidates[:0]
	for _, e := range candidates {
		if qb.matches(e) {
			filtered = append(filtered, e)
		}
	}
	qb.results = filtered
	return qb.results
}

func (qb *QueryBuilder) matches(e core.Entity) bool {
	for _, s := range qb.include[1:] {
		if !s.Has(e) {
			return false
		}
	}
	for _, s := range qb.exclude {
		if s.Has(e) {
			return false
		}
	}
	return true
}

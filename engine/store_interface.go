package engine

import (
	"github.com/lixenwraith/snek3d/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it to destroy entities without knowing concrete component types
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with the enumeration the query builder intersects
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}

package engine

import (
	"github.com/lixenwraith/snek3d/component"
)

// ComponentStore holds the typed store for every component kind
// Pointers are stable for the world's lifetime; systems cache the struct at construction
type ComponentStore struct {
	Segment   *Store[component.SegmentComponent]
	Head      *Store[component.HeadComponent]
	Apple     *Store[component.AppleComponent]
	Wall      *Store[component.WallComponent]
	Placement *Store[component.PlacementComponent]
	Visual    *Store[component.VisualComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Segment:   NewStore[component.SegmentComponent](),
		Head:      NewStore[component.HeadComponent](),
		Apple:     NewStore[component.AppleComponent](),
		Wall:      NewStore[component.WallComponent](),
		Placement: NewStore[component.PlacementComponent](),
		Visual:    NewStore[component.VisualComponent](),
	}
}

func (c ComponentStore) all() []AnyStore {
	return []AnyStore{c.Segment, c.Head, c.Apple, c.Wall, c.Placement, c.Visual}
}

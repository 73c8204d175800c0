package system

import (
	"github.com/lixenwraith/snek3d/component"
	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/engine"
)

// chainCells returns the segment cells in chain order, head first
func chainCells(w *engine.World) []core.Point {
	chain := w.Resources.Snake.Chain
	cells := make([]core.Point, 0, len(chain))
	for _, link := range chain {
		p, ok := w.Components.Placement.Get(link.Entity)
		if !ok {
			panic("snake segment without placement")
		}
		cells = append(cells, p.Cell)
	}
	return cells
}

// otherOccupants returns cells held by entities that are neither segments nor apples
func otherOccupants(w *engine.World) []core.Point {
	entities := w.Query().
		With(w.Components.Placement).
		Without(w.Components.Segment).
		Without(w.Components.Apple).
		Execute()

	cells := make([]core.Point, 0, len(entities))
	for _, e := range entities {
		if p, ok := w.Components.Placement.Get(e); ok {
			cells = append(cells, p.Cell)
		}
	}
	return cells
}

// heading returns the head entity's direction
func heading(w *engine.World) (core.Point, bool) {
	head, ok := w.Resources.Snake.Head()
	if !ok {
		return core.Point{}, false
	}
	h, ok := w.Components.Head.Get(head)
	return h.Direction, ok
}

// spawnSegment queues a body segment at cell with a fresh ordinal
// The chain link is inserted when the command buffer flushes, together with the components
func spawnSegment(w *engine.World, cell core.Point, head *component.HeadComponent) (core.Entity, uint64) {
	res := w.Resources
	ordinal := res.IDs.Next()
	visual := component.VisualComponent{}
	if res.Visuals != nil {
		visual.Mesh = res.Visuals.BallMesh()
		visual.Material = res.Visuals.BallMaterial(res.Rng.Intn(0, res.Visuals.BallMaterialCount()))
	}
	depth := res.Config.Area.Depth

	e := w.Commands.Spawn(func(w *engine.World, e core.Entity) {
		w.Components.Segment.Set(e, component.SegmentComponent{Ordinal: ordinal})
		w.Components.Placement.Set(e, component.PlacementComponent{Cell: cell, Z: depth})
		w.Components.Visual.Set(e, visual)
		if head != nil {
			w.Components.Head.Set(e, *head)
		}
		w.Resources.Snake.Insert(e, ordinal)
	})
	return e, ordinal
}

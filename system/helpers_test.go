package system

import (
	"testing"

	"github.com/lixenwraith/snek3d/component"
	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/event"
	"github.com/lixenwraith/snek3d/service"
)

// newTestWorld builds a world with a seeded rng, no walls and no entrance delay
func newTestWorld(t *testing.T) *engine.World {
	t.Helper()
	w := engine.NewWorld()
	w.Resources.Rng = service.NewRng(42)
	w.Resources.Config.Walls = false
	w.Resources.Config.EntranceDuration = 0
	return w
}

// startGameplay moves the state machine into Gameplay/Running without lifecycle hooks
func startGameplay(w *engine.World) {
	w.Resources.State.Request(engine.StateGameplay)
	w.Resources.State.Apply()
}

// placeSnake installs a chain directly, head first
func placeSnake(w *engine.World, dir core.Point, cells ...core.Point) []core.Entity {
	entities := make([]core.Entity, 0, len(cells))
	depth := w.Resources.Config.Area.Depth
	for i, cell := range cells {
		e := w.CreateEntity()
		ordinal := w.Resources.IDs.Next()
		w.Components.Segment.Set(e, component.SegmentComponent{Ordinal: ordinal})
		w.Components.Placement.Set(e, component.PlacementComponent{Cell: cell, Z: depth})
		if i == 0 {
			w.Components.Head.Set(e, component.HeadComponent{Direction: dir})
		}
		w.Resources.Snake.Insert(e, ordinal)
		entities = append(entities, e)
	}
	return entities
}

func placeApple(w *engine.World, cell core.Point) core.Entity {
	e := w.CreateEntity()
	w.Components.Apple.Set(e, component.AppleComponent{})
	w.Components.Placement.Set(e, component.PlacementComponent{Cell: cell, Z: w.Resources.Config.Area.Depth})
	return e
}

func placeWall(w *engine.World, cell core.Point) core.Entity {
	e := w.CreateEntity()
	w.Components.Wall.Set(e, component.WallComponent{})
	w.Components.Placement.Set(e, component.PlacementComponent{Cell: cell})
	return e
}

func cellsOf(w *engine.World) []core.Point {
	return chainCells(w)
}

func drainEvents(w *engine.World) []event.GameEvent {
	return w.Resources.Event.Queue.Consume()
}

func eventsOfType(events []event.GameEvent, t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// stubInput is a mutable pressed-key source
type stubInput struct {
	keys core.KeySet
}

func (s *stubInput) PressedKeys() core.KeySet { return s.keys }

// lowSource always returns the lower bound
type lowSource struct{}

func (lowSource) Intn(low, high int) int { return low }

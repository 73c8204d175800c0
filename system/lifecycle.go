package system

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/snek3d/component"
	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/engine"
)

// GameplayLifecycle owns the gameplay enter/exit hooks and the pause clock hooks
type GameplayLifecycle struct {
	world *engine.World
}

// NewGameplayLifecycle attaches the hooks to the world's state machine
func NewGameplayLifecycle(world *engine.World) *GameplayLifecycle {
	l := &GameplayLifecycle{world: world}

	sm := world.Resources.State
	sm.OnEnter(engine.StateGameplay, l.enter)
	sm.OnExit(engine.StateGameplay, l.exit)
	sm.OnEnterSub(engine.GameplayPaused, world.Resources.Clock.Pause)
	sm.OnEnterSub(engine.GameplayRunning, world.Resources.Clock.Resume)
	return l
}

func (l *GameplayLifecycle) enter() {
	w := l.world
	res := w.Resources
	area := res.Config.Area

	if res.Config.Walls {
		visual := component.VisualComponent{}
		if res.Visuals != nil {
			visual.Mesh = res.Visuals.WallMesh()
			visual.Material = res.Visuals.WallMaterial()
		}
		for _, cell := range area.Border() {
			w.Commands.Spawn(func(w *engine.World, e core.Entity) {
				w.Components.Wall.Set(e, component.WallComponent{})
				w.Components.Placement.Set(e, component.PlacementComponent{Cell: cell, Z: area.Depth})
				w.Components.Visual.Set(e, visual)
			})
		}
	}

	cell := area.RandomCell(res.Rng)
	dir := core.DirectionFromIndex(res.Rng.Intn(0, len(core.Directions)))
	spawnSegment(w, cell, &component.HeadComponent{Direction: dir})
	res.Snake.LastVacated = cell

	res.Fixed.SetHz(res.Config.MinHz)
	res.Status.Floats.Get("engine.hz").Set(res.Config.MinHz)
	res.Status.Ints.Get("snake.length").Store(1)
	res.Status.Ints.Get("apple.eaten").Store(0)

	res.Clock.Reset()
	res.Session.RunID = uuid.NewString()
	res.Session.StartedAt = res.Clock.RealTime()
}

func (l *GameplayLifecycle) exit() {
	w := l.world
	c := w.Components

	for _, store := range []engine.QueryableStore{c.Segment, c.Apple, c.Wall} {
		for _, e := range store.All() {
			w.Commands.Despawn(e)
		}
	}
	w.Resources.Snake.Reset()
	w.Resources.Outcome.Reset()
}

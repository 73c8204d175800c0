package system

import (
	"sync/atomic"

	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/event"
	"github.com/lixenwraith/snek3d/parameter"
)

// GrowthSystem appends one segment at the Last-Vacated cell per eaten apple
type GrowthSystem struct {
	engine.SystemBase

	statLength *atomic.Int64
}

func NewGrowthSystem(world *engine.World) engine.System {
	return &GrowthSystem{
		SystemBase: engine.NewSystemBase(world),
		statLength: world.Resources.Status.Ints.Get("snake.length"),
	}
}

func (s *GrowthSystem) Name() string        { return "growth" }
func (s *GrowthSystem) Priority() int       { return parameter.PriorityGrowth }
func (s *GrowthSystem) Stage() engine.Stage { return engine.StageFrame }

func (s *GrowthSystem) Update() {
	out := s.Resource.Outcome
	if !out.AppleEaten {
		return
	}

	cell := s.Resource.Snake.LastVacated
	_, ordinal := spawnSegment(s.World, cell, nil)

	length := s.Resource.Snake.Len() + 1
	out.GrownLength = length
	s.statLength.Store(int64(length))

	s.Emit(event.EventSnakeGrow, &event.SnakeGrowPayload{
		Ordinal: ordinal,
		Cell:    cell,
		Length:  length,
	})
}

package system

import (
	"github.com/lixenwraith/snek3d/component"
	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/parameter"
	"github.com/lixenwraith/snek3d/physics"
)

// MovementSystem advances the chain one cell per fixed tick
// Skipped while paused or when the next move would collide, leaving the
// collision for GameOverSystem to report on the next frame
type MovementSystem struct {
	engine.SystemBase
}

func NewMovementSystem(world *engine.World) engine.System {
	return &MovementSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *MovementSystem) Name() string        { return "movement" }
func (s *MovementSystem) Priority() int       { return parameter.PriorityMovement }
func (s *MovementSystem) Stage() engine.Stage { return engine.StageFixed }

func (s *MovementSystem) Update() {
	if !s.Resource.State.IsRunning() {
		return
	}
	dir, ok := heading(s.World)
	if !ok {
		return
	}

	cells := chainCells(s.World)
	if physics.Collides(dir, cells, otherOccupants(s.World)) {
		return
	}

	moved, vacated := physics.Advance(cells, dir, s.Resource.Config.Area)
	if !moved {
		return
	}

	depth := s.Resource.Config.Area.Depth
	for i, link := range s.Resource.Snake.Chain {
		s.Component.Placement.Set(link.Entity, component.PlacementComponent{Cell: cells[i], Z: depth})
	}
	s.Resource.Snake.LastVacated = vacated
}

package system

import (
	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/parameter"
)

// AppleDespawnSystem removes the eaten apple at the next sync point
type AppleDespawnSystem struct {
	engine.SystemBase
}

func NewAppleDespawnSystem(world *engine.World) engine.System {
	return &AppleDespawnSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *AppleDespawnSystem) Name() string        { return "apple_despawn" }
func (s *AppleDespawnSystem) Priority() int       { return parameter.PriorityDespawn }
func (s *AppleDespawnSystem) Stage() engine.Stage { return engine.StageFrame }

func (s *AppleDespawnSystem) Update() {
	if out := s.Resource.Outcome; out.AppleEaten {
		s.Commands.Despawn(out.Apple)
	}
}

package system

import (
	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/parameter"
)

// EntranceSystem holds the entrance state for the configured duration, then opens the main menu
type EntranceSystem struct {
	engine.SystemBase
}

func NewEntranceSystem(world *engine.World) engine.System {
	return &EntranceSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *EntranceSystem) Name() string        { return "entrance" }
func (s *EntranceSystem) Priority() int       { return parameter.PriorityEntrance }
func (s *EntranceSystem) Stage() engine.Stage { return engine.StageFrame }

func (s *EntranceSystem) Update() {
	state := s.Resource.State
	if state.Current() != engine.StateEntrance {
		return
	}
	if state.TimeInState() >= s.Resource.Config.EntranceDuration {
		state.Request(engine.StateMain)
	}
}

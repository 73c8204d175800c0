package system

import (
	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/event"
	"github.com/lixenwraith/snek3d/parameter"
	"github.com/lixenwraith/snek3d/physics"
)

// GameOverSystem ends gameplay on a prospective collision, a full body, or no room for an apple
// Runs in both gameplay substates
type GameOverSystem struct {
	engine.SystemBase
}

func NewGameOverSystem(world *engine.World) engine.System {
	return &GameOverSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *GameOverSystem) Name() string        { return "gameover" }
func (s *GameOverSystem) Priority() int       { return parameter.PriorityGameOver }
func (s *GameOverSystem) Stage() engine.Stage { return engine.StageFrame }

func (s *GameOverSystem) Update() {
	state := s.Resource.State
	if !state.InGameplay() {
		return
	}
	if to, ok := state.Pending(); ok && to == engine.StateGameover {
		return
	}

	reason, over := s.evaluate()
	if !over {
		return
	}

	state.Request(engine.StateGameover)
	s.Emit(event.EventGameOver, &event.GameOverPayload{
		Reason: reason,
		Length: s.Resource.Snake.Len(),
		RunID:  s.Resource.Session.RunID,
	})
}

func (s *GameOverSystem) evaluate() (event.GameOverReason, bool) {
	dir, ok := heading(s.World)
	if !ok {
		return "", false
	}
	if physics.Collides(dir, chainCells(s.World), otherOccupants(s.World)) {
		return event.ReasonCollision, true
	}
	if s.Resource.Snake.Len() >= s.Resource.Config.Area.CellCount() || s.Resource.Outcome.BoardFull {
		return event.ReasonBoardFull, true
	}
	return "", false
}

package system

import (
	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/parameter"
)

// MenuSystem maps confirm/back/pause key edges to state requests
//
//	main:     confirm -> gameplay, back -> exit
//	gameplay: pause toggles running/paused
//	gameover: confirm -> gameplay, back -> main
type MenuSystem struct {
	engine.SystemBase
}

func NewMenuSystem(world *engine.World) engine.System {
	return &MenuSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *MenuSystem) Name() string        { return "menu" }
func (s *MenuSystem) Priority() int       { return parameter.PriorityMenu }
func (s *MenuSystem) Stage() engine.Stage { return engine.StageFrame }

func (s *MenuSystem) Update() {
	input := s.Resource.Input
	state := s.Resource.State

	switch state.Current() {
	case engine.StateMain:
		switch {
		case input.JustPressed(core.KeyConfirm):
			state.Request(engine.StateGameplay)
		case input.JustPressed(core.KeyBack):
			state.RequestExit()
		}

	case engine.StateGameplay:
		if !input.JustPressed(core.KeyPause) {
			return
		}
		if state.Sub() == engine.GameplayPaused {
			state.RequestSub(engine.GameplayRunning)
		} else {
			state.RequestSub(engine.GameplayPaused)
		}

	case engine.StateGameover:
		switch {
		case input.JustPressed(core.KeyConfirm):
			state.Request(engine.StateGameplay)
		case input.JustPressed(core.KeyBack):
			state.Request(engine.StateMain)
		}
	}
}

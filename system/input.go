package system

import (
	"github.com/lixenwraith/snek3d/component"
	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/parameter"
)

// InputSystem steers the head from the sampled key set
// Acts only when exactly one movement key is held; a reversal is refused
type InputSystem struct {
	engine.SystemBase
}

func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *InputSystem) Name() string        { return "input" }
func (s *InputSystem) Priority() int       { return parameter.PriorityInput }
func (s *InputSystem) Stage() engine.Stage { return engine.StageFrame }

func (s *InputSystem) Update() {
	if !s.Resource.State.IsRunning() {
		return
	}

	movement := s.Resource.Input.Pressed.Only(core.MovementKeys)
	if movement.Count() != 1 {
		return
	}

	var wanted core.Point
	for _, k := range []core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight} {
		if movement.Has(k) {
			wanted, _ = core.KeyDirection(k)
			break
		}
	}

	head, ok := s.Resource.Snake.Head()
	if !ok {
		return
	}
	h, ok := s.Component.Head.Get(head)
	if !ok {
		return
	}
	h.Direction = component.Turn(h.Direction, wanted)
	s.Component.Head.Set(head, h)
}

package system

import (
	"sync/atomic"

	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/event"
	"github.com/lixenwraith/snek3d/parameter"
)

// EatenSystem records an eaten apple in the frame outcome
// Later systems of the same frame read the outcome; the event is for outside observers
type EatenSystem struct {
	engine.SystemBase

	statEaten *atomic.Int64
}

func NewEatenSystem(world *engine.World) engine.System {
	return &EatenSystem{
		SystemBase: engine.NewSystemBase(world),
		statEaten:  world.Resources.Status.Ints.Get("apple.eaten"),
	}
}

func (s *EatenSystem) Name() string        { return "eaten" }
func (s *EatenSystem) Priority() int       { return parameter.PriorityEaten }
func (s *EatenSystem) Stage() engine.Stage { return engine.StageFrame }

func (s *EatenSystem) Update() {
	if !s.Resource.State.IsRunning() {
		return
	}
	head, ok := s.Resource.Snake.Head()
	if !ok {
		return
	}
	headPos, ok := s.Component.Placement.Get(head)
	if !ok {
		return
	}

	for _, apple := range s.Component.Apple.All() {
		pos, ok := s.Component.Placement.Get(apple)
		if !ok || pos.Cell != headPos.Cell {
			continue
		}

		out := s.Resource.Outcome
		out.AppleEaten = true
		out.Apple = apple
		out.EatenCell = pos.Cell
		s.statEaten.Add(1)

		s.Emit(event.EventAppleEaten, &event.AppleEatenPayload{
			Cell:  pos.Cell,
			RunID: s.Resource.Session.RunID,
		})
		return
	}
}

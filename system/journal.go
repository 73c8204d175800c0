package system

import (
	"log"
	"time"

	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/event"
)

// JournalSystem writes gameplay milestones to the standard logger
// Output is discarded unless debug logging is enabled by the host
type JournalSystem struct {
	world *engine.World
}

func NewJournalSystem(world *engine.World) *JournalSystem {
	return &JournalSystem{world: world}
}

func (s *JournalSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStateChanged,
		event.EventAppleSpawned,
		event.EventAppleEaten,
		event.EventSnakeGrow,
		event.EventTickRateChanged,
		event.EventGameOver,
	}
}

func (s *JournalSystem) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.StateChangedPayload:
		log.Printf("[frame %d] state %s -> %s (run %s)", ev.Frame, p.From, p.To, p.RunID)
	case *event.AppleSpawnedPayload:
		log.Printf("[frame %d] apple at %d,%d", ev.Frame, p.Cell.X, p.Cell.Y)
	case *event.AppleEatenPayload:
		log.Printf("[frame %d] apple eaten at %d,%d (run %s)", ev.Frame, p.Cell.X, p.Cell.Y, p.RunID)
	case *event.SnakeGrowPayload:
		log.Printf("[frame %d] segment %d at %d,%d, length %d", ev.Frame, p.Ordinal, p.Cell.X, p.Cell.Y, p.Length)
	case *event.TickRatePayload:
		log.Printf("[frame %d] tick rate %.2f Hz at length %d", ev.Frame, p.Hz, p.Length)
	case *event.GameOverPayload:
		clock := s.world.Resources.Clock
		log.Printf("[frame %d] game over: %s, length %d, played %s, paused %s (run %s started %s)",
			ev.Frame, p.Reason, p.Length,
			clock.Elapsed().Round(time.Millisecond), clock.TotalPauseDuration().Round(time.Millisecond),
			p.RunID, s.world.Resources.Session.StartedAt.Format(time.TimeOnly))
		log.Printf("[frame %d] metrics: %s", ev.Frame, s.world.Resources.Status.Dump())
	default:
		log.Printf("[frame %d] unhandled %s payload %T", ev.Frame, ev.Type, ev.Payload)
	}
}

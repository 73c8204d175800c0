package system

import (
	"math"

	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/event"
	"github.com/lixenwraith/snek3d/parameter"
	"github.com/lixenwraith/snek3d/status"
)

// TickRate maps a segment count to the fixed step frequency, clamped to [minHz, maxHz]
func TickRate(segments int, minHz, maxHz float64) float64 {
	if segments < 1 {
		return minHz
	}
	hz := parameter.TickHzBase + parameter.TickHzLogScale*math.Log2(float64(segments))
	return math.Max(minHz, math.Min(maxHz, hz))
}

// PacingSystem speeds the fixed step up as the snake grows
type PacingSystem struct {
	engine.SystemBase

	statHz *status.Gauge
}

func NewPacingSystem(world *engine.World) engine.System {
	s := &PacingSystem{
		SystemBase: engine.NewSystemBase(world),
		statHz:     world.Resources.Status.Floats.Get("engine.hz"),
	}
	s.statHz.Set(world.Resources.Fixed.Hz())
	return s
}

func (s *PacingSystem) Name() string        { return "pacing" }
func (s *PacingSystem) Priority() int       { return parameter.PriorityPacing }
func (s *PacingSystem) Stage() engine.Stage { return engine.StageFrame }

func (s *PacingSystem) Update() {
	n := s.Resource.Outcome.GrownLength
	if n == 0 {
		return
	}
	cfg := s.Resource.Config
	hz := TickRate(n, cfg.MinHz, cfg.MaxHz)
	s.Resource.Fixed.SetHz(hz)
	s.statHz.Set(hz)

	s.Emit(event.EventTickRateChanged, &event.TickRatePayload{Hz: hz, Length: n})
}

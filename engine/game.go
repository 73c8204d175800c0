package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snek3d/event"
)

// Game runs the two stages against a World and routes events after each frame
type Game struct {
	World  *World
	router *event.Router

	frameNumber int64

	statTicks  *atomic.Int64
	statFrames *atomic.Int64
}

// NewGame creates the stage runner for w
func NewGame(w *World) *Game {
	reg := w.Resources.Status
	return &Game{
		World:      w,
		router:     event.NewRouter(w.Resources.Event.Queue),
		statTicks:  reg.Ints.Get("engine.ticks"),
		statFrames: reg.Ints.Get("engine.frames"),
	}
}

// RegisterEventHandler adds a handler to the router; call before the loops start
func (g *Game) RegisterEventHandler(h event.Handler) {
	g.router.Register(h)
}

// FixedStep runs the fixed stage once; the clock scheduler calls it per tick
func (g *Game) FixedStep() {
	g.World.RunSafe(func() {
		g.World.UpdateLocked(StageFixed)
	})
	g.statTicks.Add(1)
}

// Frame runs the frame stage, applies state transitions at the sync point,
// then dispatches the frame's events outside the world lock
func (g *Game) Frame(dt time.Duration) int {
	w := g.World
	res := w.Resources

	w.RunSafe(func() {
		g.frameNumber++
		res.Time.Update(res.Clock.Now(), res.Clock.RealTime(), dt, g.frameNumber)
		res.Input.Sample()
		res.Outcome.Reset()
		res.State.Advance(dt)

		w.UpdateLocked(StageFrame)

		for _, t := range res.State.Apply() {
			w.PushEvent(event.EventStateChanged, stateChangedPayload(t, res.Session.RunID))
		}
		w.Commands.Flush()
	})
	g.statFrames.Add(1)

	return g.router.DispatchAll()
}

// ExitRequested reports whether a system asked the host to stop
func (g *Game) ExitRequested() bool {
	var exit bool
	g.World.RunSafe(func() {
		exit = g.World.Resources.State.ExitRequested()
	})
	return exit
}

func stateChangedPayload(t Transition, runID string) *event.StateChangedPayload {
	if t.Sub {
		return &event.StateChangedPayload{
			From:  t.From.String() + "/" + t.SubFrom.String(),
			To:    t.To.String() + "/" + t.SubTo.String(),
			RunID: runID,
		}
	}
	return &event.StateChangedPayload{From: t.From.String(), To: t.To.String(), RunID: runID}
}

package system

import (
	"testing"

	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/engine"
)

func enter(w *engine.World, s engine.AppState) {
	w.Resources.State.Request(s)
	w.Resources.State.Apply()
	w.Commands.Flush()
}

func TestLifecycle_EnterGameplay(t *testing.T) {
	for _, walls := range []bool{true, false} {
		w := newTestWorld(t)
		w.Resources.Config.Walls = walls
		w.Resources.Fixed.SetHz(25)
		NewGameplayLifecycle(w)

		enter(w, engine.StateGameplay)

		wantWalls := 0
		if walls {
			wantWalls = 4 * (w.Resources.Config.Area.Side + 1)
		}
		if got := w.Components.Wall.Count(); got != wantWalls {
			t.Errorf("walls=%v: expected %d wall entities, got %d", walls, wantWalls, got)
		}

		if w.Resources.Snake.Len() != 1 || w.Components.Segment.Count() != 1 {
			t.Fatalf("Expected a single head segment, chain=%d store=%d", w.Resources.Snake.Len(), w.Components.Segment.Count())
		}
		head, _ := w.Resources.Snake.Head()
		h, ok := w.Components.Head.Get(head)
		if !ok || !core.IsUnitDirection(h.Direction) {
			t.Errorf("Head needs a unit heading, got %v (ok=%v)", h.Direction, ok)
		}
		pos, _ := w.Components.Placement.Get(head)
		if !w.Resources.Config.Area.Contains(pos.Cell) {
			t.Errorf("Head spawned outside the area at %v", pos.Cell)
		}
		if pos.Z != w.Resources.Config.Area.Depth {
			t.Errorf("Expected depth %v, got %v", w.Resources.Config.Area.Depth, pos.Z)
		}

		if w.Resources.Fixed.Hz() != w.Resources.Config.MinHz {
			t.Errorf("Expected tick rate reset to %v, got %v", w.Resources.Config.MinHz, w.Resources.Fixed.Hz())
		}
		if w.Resources.Session.RunID == "" {
			t.Error("Expected a run id")
		}
	}
}

func TestLifecycle_ExitDespawnsEverything(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Config.Walls = true
	NewGameplayLifecycle(w)

	enter(w, engine.StateGameplay)
	placeApple(w, core.Point{X: 3, Y: 3})
	firstRun := w.Resources.Session.RunID

	enter(w, engine.StateGameover)

	c := w.Components
	if c.Segment.Count()+c.Apple.Count()+c.Wall.Count()+c.Placement.Count()+c.Head.Count() != 0 {
		t.Errorf("Leftover entities: seg=%d apple=%d wall=%d placement=%d",
			c.Segment.Count(), c.Apple.Count(), c.Wall.Count(), c.Placement.Count())
	}
	if w.Resources.Snake.Len() != 0 {
		t.Errorf("Chain not reset, len=%d", w.Resources.Snake.Len())
	}

	enter(w, engine.StateGameplay)
	if w.Resources.Snake.Len() != 1 {
		t.Errorf("Restart should spawn a fresh head, len=%d", w.Resources.Snake.Len())
	}
	if w.Resources.Session.RunID == firstRun {
		t.Error("Restart should issue a new run id")
	}
}

func TestLifecycle_PauseStopsClock(t *testing.T) {
	w := newTestWorld(t)
	NewGameplayLifecycle(w)
	enter(w, engine.StateGameplay)

	w.Resources.State.RequestSub(engine.GameplayPaused)
	w.Resources.State.Apply()
	if !w.Resources.Clock.IsPaused() {
		t.Error("Clock should pause with the gameplay substate")
	}

	w.Resources.State.RequestSub(engine.GameplayRunning)
	w.Resources.State.Apply()
	if w.Resources.Clock.IsPaused() {
		t.Error("Clock should resume with the gameplay substate")
	}
}

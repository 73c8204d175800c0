package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/event"
)

const frameDt = 16 * time.Millisecond

func TestFlow_EatGrowAndRespawn(t *testing.T) {
	w := newTestWorld(t)
	g := engine.NewGame(w)
	for _, sys := range []engine.System{
		NewEatenSystem(w),
		NewAppleDespawnSystem(w),
		NewGrowthSystem(w),
		NewPacingSystem(w),
		NewAppleSystem(w),
		NewGameOverSystem(w),
		NewMovementSystem(w),
	} {
		w.AddSystem(sys)
	}

	startGameplay(w)
	placeSnake(w, core.DirRight, core.Point{X: 2, Y: 2}, core.Point{X: 1, Y: 2}, core.Point{X: 0, Y: 2})
	apple := placeApple(w, core.Point{X: 3, Y: 2})

	var events []event.GameEvent
	g.RegisterEventHandler(&collector{events: &events})

	g.FixedStep()
	if lv := w.Resources.Snake.LastVacated; lv != (core.Point{X: 0, Y: 2}) {
		t.Fatalf("Expected Last-Vacated (0,2), got %v", lv)
	}

	g.Frame(frameDt)

	if w.Components.Apple.Has(apple) {
		t.Error("Eaten apple should be gone after the frame")
	}
	if w.Components.Apple.Count() != 0 {
		t.Error("Replacement apple must wait for a later frame")
	}
	if w.Resources.Snake.Len() != 4 {
		t.Fatalf("Expected 4 segments, got %d", w.Resources.Snake.Len())
	}
	tail := w.Resources.Snake.Chain[3].Entity
	if pos, _ := w.Components.Placement.Get(tail); pos.Cell != (core.Point{X: 0, Y: 2}) {
		t.Errorf("New segment at %v, expected the Last-Vacated cell (0,2)", pos.Cell)
	}
	if hz := w.Resources.Fixed.Hz(); hz != 14 {
		t.Errorf("Expected 14 Hz at length 4, got %v", hz)
	}

	if n := len(eventsOfType(events, event.EventSnakeGrow)); n != 1 {
		t.Errorf("Expected exactly one grow event, got %d", n)
	}
	if n := len(eventsOfType(events, event.EventAppleEaten)); n != 1 {
		t.Errorf("Expected exactly one eaten event, got %d", n)
	}

	g.Frame(frameDt)
	if w.Resources.Snake.Len() != 4 {
		t.Errorf("Growth must not repeat without a new apple, len=%d", w.Resources.Snake.Len())
	}
	apples := w.Components.Apple.All()
	if len(apples) != 1 {
		t.Fatalf("Expected a replacement apple, got %d", len(apples))
	}
	pos, _ := w.Components.Placement.Get(apples[0])
	for _, cell := range cellsOf(w) {
		if cell == pos.Cell {
			t.Errorf("Replacement apple on segment cell %v", cell)
		}
	}
	if w.Resources.State.Current() != engine.StateGameplay {
		t.Errorf("Unexpected state %s", w.Resources.State.Current())
	}
}

func TestFlow_StatesThroughKeys(t *testing.T) {
	w := newTestWorld(t)
	in := &stubInput{}
	w.Resources.Input.Source = in
	g := engine.NewGame(w)
	Register(g)

	press := func(keys ...core.Key) {
		in.keys = core.NewKeySet(keys...)
		g.Frame(frameDt)
		in.keys = 0
		g.Frame(frameDt)
	}

	g.Frame(frameDt)
	if s := w.Resources.State.Current(); s != engine.StateMain {
		t.Fatalf("Zero entrance duration should open main, got %s", s)
	}

	press(core.KeyConfirm)
	if !w.Resources.State.IsRunning() {
		t.Fatalf("Confirm should start gameplay, got %s/%s", w.Resources.State.Current(), w.Resources.State.Sub())
	}
	if w.Resources.Snake.Len() != 1 {
		t.Errorf("Expected head spawned, len=%d", w.Resources.Snake.Len())
	}

	press(core.KeyPause)
	if w.Resources.State.Sub() != engine.GameplayPaused || !w.Resources.Clock.IsPaused() {
		t.Error("Pause key should pause gameplay and the clock")
	}
	press(core.KeyPause)
	if !w.Resources.State.IsRunning() {
		t.Error("Pause key should resume gameplay")
	}

	w.RunSafe(func() { w.Resources.State.Request(engine.StateGameover) })
	g.Frame(frameDt)
	if w.Resources.Snake.Len() != 0 {
		t.Error("Leaving gameplay should clear the chain")
	}

	press(core.KeyConfirm)
	if w.Resources.State.Current() != engine.StateGameplay {
		t.Fatalf("Confirm on gameover should restart, got %s", w.Resources.State.Current())
	}

	w.RunSafe(func() { w.Resources.State.Request(engine.StateGameover) })
	g.Frame(frameDt)
	press(core.KeyBack)
	if w.Resources.State.Current() != engine.StateMain {
		t.Fatalf("Back on gameover should return to main, got %s", w.Resources.State.Current())
	}

	press(core.KeyBack)
	if !g.ExitRequested() {
		t.Error("Back on main should request exit")
	}
}

func TestFlow_EntranceHoldsForDuration(t *testing.T) {
	w := newTestWorld(t)
	w.Resources.Config.EntranceDuration = 100 * time.Millisecond
	g := engine.NewGame(w)
	Register(g)

	for i := 0; i < 5; i++ {
		g.Frame(frameDt)
	}
	if w.Resources.State.Current() != engine.StateEntrance {
		t.Fatalf("Left entrance after %v", 5*frameDt)
	}
	for i := 0; i < 2; i++ {
		g.Frame(frameDt)
	}
	if w.Resources.State.Current() != engine.StateMain {
		t.Errorf("Expected main after the entrance duration, got %s", w.Resources.State.Current())
	}
}

type collector struct {
	events *[]event.GameEvent
}

func (c *collector) HandleEvent(ev event.GameEvent) { *c.events = append(*c.events, ev) }
func (c *collector) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventAppleSpawned,
		event.EventAppleEaten,
		event.EventSnakeGrow,
		event.EventTickRateChanged,
		event.EventGameOver,
	}
}

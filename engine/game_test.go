package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/snek3d/component"
	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/event"
)

type recordingSystem struct {
	name     string
	priority int
	stage    Stage
	log      *[]string
	run      func()
}

func (s *recordingSystem) Update() {
	*s.log = append(*s.log, s.name)
	if s.run != nil {
		s.run()
	}
}
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Stage() Stage  { return s.stage }

type recordingHandler struct {
	types []event.EventType
	got   []event.GameEvent
}

func (h *recordingHandler) HandleEvent(ev event.GameEvent) { h.got = append(h.got, ev) }
func (h *recordingHandler) EventTypes() []event.EventType  { return h.types }

func TestGame_StageOrdering(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "c", priority: 30, stage: StageFrame, log: &log})
	w.AddSystem(&recordingSystem{name: "a", priority: 10, stage: StageFrame, log: &log})
	w.AddSystem(&recordingSystem{name: "b", priority: 20, stage: StageFrame, log: &log})
	w.AddSystem(&recordingSystem{name: "b2", priority: 20, stage: StageFrame, log: &log})
	w.AddSystem(&recordingSystem{name: "fixed", priority: 10, stage: StageFixed, log: &log})

	g := NewGame(w)
	g.Frame(16 * time.Millisecond)

	want := []string{"a", "b", "b2", "c"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], log[i])
		}
	}

	log = log[:0]
	g.FixedStep()
	if len(log) != 1 || log[0] != "fixed" {
		t.Errorf("Fixed stage ran %v", log)
	}
	if w.Resources.Status.Ints.Get("engine.ticks").Load() != 1 {
		t.Error("Expected tick metric 1")
	}
}

func TestGame_SpawnVisibleOnlyAfterStage(t *testing.T) {
	w := NewWorld()
	var log []string
	var spawned core.Entity
	seenInStage := false

	w.AddSystem(&recordingSystem{name: "spawner", priority: 10, stage: StageFrame, log: &log, run: func() {
		spawned = w.Commands.Spawn(func(w *World, e core.Entity) {
			w.Components.Apple.Set(e, component.AppleComponent{})
		})
	}})
	w.AddSystem(&recordingSystem{name: "observer", priority: 20, stage: StageFrame, log: &log, run: func() {
		seenInStage = w.Components.Apple.Has(spawned)
	}})

	NewGame(w).Frame(time.Millisecond)

	if seenInStage {
		t.Error("Spawn must not be visible to later systems of the same stage")
	}
	if !w.Components.Apple.Has(spawned) {
		t.Error("Spawn must be applied at the end of the stage")
	}
}

func TestGame_TransitionsEmitEvents(t *testing.T) {
	w := NewWorld()
	g := NewGame(w)
	h := &recordingHandler{types: []event.EventType{event.EventStateChanged}}
	g.RegisterEventHandler(h)

	w.Resources.State.Request(StateMain)
	if n := g.Frame(time.Millisecond); n != 1 {
		t.Fatalf("Expected 1 dispatched event, got %d", n)
	}
	if len(h.got) != 1 {
		t.Fatalf("Expected handler call, got %d", len(h.got))
	}
	p, ok := h.got[0].Payload.(*event.StateChangedPayload)
	if !ok || p.From != "entrance" || p.To != "main" {
		t.Errorf("Unexpected payload %+v", h.got[0].Payload)
	}
	if h.got[0].Frame != 1 {
		t.Errorf("Expected frame stamp 1, got %d", h.got[0].Frame)
	}

	w.Resources.State.Request(StateGameplay)
	g.Frame(time.Millisecond)
	w.Resources.State.RequestSub(GameplayPaused)
	g.Frame(time.Millisecond)
	last := h.got[len(h.got)-1].Payload.(*event.StateChangedPayload)
	if last.From != "gameplay/running" || last.To != "gameplay/paused" {
		t.Errorf("Unexpected substate payload %+v", last)
	}
}

func TestGame_ExitRequested(t *testing.T) {
	w := NewWorld()
	g := NewGame(w)
	if g.ExitRequested() {
		t.Fatal("Exit should not be requested initially")
	}
	w.Resources.State.RequestExit()
	if !g.ExitRequested() {
		t.Error("Expected exit request")
	}
}

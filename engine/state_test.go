package engine

import (
	"testing"
	"time"
)

func TestStateMachine_RequestAppliedAtSyncPoint(t *testing.T) {
	sm := NewStateMachine()
	if sm.Current() != StateEntrance {
		t.Fatalf("Expected initial state entrance, got %s", sm.Current())
	}

	sm.Request(StateMain)
	if sm.Current() != StateEntrance {
		t.Error("Request must not change state before Apply")
	}

	tr := sm.Apply()
	if len(tr) != 1 || tr[0].From != StateEntrance || tr[0].To != StateMain {
		t.Errorf("Unexpected transitions %+v", tr)
	}
	if sm.Current() != StateMain {
		t.Errorf("Expected main, got %s", sm.Current())
	}
	if len(sm.Apply()) != 0 {
		t.Error("Apply without request should be a no-op")
	}
}

func TestStateMachine_HookOrderAndLastRequestWins(t *testing.T) {
	sm := NewStateMachine()
	var log []string
	sm.OnExit(StateEntrance, func() { log = append(log, "exit-entrance") })
	sm.OnEnter(StateMain, func() { log = append(log, "enter-main") })
	sm.OnEnter(StateGameplay, func() { log = append(log, "enter-gameplay") })

	sm.Request(StateMain)
	sm.Request(StateGameplay)
	sm.Apply()

	if sm.Current() != StateGameplay {
		t.Fatalf("Expected gameplay, got %s", sm.Current())
	}
	want := []string{"exit-entrance", "enter-gameplay"}
	if len(log) != len(want) || log[0] != want[0] || log[1] != want[1] {
		t.Errorf("Expected hooks %v, got %v", want, log)
	}
}

func TestStateMachine_Substate(t *testing.T) {
	sm := NewStateMachine()
	paused := 0
	sm.OnEnterSub(GameplayPaused, func() { paused++ })

	// Outside gameplay the substate request is ignored
	sm.RequestSub(GameplayPaused)
	if tr := sm.Apply(); len(tr) != 0 {
		t.Errorf("Substate change outside gameplay should be ignored, got %+v", tr)
	}

	sm.Request(StateGameplay)
	sm.Apply()
	if !sm.IsRunning() {
		t.Fatal("Entering gameplay should start in running")
	}

	sm.RequestSub(GameplayPaused)
	tr := sm.Apply()
	if len(tr) != 1 || !tr[0].Sub || tr[0].SubTo != GameplayPaused {
		t.Errorf("Unexpected transitions %+v", tr)
	}
	if sm.IsRunning() || !sm.InGameplay() || paused != 1 {
		t.Errorf("Expected paused gameplay, running=%v hook=%d", sm.IsRunning(), paused)
	}

	// Re-entering gameplay resets the substate
	sm.Request(StateGameover)
	sm.Apply()
	sm.Request(StateGameplay)
	sm.Apply()
	if sm.Sub() != GameplayRunning {
		t.Errorf("Expected running after re-entering gameplay, got %s", sm.Sub())
	}
}

func TestStateMachine_TopLevelDropsPendingSub(t *testing.T) {
	sm := NewStateMachine()
	sm.Request(StateGameplay)
	sm.Apply()

	sm.RequestSub(GameplayPaused)
	sm.Request(StateGameover)
	sm.Apply()

	sm.Request(StateGameplay)
	sm.Apply()
	if sm.Sub() != GameplayRunning {
		t.Error("Substate request should not survive a top-level transition")
	}
}

func TestStateMachine_HookRequestsDeferred(t *testing.T) {
	sm := NewStateMachine()
	sm.OnEnter(StateMain, func() { sm.Request(StateGameplay) })

	sm.Request(StateMain)
	sm.Apply()
	if sm.Current() != StateMain {
		t.Fatalf("Expected main, got %s", sm.Current())
	}
	if to, ok := sm.Pending(); !ok || to != StateGameplay {
		t.Error("Request from hook should stay queued")
	}
	sm.Apply()
	if sm.Current() != StateGameplay {
		t.Errorf("Expected gameplay after second Apply, got %s", sm.Current())
	}
}

func TestStateMachine_TimeInState(t *testing.T) {
	sm := NewStateMachine()
	sm.Advance(time.Second)
	sm.Advance(500 * time.Millisecond)
	if sm.TimeInState() != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s, got %v", sm.TimeInState())
	}
	sm.Request(StateMain)
	sm.Apply()
	if sm.TimeInState() != 0 {
		t.Errorf("Expected reset on transition, got %v", sm.TimeInState())
	}
}

func TestStateNames(t *testing.T) {
	tests := []struct {
		s    AppState
		want string
	}{
		{StateEntrance, "entrance"},
		{StateMain, "main"},
		{StateGameplay, "gameplay"},
		{StateGameover, "gameover"},
		{AppState(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d: expected %q, got %q", tt.s, tt.want, got)
		}
	}
	if GameplayPaused.String() != "paused" || GameplayRunning.String() != "running" {
		t.Error("Unexpected substate names")
	}
}

package engine

import "time"

// AppState is the top-level application state
type AppState uint8

const (
	StateEntrance AppState = iota
	StateMain
	StateGameplay
	StateGameover
)

var appStateNames = [...]string{"entrance", "main", "gameplay", "gameover"}

func (s AppState) String() string {
	if int(s) < len(appStateNames) {
		return appStateNames[s]
	}
	return "unknown"
}

// GameplayState is the substate that only exists inside StateGameplay
type GameplayState uint8

const (
	GameplayRunning GameplayState = iota
	GameplayPaused
)

func (s GameplayState) String() string {
	switch s {
	case GameplayRunning:
		return "running"
	case GameplayPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// StateHook runs on a state edge; it executes with the world lock held
type StateHook func()

// Transition describes one applied state change
type Transition struct {
	From, To AppState

	// Sub is set for substate-only transitions
	Sub            bool
	SubFrom, SubTo GameplayState
}

// StateMachine holds the app state and the gameplay substate
// Changes are requested during a stage and applied at the sync point by Apply,
// so every system of a frame observes the same state
type StateMachine struct {
	current AppState
	sub     GameplayState
	inState time.Duration

	pending    *AppState
	pendingSub *GameplayState
	exit       bool

	onEnter    map[AppState][]StateHook
	onExit     map[AppState][]StateHook
	onEnterSub map[GameplayState][]StateHook
}

// NewStateMachine starts in StateEntrance
func NewStateMachine() *StateMachine {
	return &StateMachine{
		current:    StateEntrance,
		onEnter:    make(map[AppState][]StateHook),
		onExit:     make(map[AppState][]StateHook),
		onEnterSub: make(map[GameplayState][]StateHook),
	}
}

func (sm *StateMachine) Current() AppState          { return sm.current }
func (sm *StateMachine) Sub() GameplayState         { return sm.sub }
func (sm *StateMachine) InGameplay() bool           { return sm.current == StateGameplay }
func (sm *StateMachine) TimeInState() time.Duration { return sm.inState }

// IsRunning reports Gameplay with the Running substate
func (sm *StateMachine) IsRunning() bool {
	return sm.current == StateGameplay && sm.sub == GameplayRunning
}

// Request queues a top-level transition; the last request before Apply wins
func (sm *StateMachine) Request(to AppState) {
	sm.pending = &to
}

// Pending reports the queued top-level transition, if any
func (sm *StateMachine) Pending() (AppState, bool) {
	if sm.pending == nil {
		return 0, false
	}
	return *sm.pending, true
}

// RequestSub queues a substate transition, ignored outside Gameplay
func (sm *StateMachine) RequestSub(to GameplayState) {
	sm.pendingSub = &to
}

// RequestExit asks the host loop to stop
func (sm *StateMachine) RequestExit() { sm.exit = true }

// ExitRequested reports whether RequestExit was called
func (sm *StateMachine) ExitRequested() bool { return sm.exit }

func (sm *StateMachine) OnEnter(s AppState, h StateHook) {
	sm.onEnter[s] = append(sm.onEnter[s], h)
}

func (sm *StateMachine) OnExit(s AppState, h StateHook) {
	sm.onExit[s] = append(sm.onExit[s], h)
}

func (sm *StateMachine) OnEnterSub(s GameplayState, h StateHook) {
	sm.onEnterSub[s] = append(sm.onEnterSub[s], h)
}

// Advance accumulates time spent in the current state
func (sm *StateMachine) Advance(dt time.Duration) {
	sm.inState += dt
}

// Apply performs queued transitions, running exit hooks before enter hooks
// A top-level transition discards a queued substate change and enters Gameplay as Running
// Requests made by hooks stay queued for the next Apply
func (sm *StateMachine) Apply() []Transition {
	var applied []Transition

	if sm.pending != nil {
		to := *sm.pending
		sm.pending = nil
		sm.pendingSub = nil

		from := sm.current
		for _, h := range sm.onExit[from] {
			h()
		}
		sm.current = to
		sm.sub = GameplayRunning
		sm.inState = 0
		for _, h := range sm.onEnter[to] {
			h()
		}
		applied = append(applied, Transition{From: from, To: to})
		return applied
	}

	if sm.pendingSub != nil {
		to := *sm.pendingSub
		sm.pendingSub = nil
		if sm.current != StateGameplay || to == sm.sub {
			return applied
		}
		from := sm.sub
		sm.sub = to
		for _, h := range sm.onEnterSub[to] {
			h()
		}
		applied = append(applied, Transition{
			From: sm.current, To: sm.current,
			Sub: true, SubFrom: from, SubTo: to,
		})
	}
	return applied
}

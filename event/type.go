package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never emitted
	EventNone EventType = iota

	// EventStateChanged signals an applied app or gameplay state transition
	// Trigger: StateMachine sync point | Payload: *StateChangedPayload
	EventStateChanged

	// EventAppleSpawned signals a new apple placement
	// Trigger: AppleSystem | Payload: *AppleSpawnedPayload
	EventAppleSpawned

	// EventAppleEaten signals that the head reached the apple cell
	// Trigger: EatenSystem | Payload: *AppleEatenPayload
	EventAppleEaten

	// EventSnakeGrow signals a new tail segment request
	// Trigger: GrowthSystem | Payload: *SnakeGrowPayload
	EventSnakeGrow

	// EventTickRateChanged signals a new fixed simulation frequency
	// Trigger: PacingSystem | Payload: *TickRatePayload
	EventTickRateChanged

	// EventGameOver signals the request to leave Gameplay
	// Trigger: GameOverSystem, AppleSystem on full board | Payload: *GameOverPayload
	EventGameOver
)

var typeNames = map[EventType]string{
	EventNone:            "None",
	EventStateChanged:    "StateChanged",
	EventAppleSpawned:    "AppleSpawned",
	EventAppleEaten:      "AppleEaten",
	EventSnakeGrow:       "SnakeGrow",
	EventTickRateChanged: "TickRateChanged",
	EventGameOver:        "GameOver",
}

// String returns the event name
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is one queued notification
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

package event

import (
	"github.com/lixenwraith/snek3d/core"
)

// GameOverReason names the terminal condition
type GameOverReason string

const (
	ReasonCollision GameOverReason = "collision"
	ReasonBoardFull GameOverReason = "board_full"
)

// StateChangedPayload carries the transition as display names
type StateChangedPayload struct {
	From, To string
	RunID    string
}

// AppleSpawnedPayload carries the new apple cell
type AppleSpawnedPayload struct {
	Cell core.Point
}

// AppleEatenPayload carries the consumed apple cell
type AppleEatenPayload struct {
	Cell  core.Point
	RunID string
}

// SnakeGrowPayload describes the segment appended at the tail
type SnakeGrowPayload struct {
	Ordinal uint64
	Cell    core.Point
	Length  int
}

// TickRatePayload carries the applied fixed step frequency
type TickRatePayload struct {
	Hz     float64
	Length int
}

// GameOverPayload carries why Gameplay ended
type GameOverPayload struct {
	Reason GameOverReason
	Length int
	RunID  string
}

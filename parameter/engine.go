package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the variable-rate frame step interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SchedulerMaxBehind is how many intervals the fixed tick may lag before the deadline is rebased
	SchedulerMaxBehind = 2
)

// ECS limits
const (
	// EventQueueSize is the initial capacity of the event queue
	EventQueueSize = 256

	// StoreInitialCapacity is the preallocated dense entity slice per store
	StoreInitialCapacity = 64
)

// KeyHoldWindow is how long a key counts as held after its last terminal press event
// Terminals report presses and autorepeats only, never releases
const KeyHoldWindow = 150 * time.Millisecond

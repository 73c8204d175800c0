package parameter

// System Execution Priorities (lower runs first)
// Frame stage ordering: input precedes the eaten check, the eaten check precedes despawn/growth/pacing
const (
	PriorityEntrance = 10
	PriorityMenu     = 20
	PriorityInput    = 30
	PriorityEaten    = 40
	PriorityDespawn  = 50
	PriorityGrowth   = 60
	PriorityPacing   = 70
	PriorityApple    = 80
	PriorityGameOver = 90

	// Fixed stage
	PriorityMovement = 10
)

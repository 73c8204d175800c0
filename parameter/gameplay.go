package parameter

import "time"

// Play area
const (
	// PlaySide is the side length of the square play grid in cells
	PlaySide = 30

	// PlaneDepth is the constant Z of every gameplay placement
	PlaneDepth = -50.0
)

// Pacing (fixed tick frequency bounds)
const (
	MinTickHz = 10.0
	MaxTickHz = 30.0

	// TickHzBase and TickHzLogScale shape hz = base + scale*log2(segments)
	TickHzBase     = 10.0
	TickHzLogScale = 2.0
)

// AppleSampleAttempts bounds rejection sampling as a multiple of the cell count
// before falling back to enumerating free cells
const AppleSampleAttempts = 4

// Visual catalog
const (
	BallMaterialCount  = 16
	AppleMaterialCount = 1
)

// EntranceDuration is how long the entrance splash holds before the main menu
const EntranceDuration = 3 * time.Second

package component

import (
	"github.com/lixenwraith/snek3d/core"
)

// SegmentComponent marks one cell-sized unit of the snake body
// Ordinal comes from the identifier allocator; lowest ordinal in the chain is the head
type SegmentComponent struct {
	Ordinal uint64
}

// HeadComponent holds the heading, attached to the head segment only
type HeadComponent struct {
	Direction core.Point
}

// Turn returns the heading after attempting to steer toward wanted
// An exact reversal of current is refused and current is kept
func Turn(current, wanted core.Point) core.Point {
	if !core.IsUnitDirection(wanted) {
		return current
	}
	if wanted.Dot(current) == -1 {
		return current
	}
	return wanted
}

// Package physics holds the pure grid rules for moving the snake chain and detecting collisions
package physics

import (
	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/grid"
)

// Advance moves the chain one cell in place; chain[0] is the head
// The head steps by dir and is clamped into area. When clamping leaves the head
// where it was, nothing moves and moved is false. Otherwise every other segment
// takes its predecessor's pre-move cell and vacated is the tail's pre-move cell.
func Advance(chain []core.Point, dir core.Point, area grid.Area) (moved bool, vacated core.Point) {
	if len(chain) == 0 {
		return false, core.Point{}
	}

	prev := chain[0]
	next := area.Clamp(prev.Add(dir))
	if next == prev {
		return false, core.Point{}
	}
	chain[0] = next

	for i := 1; i < len(chain); i++ {
		chain[i], prev = prev, chain[i]
	}
	return true, prev
}

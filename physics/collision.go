package physics

import (
	"github.com/lixenwraith/snek3d/core"
)

// Prospective returns the head cell the next move would produce from the stored chain
func Prospective(chain []core.Point, dir core.Point) core.Point {
	return chain[0].Add(dir)
}

// Collides reports whether the next move from the stored chain hits the body or another occupant
// The shifted trailing segments occupy chain[0:n-1] after the move, so the self
// check scans those; a single-segment chain has no trailing segments.
// Walls are passed in others. Clamping is not applied here.
func Collides(dir core.Point, chain []core.Point, others []core.Point) bool {
	if len(chain) == 0 {
		return false
	}
	head := Prospective(chain, dir)

	for _, p := range chain[:len(chain)-1] {
		if p == head {
			return true
		}
	}
	for _, p := range others {
		if p == head {
			return true
		}
	}
	return false
}

// Package grid models the bounded square play plane and maps cells to world placements
package grid

import (
	"github.com/lixenwraith/snek3d/core"
)

// IntSource draws uniform integers in [low, high)
type IntSource interface {
	Intn(low, high int) int
}

// Area is a square of Side cells centered on the origin
// Valid cells span [-Side/2, Side/2) on both axes
type Area struct {
	Side  int
	Depth float64
}

// NewArea creates an area; side must be positive
func NewArea(side int, depth float64) Area {
	if side <= 0 {
		panic("grid: side must be positive")
	}
	return Area{Side: side, Depth: depth}
}

// Min returns the lowest valid coordinate on either axis
func (a Area) Min() int {
	return -a.Side / 2
}

// Max returns the highest valid coordinate on either axis
func (a Area) Max() int {
	return a.Min() + a.Side - 1
}

// CellCount returns Side*Side
func (a Area) CellCount() int {
	return a.Side * a.Side
}

// Contains reports whether p is a valid cell
func (a Area) Contains(p core.Point) bool {
	lo, hi := a.Min(), a.Max()
	return p.X >= lo && p.X <= hi && p.Y >= lo && p.Y <= hi
}

// Clamp pulls p into the area on both axes
func (a Area) Clamp(p core.Point) core.Point {
	return core.Point{X: clamp(p.X, a.Min(), a.Max()), Y: clamp(p.Y, a.Min(), a.Max())}
}

// RandomCell draws a uniformly distributed valid cell
func (a Area) RandomCell(rng IntSource) core.Point {
	return core.Point{
		X: rng.Intn(0, a.Side) + a.Min(),
		Y: rng.Intn(0, a.Side) + a.Min(),
	}
}

// ToWorld maps a cell to its placement on the depth plane
func (a Area) ToWorld(p core.Point) core.Vec3 {
	return core.Vec3{X: float64(p.X), Y: float64(p.Y), Z: a.Depth}
}

// Cells returns every valid cell in row-major order
func (a Area) Cells() []core.Point {
	cells := make([]core.Point, 0, a.CellCount())
	for y := a.Min(); y <= a.Max(); y++ {
		for x := a.Min(); x <= a.Max(); x++ {
			cells = append(cells, core.Point{X: x, Y: y})
		}
	}
	return cells
}

// Border returns the ring of cells immediately outside the area
func (a Area) Border() []core.Point {
	lo, hi := a.Min()-1, a.Max()+1
	ring := make([]core.Point, 0, 4*(a.Side+1))
	for x := lo; x <= hi; x++ {
		ring = append(ring, core.Point{X: x, Y: lo}, core.Point{X: x, Y: hi})
	}
	for y := lo + 1; y < hi; y++ {
		ring = append(ring, core.Point{X: lo, Y: y}, core.Point{X: hi, Y: y})
	}
	return ring
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

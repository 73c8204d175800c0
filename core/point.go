package core

// Point is a grid cell coordinate on the play plane
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Dot returns the dot product, used to detect exact reversal of unit directions
func (p Point) Dot(o Point) int {
	return p.X*o.X + p.Y*o.Y
}

// Neg returns the opposite vector
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Unit heading vectors
var (
	DirLeft  = Point{X: -1, Y: 0}
	DirRight = Point{X: 1, Y: 0}
	DirDown  = Point{X: 0, Y: -1}
	DirUp    = Point{X: 0, Y: 1}
)

// Directions lists headings in draw-index order
var Directions = [4]Point{DirLeft, DirRight, DirDown, DirUp}

// DirectionFromIndex maps a random draw in [0,4) to a heading
// Any other index is a programmer error
func DirectionFromIndex(i int) Point {
	if i < 0 || i >= len(Directions) {
		panic("direction index out of range [0,4)")
	}
	return Directions[i]
}

// IsUnitDirection reports whether p is one of the four headings
func IsUnitDirection(p Point) bool {
	for _, d := range Directions {
		if p == d {
			return true
		}
	}
	return false
}

// Vec3 is a world-space placement
type Vec3 struct {
	X, Y, Z float64
}

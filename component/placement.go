package component

import (
	"github.com/lixenwraith/snek3d/core"
)

// PlacementComponent is the grid cell plus the depth plane of a visual entity
type PlacementComponent struct {
	Cell core.Point
	Z    float64
}

// Translation returns the world-space position
func (p PlacementComponent) Translation() core.Vec3 {
	return core.Vec3{X: float64(p.Cell.X), Y: float64(p.Cell.Y), Z: p.Z}
}

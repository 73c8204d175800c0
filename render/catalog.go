// Package render is the minimal placement sink: it resolves opaque visual handles
// to terminal glyphs and colors and paints world placements with tcell
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/snek3d/component"
	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/parameter"
)

// Mesh is the terminal stand-in for a 3D mesh
type Mesh struct {
	Name  string
	Glyph rune
}

// Catalog owns every mesh and material; handle 0 means none
type Catalog struct {
	meshes    []Mesh
	materials []colorful.Color

	ball, apple, wall component.MeshHandle

	ballMaterials  []component.MaterialHandle
	appleMaterials []component.MaterialHandle
	wallMaterial   component.MaterialHandle
}

var _ engine.VisualCatalog = (*Catalog)(nil)

// NewCatalog builds the sphere meshes, the apple material and the hue wheel of ball materials
func NewCatalog() *Catalog {
	c := &Catalog{
		meshes:    []Mesh{{}},
		materials: []colorful.Color{{}},
	}

	c.ball = c.addMesh(Mesh{Name: "ball", Glyph: '●'})
	c.apple = c.addMesh(Mesh{Name: "apple", Glyph: '◆'})
	c.wall = c.addMesh(Mesh{Name: "wall", Glyph: '█'})

	for i := 0; i < parameter.AppleMaterialCount; i++ {
		c.appleMaterials = append(c.appleMaterials, c.addMaterial(colorful.Hsl(0, 1, 0.5)))
	}
	for i := 0; i < parameter.BallMaterialCount; i++ {
		hue := float64(i) / parameter.BallMaterialCount * 360
		c.ballMaterials = append(c.ballMaterials, c.addMaterial(colorful.Hsl(hue, 1, 0.5)))
	}
	c.wallMaterial = c.addMaterial(colorful.Hsl(0, 0, 0.35))
	return c
}

func (c *Catalog) addMesh(m Mesh) component.MeshHandle {
	c.meshes = append(c.meshes, m)
	return component.MeshHandle(len(c.meshes) - 1)
}

func (c *Catalog) addMaterial(col colorful.Color) component.MaterialHandle {
	c.materials = append(c.materials, col)
	return component.MaterialHandle(len(c.materials) - 1)
}

func (c *Catalog) BallMesh() component.MeshHandle  { return c.ball }
func (c *Catalog) AppleMesh() component.MeshHandle { return c.apple }
func (c *Catalog) WallMesh() component.MeshHandle  { return c.wall }

func (c *Catalog) BallMaterial(idx int) component.MaterialHandle  { return c.ballMaterials[idx] }
func (c *Catalog) AppleMaterial(idx int) component.MaterialHandle { return c.appleMaterials[idx] }
func (c *Catalog) WallMaterial() component.MaterialHandle         { return c.wallMaterial }

func (c *Catalog) BallMaterialCount() int  { return len(c.ballMaterials) }
func (c *Catalog) AppleMaterialCount() int { return len(c.appleMaterials) }

// Mesh resolves a handle; unknown handles resolve to the empty mesh
func (c *Catalog) Mesh(h component.MeshHandle) Mesh {
	if int(h) >= len(c.meshes) {
		return Mesh{}
	}
	return c.meshes[h]
}

// Color resolves a material handle; unknown handles resolve to black
func (c *Catalog) Color(h component.MaterialHandle) colorful.Color {
	if int(h) >= len(c.materials) {
		return colorful.Color{}
	}
	return c.materials[h]
}

// Style returns the tcell style for a material
func (c *Catalog) Style(h component.MaterialHandle) tcell.Style {
	r, g, b := c.Color(h).RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snek3d/component"
	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/grid"
)

// Sprite is one placed visual copied out of the world
type Sprite struct {
	Cell     core.Point
	Mesh     component.MeshHandle
	Material component.MaterialHandle
}

// Snapshot is everything the painter needs from one world state
type Snapshot struct {
	Sprites []Sprite
	Area    grid.Area
	State   engine.AppState
	Sub     engine.GameplayState

	Length int64
	Eaten  int64
	Hz     float64
	RunID  string
}

// TakeSnapshot copies placements and status under the world lock
func TakeSnapshot(w *engine.World) Snapshot {
	var snap Snapshot
	w.RunSafe(func() {
		res := w.Resources
		snap.Area = res.Config.Area
		snap.State = res.State.Current()
		snap.Sub = res.State.Sub()
		snap.RunID = res.Session.RunID
		snap.Length = res.Status.Ints.Get("snake.length").Load()
		snap.Eaten = res.Status.Ints.Get("apple.eaten").Load()
		snap.Hz = res.Fixed.Hz()

		entities := w.Query().With(w.Components.Placement).With(w.Components.Visual).Execute()
		snap.Sprites = make([]Sprite, 0, len(entities))
		for _, e := range entities {
			p, _ := w.Components.Placement.Get(e)
			v, _ := w.Components.Visual.Get(e)
			snap.Sprites = append(snap.Sprites, Sprite{Cell: p.Cell, Mesh: v.Mesh, Material: v.Material})
		}
	})
	return snap
}

// Painter draws snapshots onto a tcell screen, two columns per cell
type Painter struct {
	screen  tcell.Screen
	catalog *Catalog
}

func NewPainter(screen tcell.Screen, catalog *Catalog) *Painter {
	return &Painter{screen: screen, catalog: catalog}
}

// Origin returns the screen position of the top-left border cell
func (p *Painter) Origin(area grid.Area) (x, y int) {
	width, height := p.screen.Size()
	boardW := (area.Side + 2) * 2
	boardH := area.Side + 2
	x = (width - boardW) / 2
	y = (height-boardH)/2 + 1
	if x < 0 {
		x = 0
	}
	if y < 1 {
		y = 1
	}
	return x, y
}

// CellToScreen maps a grid cell (Y up) to a screen position (rows down)
func (p *Painter) CellToScreen(area grid.Area, cell core.Point) (x, y int) {
	ox, oy := p.Origin(area)
	return ox + (cell.X-area.Min()+1)*2, oy + (area.Max() + 1 - cell.Y)
}

// Draw paints one frame and shows it
func (p *Painter) Draw(snap Snapshot) {
	s := p.screen
	s.Clear()

	if snap.State == engine.StateGameplay || snap.State == engine.StateGameover {
		for _, sp := range snap.Sprites {
			x, y := p.CellToScreen(snap.Area, sp.Cell)
			s.SetContent(x, y, p.catalog.Mesh(sp.Mesh).Glyph, nil, p.catalog.Style(sp.Material))
		}
	}

	p.text(0, 0, p.statusLine(snap), tcell.StyleDefault.Bold(true))
	if msg := banner(snap); msg != "" {
		_, height := s.Size()
		p.text(0, height-1, msg, tcell.StyleDefault.Reverse(true))
	}
	s.Show()
}

func (p *Painter) statusLine(snap Snapshot) string {
	line := fmt.Sprintf("snek3d | %s", snap.State)
	if snap.State == engine.StateGameplay {
		line += "/" + snap.Sub.String()
	}
	if snap.State == engine.StateGameplay || snap.State == engine.StateGameover {
		line += fmt.Sprintf(" | length %d | apples %d | %.1f Hz", snap.Length, snap.Eaten, snap.Hz)
	}
	return line
}

func banner(snap Snapshot) string {
	switch snap.State {
	case engine.StateEntrance:
		return "snek3d"
	case engine.StateMain:
		return "confirm: play | back: quit"
	case engine.StateGameover:
		return "game over | confirm: retry | back: menu"
	}
	if snap.Sub == engine.GameplayPaused {
		return "paused"
	}
	return ""
}

func (p *Painter) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

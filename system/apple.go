package system

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/snek3d/component"
	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/event"
	"github.com/lixenwraith/snek3d/grid"
	"github.com/lixenwraith/snek3d/parameter"
)

// ErrBoardFull reports that every cell of the play area is taken by the snake
var ErrBoardFull = errors.New("no free cell for apple")

// PickFreeCell draws a uniformly random cell not in occupied
// Rejection sampling is bounded by AppleSampleAttempts times the cell count,
// after which the free cells are enumerated and one is drawn from them
func PickFreeCell(area grid.Area, occupied map[core.Point]struct{}, rng grid.IntSource) (core.Point, error) {
	total := area.CellCount()
	if len(occupied) >= total {
		return core.Point{}, fmt.Errorf("%d of %d cells occupied: %w", len(occupied), total, ErrBoardFull)
	}

	for attempt := 0; attempt < parameter.AppleSampleAttempts*total; attempt++ {
		cell := area.RandomCell(rng)
		if _, taken := occupied[cell]; !taken {
			return cell, nil
		}
	}

	free := make([]core.Point, 0, total-len(occupied))
	for _, cell := range area.Cells() {
		if _, taken := occupied[cell]; !taken {
			free = append(free, cell)
		}
	}
	if len(free) == 0 {
		return core.Point{}, fmt.Errorf("free cell scan: %w", ErrBoardFull)
	}
	return free[rng.Intn(0, len(free))], nil
}

// AppleSystem keeps exactly one apple on the board while gameplay runs
type AppleSystem struct {
	engine.SystemBase

	statSpawned *atomic.Int64
}

func NewAppleSystem(world *engine.World) engine.System {
	return &AppleSystem{
		SystemBase:  engine.NewSystemBase(world),
		statSpawned: world.Resources.Status.Ints.Get("apple.spawned"),
	}
}

func (s *AppleSystem) Name() string        { return "apple" }
func (s *AppleSystem) Priority() int       { return parameter.PriorityApple }
func (s *AppleSystem) Stage() engine.Stage { return engine.StageFrame }

func (s *AppleSystem) Update() {
	if !s.Resource.State.IsRunning() || s.Component.Apple.Count() > 0 {
		return
	}

	occupied := make(map[core.Point]struct{}, s.Resource.Snake.Len())
	for _, cell := range chainCells(s.World) {
		occupied[cell] = struct{}{}
	}

	area := s.Resource.Config.Area
	cell, err := PickFreeCell(area, occupied, s.Resource.Rng)
	if err != nil {
		s.Resource.Outcome.BoardFull = true
		return
	}

	visual := component.VisualComponent{}
	if v := s.Resource.Visuals; v != nil {
		visual.Mesh = v.AppleMesh()
		visual.Material = v.AppleMaterial(s.Resource.Rng.Intn(0, v.AppleMaterialCount()))
	}

	s.Commands.Spawn(func(w *engine.World, e core.Entity) {
		w.Components.Apple.Set(e, component.AppleComponent{})
		w.Components.Placement.Set(e, component.PlacementComponent{Cell: cell, Z: area.Depth})
		w.Components.Visual.Set(e, visual)
	})
	s.statSpawned.Add(1)

	s.Emit(event.EventAppleSpawned, &event.AppleSpawnedPayload{Cell: cell})
}

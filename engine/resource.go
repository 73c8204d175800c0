package engine

import (
	"math"
	"sort"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snek3d/component"
	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/event"
	"github.com/lixenwraith/snek3d/grid"
	"github.com/lixenwraith/snek3d/parameter"
	"github.com/lixenwraith/snek3d/service"
	"github.com/lixenwraith/snek3d/status"
)

// Resource holds the singleton services and data shared by systems
// Every service is owned here and injected through SystemBase, never reached as a global
type Resource struct {
	// World Resource
	Time    *TimeResource
	Fixed   *FixedTimeResource
	Config  *ConfigResource
	State   *StateMachine
	Snake   *SnakeResource
	Outcome *FrameOutcome
	Input   *InputResource
	Session *SessionResource
	Event   *EventQueueResource
	Clock   *PausableClock

	// Shared services
	Rng *service.Rng
	IDs *service.IDAllocator

	// Rendering catalog, opaque to simulation
	Visuals VisualCatalog

	// Telemetry
	Status *status.Registry
}

// NewResource builds the default resource set
func NewResource() *Resource {
	return &Resource{
		Time:    &TimeResource{},
		Fixed:   NewFixedTimeResource(parameter.MinTickHz),
		Config:  DefaultConfigResource(),
		State:   NewStateMachine(),
		Snake:   &SnakeResource{},
		Outcome: &FrameOutcome{},
		Input:   &InputResource{},
		Session: &SessionResource{},
		Event:   &EventQueueResource{Queue: event.NewEventQueue()},
		Clock:   NewPausableClock(NewMonotonicTimeProvider()),
		Rng:     service.NewRng(0),
		IDs:     service.NewIDAllocator(),
		Status:  status.NewRegistry(),
	}
}

// === World Resources ===

// TimeResource wraps time data for systems
// Updated by Game at the start of a frame
type TimeResource struct {
	// GameTime is the pausable clock reading
	GameTime time.Time

	// RealTime is the wall-clock time (unaffected by pause)
	RealTime time.Time

	// DeltaTime is the duration since the last frame
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with system reads
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// FixedTimeResource is the fixed simulation frequency
// Written by pacing under the world lock, read lock-free by the clock scheduler
type FixedTimeResource struct {
	bits atomic.Uint64
}

// NewFixedTimeResource creates the resource at hz
func NewFixedTimeResource(hz float64) *FixedTimeResource {
	f := &FixedTimeResource{}
	f.SetHz(hz)
	return f
}

// SetHz stores a new frequency; non-positive values are ignored
func (f *FixedTimeResource) SetHz(hz float64) {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return
	}
	f.bits.Store(math.Float64bits(hz))
}

// Hz returns the current frequency
func (f *FixedTimeResource) Hz() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Interval returns the tick period at the current frequency
func (f *FixedTimeResource) Interval() time.Duration {
	return time.Duration(float64(time.Second) / f.Hz())
}

// ConfigResource holds the static gameplay configuration
type ConfigResource struct {
	Area             grid.Area
	MinHz, MaxHz     float64
	Walls            bool
	EntranceDuration time.Duration
}

// DefaultConfigResource mirrors the parameter defaults
func DefaultConfigResource() *ConfigResource {
	return &ConfigResource{
		Area:             grid.NewArea(parameter.PlaySide, parameter.PlaneDepth),
		MinHz:            parameter.MinTickHz,
		MaxHz:            parameter.MaxTickHz,
		Walls:            true,
		EntranceDuration: parameter.EntranceDuration,
	}
}

// Link is one chain entry
type Link struct {
	Entity  core.Entity
	Ordinal uint64
}

// SnakeResource is the explicit body chain, head first, ordered by ordinal
// Ordinals only grow, so insertion is an append in practice and the chain is never re-sorted per tick
type SnakeResource struct {
	Chain []Link

	// LastVacated is the tail's cell before the most recent successful move
	LastVacated core.Point
}

// Insert places a segment by ordinal
func (s *SnakeResource) Insert(e core.Entity, ordinal uint64) {
	n := len(s.Chain)
	if n == 0 || s.Chain[n-1].Ordinal < ordinal {
		s.Chain = append(s.Chain, Link{Entity: e, Ordinal: ordinal})
		return
	}
	i := sort.Search(n, func(i int) bool { return s.Chain[i].Ordinal >= ordinal })
	s.Chain = append(s.Chain, Link{})
	copy(s.Chain[i+1:], s.Chain[i:])
	s.Chain[i] = Link{Entity: e, Ordinal: ordinal}
}

// Len returns the segment count
func (s *SnakeResource) Len() int {
	return len(s.Chain)
}

// Head returns the lowest-ordinal segment
func (s *SnakeResource) Head() (core.Entity, bool) {
	if len(s.Chain) == 0 {
		return 0, false
	}
	return s.Chain[0].Entity, true
}

// Reset clears the chain and the vacated cell
func (s *SnakeResource) Reset() {
	s.Chain = s.Chain[:0]
	s.LastVacated = core.Point{}
}

// FrameOutcome is the explicit per-frame result of the eaten check
// Later systems of the same frame read it instead of peeking an event queue
type FrameOutcome struct {
	AppleEaten bool
	Apple      core.Entity
	EatenCell  core.Point

	// GrownLength is the chain length after this frame's growth, 0 if none
	GrownLength int

	// BoardFull is set when no free cell was left for an apple
	BoardFull bool
}

// Reset clears the outcome at the start of a frame
func (o *FrameOutcome) Reset() {
	*o = FrameOutcome{}
}

// InputSource exposes the set of currently pressed keys
type InputSource interface {
	PressedKeys() core.KeySet
}

// InputResource holds the input backend and this frame's sample
type InputResource struct {
	Source   InputSource
	Pressed  core.KeySet
	Previous core.KeySet // previous frame's sample, for edge detection
}

// Sample reads the source once for the frame
func (ir *InputResource) Sample() {
	ir.Previous = ir.Pressed
	if ir.Source == nil {
		ir.Pressed = 0
		return
	}
	ir.Pressed = ir.Source.PressedKeys()
}

// JustPressed reports a key held this frame but not the previous one
func (ir *InputResource) JustPressed(k core.Key) bool {
	return ir.Pressed.Has(k) && !ir.Previous.Has(k)
}

// SessionResource identifies the current gameplay run
type SessionResource struct {
	RunID     string
	StartedAt time.Time
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// VisualCatalog hands out opaque mesh/material handles for spawned entities
type VisualCatalog interface {
	BallMesh() component.MeshHandle
	BallMaterial(idx int) component.MaterialHandle
	BallMaterialCount() int
	AppleMesh() component.MeshHandle
	AppleMaterial(idx int) component.MaterialHandle
	AppleMaterialCount() int
	WallMesh() component.MeshHandle
	WallMaterial() component.MaterialHandle
}

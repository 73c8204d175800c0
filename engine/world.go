package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/event"
)

// Stage selects the schedule a system runs in
type Stage uint8

const (
	// StageFrame runs once per variable-rate frame
	StageFrame Stage = iota
	// StageFixed runs once per fixed simulation tick
	StageFixed
)

// System is an interface that all systems must implement
type System interface {
	Update()
	Priority() int // Lower values run first within the stage
	Stage() Stage
}

// World contains all entities, their components and the shared resources
type World struct {
	mu           sync.RWMutex
	nextEntityID atomic.Uint64

	Resources  *Resource
	Components ComponentStore
	Commands   *CommandBuffer

	systems     map[Stage][]System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with empty stores and default resources
func NewWorld() *World {
	w := &World{
		Resources:  NewResource(),
		Components: newComponentStore(),
		systems:    make(map[Stage][]System),
	}
	w.nextEntityID.Store(1)
	w.Commands = newCommandBuffer(w)
	return w
}

// CreateEntity reserves a new entity ID
// Safe to call from any goroutine; ID 0 is never issued
func (w *World) CreateEntity() core.Entity {
	return core.Entity(w.nextEntityID.Add(1) - 1)
}

// DestroyEntity removes all components associated with an entity immediately
// Systems should prefer Commands.Despawn so the removal lands at the sync point
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.Remove(e)
	}
}

// Alive reports whether any store holds the entity
func (w *World) Alive(e core.Entity) bool {
	for _, s := range w.Components.all() {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// AddSystem adds a system to its stage, keeping the stage sorted by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	stage := system.Stage()
	list := append(w.systems[stage], system)

	// Insertion sort keeps registration order for equal priorities
	for i := len(list) - 1; i > 0 && list[i-1].Priority() > list[i].Priority(); i-- {
		list[i-1], list[i] = list[i], list[i-1]
	}
	w.systems[stage] = list
}

// Systems returns a copy of the systems registered for a stage, in run order
func (w *World) Systems(stage Stage) []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems[stage]))
	copy(result, w.systems[stage])
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// UpdateLocked runs a stage's systems then flushes deferred commands
// Caller must hold the update lock
func (w *World) UpdateLocked(stage Stage) {
	for _, system := range w.Systems(stage) {
		system.Update()
	}
	w.Commands.Flush()
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	res := w.Resources
	if res.Event == nil || res.Event.Queue == nil {
		return
	}
	res.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   res.Time.FrameNumber,
	})
}

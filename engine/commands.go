package engine

import (
	"sync"

	"github.com/lixenwraith/snek3d/core"
)

// SpawnFunc attaches components to a freshly reserved entity during Flush
type SpawnFunc func(w *World, e core.Entity)

type command struct {
	entity  core.Entity
	spawn   SpawnFunc
	despawn bool
}

// CommandBuffer defers entity creation and destruction to the next sync point
// Requests made during a stage are invisible to later systems of the same stage
// and are applied in request order by Flush
type CommandBuffer struct {
	mu    sync.Mutex
	world *World
	queue []command
}

func newCommandBuffer(w *World) *CommandBuffer {
	return &CommandBuffer{world: w}
}

// Spawn reserves an entity now and runs build at the next Flush
func (cb *CommandBuffer) Spawn(build SpawnFunc) core.Entity {
	e := cb.world.CreateEntity()
	cb.mu.Lock()
	cb.queue = append(cb.queue, command{entity: e, spawn: build})
	cb.mu.Unlock()
	return e
}

// Despawn removes every component of e at the next Flush
func (cb *CommandBuffer) Despawn(e core.Entity) {
	cb.mu.Lock()
	cb.queue = append(cb.queue, command{entity: e, despawn: true})
	cb.mu.Unlock()
}

// Pending returns the number of queued commands
func (cb *CommandBuffer) Pending() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return len(cb.queue)
}

// Flush applies queued commands in order and returns how many ran
// Commands queued by a spawn function run in the same flush
func (cb *CommandBuffer) Flush() int {
	applied := 0
	for {
		cb.mu.Lock()
		batch := cb.queue
		cb.queue = nil
		cb.mu.Unlock()

		if len(batch) == 0 {
			return applied
		}
		for _, c := range batch {
			if c.despawn {
				cb.world.DestroyEntity(c.entity)
			} else if c.spawn != nil {
				c.spawn(cb.world, c.entity)
			}
			applied++
		}
	}
}

// Discard drops queued commands without applying them
func (cb *CommandBuffer) Discard() {
	cb.mu.Lock()
	cb.queue = nil
	cb.mu.Unlock()
}

package engine

import "github.com/lixenwraith/snek3d/event"

// SystemBase is embedded by gameplay systems for direct access to world state
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component ComponentStore
	Commands  *CommandBuffer
}

func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: w.Components,
		Commands:  w.Commands,
	}
}

// Emit queues an outward event stamped with the current frame
func (b SystemBase) Emit(t event.EventType, payload any) {
	b.World.PushEvent(t, payload)
}

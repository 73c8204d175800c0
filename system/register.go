package system

import (
	"github.com/lixenwraith/snek3d/engine"
)

// Register adds every gameplay system to the world, attaches the lifecycle hooks
// and subscribes the journal to the game's event router
func Register(g *engine.Game) {
	w := g.World

	NewGameplayLifecycle(w)

	w.AddSystem(NewEntranceSystem(w))
	w.AddSystem(NewMenuSystem(w))
	w.AddSystem(NewInputSystem(w))
	w.AddSystem(NewEatenSystem(w))
	w.AddSystem(NewAppleDespawnSystem(w))
	w.AddSystem(NewGrowthSystem(w))
	w.AddSystem(NewPacingSystem(w))
	w.AddSystem(NewAppleSystem(w))
	w.AddSystem(NewGameOverSystem(w))
	w.AddSystem(NewMovementSystem(w))

	g.RegisterEventHandler(NewJournalSystem(w))
}

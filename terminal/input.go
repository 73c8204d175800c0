package terminal

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/parameter"
)

var gameKeys = []core.Key{
	core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight,
	core.KeyPause, core.KeyConfirm, core.KeyBack,
}

// KeyboardSource turns tcell key events into a held-key set
// A press is latched until the next sample, then treated as held for the hold window,
// which autorepeat keeps refreshing while the key stays down
type KeyboardSource struct {
	mu       sync.Mutex
	bindings Bindings
	hold     time.Duration
	now      func() time.Time

	lastSeen map[core.Key]time.Time
	latched  core.KeySet

	interrupted atomic.Bool
}

// NewKeyboardSource creates a source over bindings
func NewKeyboardSource(bindings Bindings) *KeyboardSource {
	return &KeyboardSource{
		bindings: bindings,
		hold:     parameter.KeyHoldWindow,
		now:      time.Now,
		lastSeen: make(map[core.Key]time.Time, len(gameKeys)),
	}
}

// HandleEvent records a terminal event; reports whether it mapped to a game key
// Ctrl+C is recorded as an interrupt instead
func (ks *KeyboardSource) HandleEvent(ev tcell.Event) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	if kev.Key() == tcell.KeyCtrlC {
		ks.interrupted.Store(true)
		return false
	}

	k, ok := ks.bindings[bindingOf(kev)]
	if !ok {
		return false
	}

	ks.mu.Lock()
	ks.lastSeen[k] = ks.now()
	ks.latched = ks.latched.With(k)
	ks.mu.Unlock()
	return true
}

// PressedKeys samples the held set and clears the latch
func (ks *KeyboardSource) PressedKeys() core.KeySet {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	now := ks.now()
	set := ks.latched
	ks.latched = 0
	for _, k := range gameKeys {
		if seen, ok := ks.lastSeen[k]; ok && now.Sub(seen) < ks.hold {
			set = set.With(k)
		}
	}
	return set
}

// Interrupted reports whether Ctrl+C was seen
func (ks *KeyboardSource) Interrupted() bool {
	return ks.interrupted.Load()
}

// Poll feeds screen events to the source until the screen is finalized
// Run it in its own goroutine
func (ks *KeyboardSource) Poll(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		ks.HandleEvent(ev)
	}
}

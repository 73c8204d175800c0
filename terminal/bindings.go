package terminal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snek3d/core"
)

var actionKeys = map[string]core.Key{
	"up":      core.KeyUp,
	"down":    core.KeyDown,
	"left":    core.KeyLeft,
	"right":   core.KeyRight,
	"pause":   core.KeyPause,
	"confirm": core.KeyConfirm,
	"back":    core.KeyBack,
}

// ErrBinding wraps every rejected [keys] entry
var ErrBinding = errors.New("invalid key binding")

// Bindings maps physical keys to logical game keys
type Bindings map[Binding]core.Key

// NewBindings builds the table from the config [keys] section (action -> key name)
// Arrow keys steer as well unless they are bound to another action
func NewBindings(keys map[string]string) (Bindings, error) {
	b := Bindings{
		{Key: tcell.KeyUp}:    core.KeyUp,
		{Key: tcell.KeyDown}:  core.KeyDown,
		{Key: tcell.KeyLeft}:  core.KeyLeft,
		{Key: tcell.KeyRight}: core.KeyRight,
	}

	actions := make([]string, 0, len(keys))
	for a := range keys {
		actions = append(actions, a)
	}
	sort.Strings(actions)

	claimed := make(map[Binding]string, len(actions))
	for _, action := range actions {
		k, ok := actionKeys[action]
		if !ok {
			return nil, fmt.Errorf("%w: unknown action %q", ErrBinding, action)
		}
		binding, err := ParseBinding(keys[action])
		if err != nil {
			return nil, fmt.Errorf("%w: action %q: %v", ErrBinding, action, err)
		}
		if other, dup := claimed[binding]; dup {
			return nil, fmt.Errorf("%w: %q bound to both %q and %q", ErrBinding, keys[action], other, action)
		}
		claimed[binding] = action
		b[binding] = k
	}
	return b, nil
}

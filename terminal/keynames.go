package terminal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// nameToKey maps canonical config names to tcell special keys
var nameToKey = map[string]tcell.Key{
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,

	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"page_up":   tcell.KeyPgUp,
	"page_down": tcell.KeyPgDn,
	"insert":    tcell.KeyInsert,
}

// runeAliases names printable keys that are awkward to write in TOML
var runeAliases = map[string]rune{
	"space": ' ',
}

// Binding identifies one physical key: a special key, or KeyRune with a rune
type Binding struct {
	Key  tcell.Key
	Rune rune
}

// ParseBinding resolves a config key string such as "w", "space" or "enter"
// Single characters are case-insensitive
func ParseBinding(s string) (Binding, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return Binding{Key: tcell.KeyRune, Rune: unicode.ToLower(r)}, nil
	}

	name := strings.ToLower(s)
	if r, ok := runeAliases[name]; ok {
		return Binding{Key: tcell.KeyRune, Rune: r}, nil
	}
	if k, ok := nameToKey[name]; ok {
		return Binding{Key: k}, nil
	}
	return Binding{}, fmt.Errorf("unknown key name: %q", s)
}

// bindingOf normalizes a key event to its Binding
func bindingOf(ev *tcell.EventKey) Binding {
	if ev.Key() == tcell.KeyRune {
		return Binding{Key: tcell.KeyRune, Rune: unicode.ToLower(ev.Rune())}
	}
	return Binding{Key: ev.Key()}
}

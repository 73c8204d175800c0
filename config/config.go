// Package config loads the TOML game configuration
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/grid"
	"github.com/lixenwraith/snek3d/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// DefaultPath is read when present and no -config flag is given
const DefaultPath = "snek3d.toml"

// Actions are the names accepted in the [keys] table
var Actions = []string{"up", "down", "left", "right", "pause", "confirm", "back"}

// Duration decodes TOML strings such as "3s" or "16ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the file-level configuration
type Config struct {
	PlaySide         int               `toml:"play_side"`
	MinHz            float64           `toml:"min_hz"`
	MaxHz            float64           `toml:"max_hz"`
	Walls            bool              `toml:"walls"`
	Seed             uint64            `toml:"seed"`
	EntranceDuration Duration          `toml:"entrance_duration"`
	FrameInterval    Duration          `toml:"frame_interval"`
	Debug            bool              `toml:"debug"`
	Keys             map[string]string `toml:"keys"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		PlaySide:         parameter.PlaySide,
		MinHz:            parameter.MinTickHz,
		MaxHz:            parameter.MaxTickHz,
		Walls:            true,
		EntranceDuration: Duration{parameter.EntranceDuration},
		FrameInterval:    Duration{parameter.FrameUpdateInterval},
		Keys: map[string]string{
			"up":      "w",
			"down":    "s",
			"left":    "a",
			"right":   "d",
			"pause":   "p",
			"confirm": "enter",
			"back":    "escape",
		},
	}
}

// Parse decodes TOML text over the defaults and validates the result
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path
// A missing file at DefaultPath yields the defaults; any other missing path is an error
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	names := make([]string, len(undecoded))
	for i, k := range undecoded {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(names, ", "))
}

// Validate checks ranges and the key table
func (c *Config) Validate() error {
	switch {
	case c.PlaySide < 2:
		return fmt.Errorf("%w: play_side %d must be at least 2", ErrInvalid, c.PlaySide)
	case c.MinHz <= 0:
		return fmt.Errorf("%w: min_hz %v must be positive", ErrInvalid, c.MinHz)
	case c.MaxHz < c.MinHz:
		return fmt.Errorf("%w: max_hz %v below min_hz %v", ErrInvalid, c.MaxHz, c.MinHz)
	case c.EntranceDuration.Duration < 0:
		return fmt.Errorf("%w: entrance_duration %v is negative", ErrInvalid, c.EntranceDuration)
	case c.FrameInterval.Duration <= 0:
		return fmt.Errorf("%w: frame_interval %v must be positive", ErrInvalid, c.FrameInterval)
	}

	known := make(map[string]bool, len(Actions))
	for _, a := range Actions {
		known[a] = true
	}
	actions := make([]string, 0, len(c.Keys))
	for a := range c.Keys {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	for _, a := range actions {
		if !known[a] {
			return fmt.Errorf("%w: [keys] unknown action %q", ErrInvalid, a)
		}
		if c.Keys[a] == "" {
			return fmt.Errorf("%w: [keys] action %q has no key", ErrInvalid, a)
		}
	}
	return nil
}

// Resource converts the gameplay settings for the engine
func (c *Config) Resource() *engine.ConfigResource {
	return &engine.ConfigResource{
		Area:             grid.NewArea(c.PlaySide, parameter.PlaneDepth),
		MinHz:            c.MinHz,
		MaxHz:            c.MaxHz,
		Walls:            c.Walls,
		EntranceDuration: c.EntranceDuration.Duration,
	}
}

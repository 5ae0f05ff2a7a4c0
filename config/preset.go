package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned for preset names not in the registry
var ErrUnknownPreset = errors.New("unknown preset")

// Preset names
const (
	PresetClustered = "clustered"
	PresetCompact   = "compact"
	PresetClassic   = "classic"
)

// presets maps a name to a constructor; each call returns a fresh copy
var presets = map[string]func() *Config{
	// Anisotropic centering with cluster gravity and tilted elliptical seed
	PresetClustered: Default,

	// Isotropic centering, chrome-aware bounds, circular seed, no cluster pull
	PresetCompact: func() *Config {
		c := Default()
		c.Physics.SpringLength = 240
		c.Physics.CenterGravityX = 0.008
		c.Physics.CenterGravityY = 0.008
		c.Physics.GroupGravity = 0
		c.Layout.SeedShape = SeedCircle
		c.Layout.SeedSpreadX = 0.24
		c.Layout.SeedJitter = 30
		c.Drift.Enabled = false
		return c
	},

	// Full-viewport layout with lighter repulsion and a fixed spring length
	PresetClassic: func() *Config {
		c := Default()
		c.Physics.AlphaDecay = 0.99
		c.Physics.RepulsionMargin = 80
		c.Physics.RepulsionStrength = 1.5
		c.Physics.SpringLength = 180
		c.Physics.SpringLengthSmall = 180
		c.Physics.CenterGravityX = 0.008
		c.Physics.CenterGravityY = 0.008
		c.Physics.GroupGravity = 0
		c.Physics.BoundaryMargin = 10
		c.Layout.TopInset = 0
		c.Layout.BottomInset = 0
		c.Layout.FocalBottomOffset = 0
		c.Layout.SeedShape = SeedCircle
		c.Layout.SeedSpreadX = 0.3
		c.Layout.SeedJitter = 60
		c.Drift.Enabled = false
		return c
	},
}

// Preset returns a fresh copy of the named preset
func Preset(name string) (*Config, error) {
	fn, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, PresetNames())
	}
	return fn(), nil
}

// PresetNames returns registered preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/dotfield/internal/field"
)

var defaultPhysics = PhysicsConfig{
	ProximityThreshold: field.DefaultProximityThreshold,
	DotRadius:          field.DefaultDotRadius,
	BaseSpeed:          field.DefaultBaseSpeed,
}

var Presets = map[string]*Config{
	"default": {
		Rows: 5, Columns: 5, Width: 1000, Height: 1000, Background: "#111111", FPS: 60,
		Physics: defaultPhysics,
	},
	"dense": {
		Rows: 10, Columns: 10, Width: 1000, Height: 1000, Background: "#111111", FPS: 60,
		Physics: PhysicsConfig{ProximityThreshold: 150, DotRadius: 4, BaseSpeed: 1.5},
	},
	"sparse": {
		Rows: 3, Columns: 3, Width: 1000, Height: 1000, Background: "#111111", FPS: 60,
		Physics: defaultPhysics,
	},
	"wide": {
		Rows: 4, Columns: 9, Width: 1600, Height: 900, Background: "#0a0a0a", FPS: 60,
		Physics: defaultPhysics,
	},
	"transparent": {
		Rows: 5, Columns: 5, Width: 1000, Height: 1000, Background: "transparent", FPS: 60,
		Physics: defaultPhysics,
	},
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) (*Config, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := *p
	return &cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

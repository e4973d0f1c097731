package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dotfield/internal/canvas"
	"github.com/san-kum/dotfield/internal/field"
)

const (
	DefaultRows       = 5
	DefaultColumns    = 5
	DefaultWidth      = 1000.0
	DefaultHeight     = 1000.0
	DefaultBackground = "#111111"
	DefaultFPS        = 60
)

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
	ErrUnknownPreset = errors.New("config: unknown preset")
)

type Config struct {
	Rows       int           `yaml:"rows"`
	Columns    int           `yaml:"columns"`
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	Background string        `yaml:"background"`
	Seed       int64         `yaml:"seed"`
	FPS        int           `yaml:"fps"`
	Physics    PhysicsConfig `yaml:"physics"`
}

type PhysicsConfig struct {
	ProximityThreshold float64 `yaml:"proximity_threshold"`
	DotRadius          float64 `yaml:"dot_radius"`
	BaseSpeed          float64 `yaml:"base_speed"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:       DefaultRows,
		Columns:    DefaultColumns,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: DefaultBackground,
		FPS:        DefaultFPS,
		Physics: PhysicsConfig{
			ProximityThreshold: field.DefaultProximityThreshold,
			DotRadius:          field.DefaultDotRadius,
			BaseSpeed:          field.DefaultBaseSpeed,
		},
	}
}

// Load reads a YAML file over the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a YAML file over cfg, so a preset can serve as the base.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Columns < 1:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Rows, c.Columns)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case !validBackground(c.Background):
		return fmt.Errorf("%w: background %q is not a hex color, a known color name or %q", ErrInvalidConfig, c.Background, canvas.Transparent)
	case c.FPS < 1:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	case c.Physics.ProximityThreshold < 0:
		return fmt.Errorf("%w: proximity_threshold %g", ErrInvalidConfig, c.Physics.ProximityThreshold)
	case c.Physics.DotRadius <= 0:
		return fmt.Errorf("%w: dot_radius %g", ErrInvalidConfig, c.Physics.DotRadius)
	case c.Physics.BaseSpeed < 0:
		return fmt.Errorf("%w: base_speed %g", ErrInvalidConfig, c.Physics.BaseSpeed)
	}
	return nil
}

// validBackground accepts exactly the colors every output can paint.
func validBackground(bg string) bool {
	_, ok := canvas.Color(bg).RGBA()
	return ok
}

func (c *Config) FieldParams() field.Params {
	return field.Params{
		ProximityThreshold: c.Physics.ProximityThreshold,
		DotRadius:          c.Physics.DotRadius,
		BaseSpeed:          c.Physics.BaseSpeed,
	}
}

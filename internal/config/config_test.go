package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Rows != 5 || cfg.Columns != 5 {
		t.Errorf("expected 5x5 grid, got %dx%d", cfg.Rows, cfg.Columns)
	}
	if cfg.Width != 1000 || cfg.Height != 1000 {
		t.Errorf("expected 1000x1000 canvas, got %gx%g", cfg.Width, cfg.Height)
	}
	if cfg.Physics.ProximityThreshold != 300 {
		t.Errorf("expected threshold 300, got %g", cfg.Physics.ProximityThreshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_PartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dotfield.yaml")
	data := []byte("rows: 8\nbackground: transparent\nphysics:\n  base_speed: 3.5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Rows != 8 {
		t.Errorf("expected rows 8, got %d", cfg.Rows)
	}
	if cfg.Columns != DefaultColumns {
		t.Errorf("expected default columns, got %d", cfg.Columns)
	}
	if cfg.Background != "transparent" {
		t.Errorf("expected transparent background, got %q", cfg.Background)
	}
	if cfg.Physics.BaseSpeed != 3.5 {
		t.Errorf("expected base speed 3.5, got %g", cfg.Physics.BaseSpeed)
	}
	if cfg.Physics.DotRadius != 5 {
		t.Errorf("expected default radius, got %g", cfg.Physics.DotRadius)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rows: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.Columns = 7

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"zero columns", func(c *Config) { c.Columns = 0 }},
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"empty background", func(c *Config) { c.Background = "" }},
		{"css function background", func(c *Config) { c.Background = "rgb(17,17,17)" }},
		{"markup in background", func(c *Config) { c.Background = `red"/><script>alert(1)</script>` }},
		{"negative threshold", func(c *Config) { c.Physics.ProximityThreshold = -1 }},
		{"zero radius", func(c *Config) { c.Physics.DotRadius = 0 }},
		{"negative speed", func(c *Config) { c.Physics.BaseSpeed = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidate_Backgrounds(t *testing.T) {
	for _, bg := range []string{"#111111", "#fff", "navy", "White", "transparent"} {
		cfg := DefaultConfig()
		cfg.Background = bg
		if err := cfg.Validate(); err != nil {
			t.Errorf("background %q should validate: %v", bg, err)
		}
	}
}

func TestFieldParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Physics.ProximityThreshold = 123
	p := cfg.FieldParams()
	if p.ProximityThreshold != 123 || p.DotRadius != 5 || p.BaseSpeed != 2 {
		t.Errorf("unexpected params %+v", p)
	}
}

func TestGetPreset(t *testing.T) {
	cfg, err := GetPreset("dense")
	if err != nil {
		t.Fatalf("expected preset, got %v", err)
	}
	if cfg.Rows != 10 {
		t.Errorf("expected 10 rows, got %d", cfg.Rows)
	}

	cfg.Rows = 1
	again, _ := GetPreset("dense")
	if again.Rows != 10 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	_, err := GetPreset("nonexistent")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		cfg, err := GetPreset(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestLoadInto_OverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dotfield.yaml")
	if err := os.WriteFile(path, []byte("fps: 24\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := GetPreset("dense")
	if err != nil {
		t.Fatal(err)
	}
	if err := LoadInto(path, cfg); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.FPS != 24 {
		t.Errorf("expected fps 24 from file, got %d", cfg.FPS)
	}
	if cfg.Rows != 10 || cfg.Physics.ProximityThreshold != 150 {
		t.Errorf("expected dense preset values to survive, got rows %d threshold %g",
			cfg.Rows, cfg.Physics.ProximityThreshold)
	}
	if Presets["dense"].FPS == 24 {
		t.Error("preset table must not be modified")
	}
}

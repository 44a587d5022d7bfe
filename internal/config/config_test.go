package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/brownsim/internal/dynamo"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Particles != 10 {
		t.Errorf("expected 10 particles, got %d", cfg.Particles)
	}
	if cfg.TickMs != 10 {
		t.Errorf("expected 10ms tick, got %f", cfg.TickMs)
	}
	if cfg.Style.Stroke != "#00ff00" {
		t.Errorf("expected green stroke, got %s", cfg.Style.Stroke)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSimConfig(t *testing.T) {
	sc, err := DefaultConfig().SimConfig()
	if err != nil {
		t.Fatalf("SimConfig failed: %v", err)
	}

	if sc.Origin != (dynamo.Vec2{X: 400, Y: 300}) {
		t.Errorf("origin = %v, want canvas centre", sc.Origin)
	}
	if sc.ForceMin != -5 || sc.ForceMax != 5 {
		t.Errorf("force range = [%v, %v]", sc.ForceMin, sc.ForceMax)
	}
	if sc.Integrator.Name() != "impulse" {
		t.Errorf("integrator = %s, want impulse", sc.Integrator.Name())
	}
	if sc.Interval().Milliseconds() != 10 {
		t.Errorf("interval = %v, want 10ms", sc.Interval())
	}
	if sc.Style != dynamo.DefaultStyle {
		t.Errorf("style = %v, want default", sc.Style)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }, dynamo.ErrInvalidConfig},
		{"negative ticks", func(c *Config) { c.Ticks = -1 }, dynamo.ErrInvalidConfig},
		{"zero tick", func(c *Config) { c.TickMs = 0 }, dynamo.ErrInvalidConfig},
		{"zero mass", func(c *Config) { c.Mass = 0 }, dynamo.ErrInvalidConfig},
		{"inverted force", func(c *Config) { c.Force.Min = 10 }, dynamo.ErrInvalidConfig},
		{"unknown integrator", func(c *Config) { c.Integrator = "rk4" }, dynamo.ErrUnknownIntegrator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")

	cfg := DefaultConfig()
	cfg.Particles = 25
	cfg.Mass = 2.5
	cfg.Seed = 99
	cfg.Integrator = "euler"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Particles != 25 || loaded.Mass != 2.5 || loaded.Seed != 99 || loaded.Integrator != "euler" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("particles: 3\nforce:\n  min: -1\n  max: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Particles != 3 || cfg.Force.Min != -1 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.TickMs != DefaultTickMs || cfg.Style.Radius != DefaultRadius {
		t.Errorf("defaults lost: tick %v radius %v", cfg.TickMs, cfg.Style.Radius)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tick_ms: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("swarm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Particles != 60 {
		t.Errorf("expected 60 particles, got %d", cfg.Particles)
	}

	cfg.Particles = 1
	if Presets["swarm"].Particles != 60 {
		t.Error("GetPreset should return a copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("ListPresets returned %d names, want %d", len(names), len(Presets))
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

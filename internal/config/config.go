package config

import (
	"fmt"
	"os"

	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/integrators"
	"github.com/san-kum/brownsim/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultParticles = 10
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultTickMs    = 10.0
	DefaultMass      = 1.0
	DefaultForceMin  = -5.0
	DefaultForceMax  = 5.0
	DefaultRadius    = 10.0
	DefaultStroke    = "#00ff00"
	DefaultLineWidth = 1.0
	DefaultTicks     = 1000
)

type Config struct {
	Particles  int          `yaml:"particles"`
	Canvas     CanvasConfig `yaml:"canvas"`
	TickMs     float64      `yaml:"tick_ms"`
	Mass       float64      `yaml:"mass"`
	Force      ForceConfig  `yaml:"force"`
	Style      StyleConfig  `yaml:"style"`
	Integrator string       `yaml:"integrator"`
	Seed       int64        `yaml:"seed"`
	Ticks      int          `yaml:"ticks"`
}

type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ForceConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type StyleConfig struct {
	Radius    float64 `yaml:"radius"`
	Stroke    string  `yaml:"stroke"`
	LineWidth float64 `yaml:"line_width"`
}

func DefaultConfig() *Config {
	return &Config{
		Particles: DefaultParticles,
		Canvas: CanvasConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		TickMs: DefaultTickMs,
		Mass:   DefaultMass,
		Force: ForceConfig{
			Min: DefaultForceMin,
			Max: DefaultForceMax,
		},
		Style: StyleConfig{
			Radius:    DefaultRadius,
			Stroke:    DefaultStroke,
			LineWidth: DefaultLineWidth,
		},
		Integrator: integrators.Default,
		Ticks:      DefaultTicks,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields the simulation does not check itself.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return &dynamo.ConfigError{Field: "canvas", Reason: fmt.Sprintf("must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)}
	}
	if c.Ticks < 0 {
		return &dynamo.ConfigError{Field: "ticks", Reason: fmt.Sprintf("must not be negative, got %d", c.Ticks)}
	}
	if _, err := integrators.Lookup(c.Integrator); err != nil {
		return err
	}
	_, err := c.SimConfig()
	return err
}

// Origin is the centre of the canvas, where every particle spawns.
func (c *Config) Origin() dynamo.Vec2 {
	return dynamo.Vec2{X: c.Canvas.Width / 2, Y: c.Canvas.Height / 2}
}

// SimConfig resolves the file configuration into the simulation's own.
func (c *Config) SimConfig() (sim.Config, error) {
	integ, err := integrators.Lookup(c.Integrator)
	if err != nil {
		return sim.Config{}, err
	}
	sc := sim.Config{
		Particles:  c.Particles,
		Origin:     c.Origin(),
		IntervalMs: c.TickMs,
		Mass:       c.Mass,
		ForceMin:   c.Force.Min,
		ForceMax:   c.Force.Max,
		Radius:     c.Style.Radius,
		Style: dynamo.Style{
			Stroke:    c.Style.Stroke,
			LineWidth: c.Style.LineWidth,
		},
		Integrator: integ,
	}
	if err := sc.Validate(); err != nil {
		return sim.Config{}, err
	}
	return sc, nil
}

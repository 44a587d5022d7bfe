package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"calm": withChanges(func(c *Config) {
		c.Force = ForceConfig{Min: -1, Max: 1}
	}),
	"swarm": withChanges(func(c *Config) {
		c.Particles = 60
		c.Style.Radius = 4
	}),
	"heavy": withChanges(func(c *Config) {
		c.Mass = 5
		c.Force = ForceConfig{Min: -10, Max: 10}
	}),
	"intended": withChanges(func(c *Config) {
		c.Integrator = "euler"
		c.Force = ForceConfig{Min: -500, Max: 500}
	}),
	"slow": withChanges(func(c *Config) {
		c.TickMs = 50
	}),
}

func withChanges(fn func(*Config)) *Config {
	cfg := DefaultConfig()
	fn(cfg)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package automation

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/san-kum/brownsim/internal/config"
	"github.com/san-kum/brownsim/internal/metrics"
	"github.com/san-kum/brownsim/internal/sim"
	"github.com/san-kum/brownsim/internal/storage"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of headless runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run. Unset fields keep the preset's value.
type ScenarioStep struct {
	Name       string   `yaml:"name"`
	Preset     string   `yaml:"preset"`
	Particles  *int     `yaml:"particles"`
	TickMs     *float64 `yaml:"tick_ms"`
	Mass       *float64 `yaml:"mass"`
	ForceMin   *float64 `yaml:"force_min"`
	ForceMax   *float64 `yaml:"force_max"`
	Integrator string   `yaml:"integrator"`
	Ticks      int      `yaml:"ticks"`
	Seed       int64    `yaml:"seed"`
	Save       bool     `yaml:"save"`
}

// StepResult is the outcome of one step.
type StepResult struct {
	Step     string
	Seed     int64
	Snapshot sim.Snapshot
	Metrics  map[string]float64
	RunID    string
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%s: scenario has no steps", path)
	}

	return &scenario, nil
}

// Config resolves the step into a validated file configuration.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}

	if s.Particles != nil {
		cfg.Particles = *s.Particles
	}
	if s.TickMs != nil {
		cfg.TickMs = *s.TickMs
	}
	if s.Mass != nil {
		cfg.Mass = *s.Mass
	}
	if s.ForceMin != nil {
		cfg.Force.Min = *s.ForceMin
	}
	if s.ForceMax != nil {
		cfg.Force.Max = *s.ForceMax
	}
	if s.Integrator != "" {
		cfg.Integrator = s.Integrator
	}
	if s.Ticks > 0 {
		cfg.Ticks = s.Ticks
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunScenario executes all steps in order. Steps with Save set are written
// to st, which may be nil when no step saves. Progress goes to out. A step
// without a seed gets one from the clock, reported in its StepResult.
func RunScenario(ctx context.Context, scenario *Scenario, st *storage.Store, out io.Writer) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step%d", i+1)
		}
		fmt.Fprintf(out, "Running step %d/%d: %s\n", i+1, len(scenario.Steps), name)

		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano() + int64(i)
		}
		sc, err := cfg.SimConfig()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		set := metrics.Default(cfg.Origin(), cfg.Canvas.Width, cfg.Canvas.Height)
		rec := storage.NewRecorder(1)
		observers := []sim.Observer{set}
		if step.Save {
			observers = append(observers, rec)
		}

		snap, err := sim.RunHeadless(ctx, sc, cfg.Seed, cfg.Ticks, nil, observers...)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		res := StepResult{Step: name, Seed: cfg.Seed, Snapshot: snap, Metrics: set.Values()}
		if step.Save {
			if st == nil {
				return results, fmt.Errorf("step %d: no store to save to", i+1)
			}
			res.RunID, err = st.Save(storage.RunMetadata{
				Seed:       cfg.Seed,
				Particles:  cfg.Particles,
				TickMs:     cfg.TickMs,
				Ticks:      cfg.Ticks,
				Mass:       cfg.Mass,
				Width:      cfg.Canvas.Width,
				Height:     cfg.Canvas.Height,
				Integrator: cfg.Integrator,
				Preset:     step.Preset,
				Metrics:    res.Metrics,
			}, rec.Recording())
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}

		results = append(results, res)
	}

	return results, nil
}

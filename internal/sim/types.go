package sim

import (
	"fmt"
	"time"

	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/physics"
)

type Status int

const (
	Uninitialized Status = iota
	Running
	Stopped
)

func (s Status) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

type Config struct {
	Particles  int
	Origin     dynamo.Vec2
	IntervalMs float64
	Mass       float64
	ForceMin   float64
	ForceMax   float64
	Radius     float64
	Style      dynamo.Style
	// Integrator is shared by every particle; nil selects the impulse rule.
	Integrator dynamo.Integrator
}

func DefaultConfig() Config {
	return Config{
		Particles:  10,
		Origin:     dynamo.Vec2{X: 400, Y: 300},
		IntervalMs: 10,
		Mass:       1,
		ForceMin:   -5,
		ForceMax:   5,
		Radius:     10,
		Style:      dynamo.DefaultStyle,
	}
}

func (c Config) Validate() error {
	if c.Particles < 0 {
		return &dynamo.ConfigError{Field: "particles", Reason: fmt.Sprintf("must not be negative, got %d", c.Particles)}
	}
	if c.IntervalMs <= 0 {
		return &dynamo.ConfigError{Field: "interval", Reason: fmt.Sprintf("must be positive, got %f", c.IntervalMs)}
	}
	if c.Mass <= 0 {
		return &dynamo.ConfigError{Field: "mass", Reason: fmt.Sprintf("must be positive, got %f", c.Mass)}
	}
	if c.ForceMin > c.ForceMax {
		return &dynamo.ConfigError{Field: "force", Reason: fmt.Sprintf("min %f exceeds max %f", c.ForceMin, c.ForceMax)}
	}
	if c.Radius < 0 {
		return &dynamo.ConfigError{Field: "radius", Reason: fmt.Sprintf("must not be negative, got %f", c.Radius)}
	}
	return nil
}

// Interval is the nominal tick period as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs * float64(time.Millisecond))
}

// Observer is notified after every tick. The particles slice is a copy.
type Observer interface {
	OnTick(frame uint64, particles []physics.Particle)
}

type Snapshot struct {
	Status    Status
	Frame     uint64
	Redraws   uint64
	Particles []physics.Particle
}

// Discard is a surface that counts draw calls and renders nothing.
type Discard struct {
	Clears  int
	Circles int
}

func (d *Discard) Clear()                                        { d.Clears++ }
func (d *Discard) DrawCircle(dynamo.Vec2, float64, dynamo.Style) { d.Circles++ }

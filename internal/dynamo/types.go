package dynamo

import (
	"fmt"
	"math"
	"time"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) IsValid() bool {
	for _, c := range [2]float64{v.X, v.Y} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

// Kinematics is the integrated state of a point mass.
type Kinematics struct {
	Pos Vec2
	Vel Vec2
}

// Integrator advances a point mass by one tick. dtMs is the elapsed-time
// hint in milliseconds; force is held constant for the whole tick.
type Integrator interface {
	Name() string
	Step(k Kinematics, force Vec2, mass, dtMs float64) Kinematics
}

type Style struct {
	Stroke    string
	LineWidth float64
}

// DefaultStyle is the green hairline used for every particle.
var DefaultStyle = Style{Stroke: "#00ff00", LineWidth: 1}

type Surface interface {
	Clear()
	DrawCircle(center Vec2, radius float64, style Style)
}

// Flusher is implemented by surfaces that buffer drawing until a frame is complete.
type Flusher interface {
	Flush()
}

type RandomSource interface {
	Float64() float64
}

// Handle identifies one scheduled recurring callback. The zero Handle is never issued.
type Handle uint64

type Timer interface {
	Schedule(interval time.Duration, fn func()) Handle
	Cancel(h Handle)
}

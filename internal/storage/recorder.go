package storage

import "github.com/san-kum/brownsim/internal/physics"

// Recording is the per-tick trajectory of every particle.
type Recording struct {
	Frames []uint64
	// States[i] holds x, y, vx, vy for each particle, in insertion order.
	States [][]float64
}

func (r *Recording) Len() int { return len(r.Frames) }

// Particles reports how many particles each row describes.
func (r *Recording) Particles() int {
	if len(r.States) == 0 {
		return 0
	}
	return len(r.States[0]) / 4
}

// Series extracts column col (0=x, 1=y, 2=vx, 3=vy) of particle idx.
func (r *Recording) Series(idx, col int) []float64 {
	out := make([]float64, 0, len(r.States))
	off := idx*4 + col
	for _, row := range r.States {
		if off < len(row) {
			out = append(out, row[off])
		}
	}
	return out
}

// Recorder is a sim observer that appends every tick to a Recording.
// Every is the sampling stride; values below 1 record every tick.
type Recorder struct {
	Every int
	rec   Recording
}

func NewRecorder(every int) *Recorder {
	return &Recorder{Every: every}
}

func (r *Recorder) OnTick(frame uint64, particles []physics.Particle) {
	if r.Every > 1 && frame%uint64(r.Every) != 0 {
		return
	}
	row := make([]float64, 0, len(particles)*4)
	for i := range particles {
		pos, vel := particles[i].Position(), particles[i].Velocity()
		row = append(row, pos.X, pos.Y, vel.X, vel.Y)
	}
	r.rec.Frames = append(r.rec.Frames, frame)
	r.rec.States = append(r.rec.States, row)
}

func (r *Recorder) Recording() *Recording {
	return &r.rec
}

package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/brownsim/internal/storage"
)

func twoParticles() *storage.Recording {
	return &storage.Recording{
		Frames: []uint64{1, 2, 3},
		States: [][]float64{
			{0, 0, 0, 0, 10, 10, 0, 0},
			{1, 0, 1, 0, 10, 12, 0, 2},
			{3, 4, 3, 4, 10, 10, 0, 0},
		},
	}
}

func TestMeanSquaredDisplacement(t *testing.T) {
	msd := MeanSquaredDisplacement(twoParticles())
	want := []float64{0, 2.5, 12.5}
	if len(msd) != len(want) {
		t.Fatalf("got %d samples, want %d", len(msd), len(want))
	}
	for i := range want {
		if math.Abs(msd[i]-want[i]) > 1e-12 {
			t.Errorf("msd[%d] = %f, want %f", i, msd[i], want[i])
		}
	}

	if MeanSquaredDisplacement(&storage.Recording{}) != nil {
		t.Error("empty recording should give nil")
	}
}

func TestScalingExponent(t *testing.T) {
	tests := []struct {
		name  string
		power float64
	}{
		{"diffusive", 1},
		{"ballistic", 2},
		{"velocity walk", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msd := make([]float64, 100)
			for i := range msd {
				msd[i] = 0.5 * math.Pow(float64(i), tt.power)
			}
			if got := ScalingExponent(msd); math.Abs(got-tt.power) > 1e-9 {
				t.Errorf("exponent = %f, want %f", got, tt.power)
			}
		})
	}

	if !math.IsNaN(ScalingExponent([]float64{0, 1})) {
		t.Error("a single usable sample should give NaN")
	}
}

func TestMeanSpeed(t *testing.T) {
	speed := MeanSpeed(twoParticles())
	want := []float64{0, 1.5, 2.5}
	for i := range want {
		if math.Abs(speed[i]-want[i]) > 1e-12 {
			t.Errorf("speed[%d] = %f, want %f", i, speed[i], want[i])
		}
	}
}

func TestPowerSpectrumPeak(t *testing.T) {
	data := make([]float64, 64)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(i) / 8)
	}

	ps := PowerSpectrum(data)
	if len(ps) != 32 {
		t.Fatalf("expected 32 bins, got %d", len(ps))
	}
	peak := 0
	for i := range ps {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak != 8 {
		t.Errorf("peak at bin %d, want 8", peak)
	}

	freqs := Frequencies(len(ps), 10)
	if math.Abs(freqs[peak]-12.5) > 1e-9 {
		t.Errorf("peak frequency = %f Hz, want 12.5", freqs[peak])
	}
}

func TestFFTPadsToPowerOfTwo(t *testing.T) {
	if got := len(FFT([]float64{1, 2, 3, 4, 5})); got != 8 {
		t.Errorf("len = %d, want 8", got)
	}
	spec := FFT([]float64{1, 1, 1, 1})
	if math.Abs(real(spec[0])-4) > 1e-12 || math.Abs(real(spec[1])) > 1e-12 {
		t.Errorf("constant input should only have a DC component: %v", spec)
	}
}

func TestPhasePortrait(t *testing.T) {
	rec := twoParticles()

	p := PhasePortrait(rec, 0, 0, 2)
	if p == nil || len(p.Points) != 3 {
		t.Fatalf("unexpected portrait %+v", p)
	}
	if p.Points[2].X != 3 || p.Points[2].Y != 3 {
		t.Errorf("point 2 = %v, want (3, 3)", p.Points[2])
	}

	if PhasePortrait(rec, 2, 0, 1) != nil {
		t.Error("out of range particle should give nil")
	}
	if PhasePortrait(rec, 0, 0, 4) != nil {
		t.Error("out of range column should give nil")
	}

	out := PhasePortraitToASCII(p, 20, 10)
	if strings.Count(out, "\n") != 10 || !strings.Contains(out, "•") {
		t.Errorf("unexpected ascii portrait:\n%s", out)
	}
	if PhasePortraitToASCII(nil, 20, 10) != "" {
		t.Error("nil portrait should render empty")
	}
}

package analysis

import (
	"math"

	"github.com/san-kum/brownsim/internal/storage"
)

// MeanSquaredDisplacement returns, for every recorded sample, the mean over
// all particles of the squared distance from that particle's first recorded
// position.
func MeanSquaredDisplacement(rec *storage.Recording) []float64 {
	if rec == nil || rec.Len() == 0 || rec.Particles() == 0 {
		return nil
	}

	n := rec.Particles()
	first := rec.States[0]
	msd := make([]float64, rec.Len())
	for t, row := range rec.States {
		sum := 0.0
		for i := 0; i < n; i++ {
			dx := row[i*4] - first[i*4]
			dy := row[i*4+1] - first[i*4+1]
			sum += dx*dx + dy*dy
		}
		msd[t] = sum / float64(n)
	}
	return msd
}

// ScalingExponent fits msd ~ t^alpha by least squares in log-log space,
// skipping the first sample and any non-positive values. Ordinary diffusion
// gives alpha near 1; a random walk in velocity gives alpha near 3.
func ScalingExponent(msd []float64) float64 {
	var sx, sy, sxx, sxy float64
	n := 0
	for t := 1; t < len(msd); t++ {
		if msd[t] <= 0 {
			continue
		}
		x := math.Log(float64(t))
		y := math.Log(msd[t])
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
		n++
	}
	if n < 2 {
		return math.NaN()
	}
	den := float64(n)*sxx - sx*sx
	if den == 0 {
		return math.NaN()
	}
	return (float64(n)*sxy - sx*sy) / den
}

// MeanSpeed returns the mean particle speed per recorded sample.
func MeanSpeed(rec *storage.Recording) []float64 {
	if rec == nil || rec.Particles() == 0 {
		return nil
	}
	n := rec.Particles()
	out := make([]float64, rec.Len())
	for t, row := range rec.States {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += math.Hypot(row[i*4+2], row[i*4+3])
		}
		out[t] = sum / float64(n)
	}
	return out
}

package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT zero-pads data to the next power of two and transforms it.
func FFT(data []float64) []complex128 {
	buf := make([]float64, nextPow2(len(data)))
	copy(buf, data)
	return fft.FFTReal(buf)
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PowerSpectrum returns the magnitudes of the non-negative frequency bins.
func PowerSpectrum(data []float64) []float64 {
	spec := FFT(data)
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// Frequencies returns the bin centres in Hz for a spectrum of n bins
// computed from samples taken every dtMs milliseconds.
func Frequencies(n int, dtMs float64) []float64 {
	freqs := make([]float64, n)
	if n == 0 || dtMs <= 0 {
		return freqs
	}
	fs := 1000 / dtMs
	for i := range freqs {
		freqs[i] = float64(i) * fs / float64(2*n)
	}
	return freqs
}

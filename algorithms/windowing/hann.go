// Package windowing shapes synthesized probe signals before spectral
// analysis. The verification harness tapers its sine probes with a Hann
// window so FFT leakage stays well below the magnitude peak it asserts on.
package windowing

import (
	"fmt"
	"math"
)

// Hann is a raised-cosine window. A symmetric window zeroes both end
// samples and suits a single analysis frame; a periodic one suits
// back-to-back frames.
type Hann struct {
	size         int
	symmetric    bool
	coefficients []float64
}

// NewHann creates a Hann window of the given size.
func NewHann(size int, symmetric bool) *Hann {
	h := &Hann{
		size:      size,
		symmetric: symmetric,
	}
	h.generate()
	return h
}

func (h *Hann) generate() {
	h.coefficients = make([]float64, h.size)

	denominator := float64(h.size)
	if h.symmetric {
		denominator = float64(h.size - 1)
	}

	for i := range h.size {
		h.coefficients[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/denominator))
	}
}

// Apply returns a windowed copy of the signal, or nil if the signal length
// does not match the window size.
func (h *Hann) Apply(signal []float64) []float64 {
	if len(signal) != h.size {
		return nil
	}

	windowed := make([]float64, h.size)
	for i, v := range signal {
		windowed[i] = v * h.coefficients[i]
	}
	return windowed
}

// ApplyInPlace windows the signal where it sits.
func (h *Hann) ApplyInPlace(signal []float64) error {
	if len(signal) != h.size {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), h.size)
	}

	for i := range signal {
		signal[i] *= h.coefficients[i]
	}
	return nil
}

// Coefficients returns a copy of the window coefficients.
func (h *Hann) Coefficients() []float64 {
	coeffs := make([]float64, len(h.coefficients))
	copy(coeffs, h.coefficients)
	return coeffs
}

// Size returns the window length in samples.
func (h *Hann) Size() int {
	return h.size
}

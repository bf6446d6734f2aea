package verification

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/RyanBlaney/vox-prisma/algorithms/windowing"
)

// One-second analysis frame: a power-of-two length at a matching rate, so
// each FFT bin is exactly 1 Hz wide and the whole analyzable range sits far
// below Nyquist.
const (
	spectralSampleRate = 8192.0
	spectralFrameSize  = 8192
)

// SpectralResult is the outcome of the synthesis round trip.
type SpectralResult struct {
	FrequencyHz float64 `json:"frequency_hz"`
	PeakBin     int     `json:"peak_bin"`
	PeakHz      float64 `json:"peak_hz"`
	BinWidthHz  float64 `json:"bin_width_hz"`
	ErrorHz     float64 `json:"error_hz"`
	Pass        bool    `json:"pass"`
}

// SpectralCheck closes the loop from the signal side: it synthesizes a sine
// at f0, applies a Hann window, and confirms the FFT magnitude peak lands
// within one bin of f0.
func SpectralCheck(f0 float64) *SpectralResult {
	samples := make([]float64, spectralFrameSize)
	for i := range samples {
		samples[i] = math.Sin(2.0 * math.Pi * f0 * float64(i) / spectralSampleRate)
	}
	probe := windowing.NewHann(spectralFrameSize, true).Apply(samples)

	spectrum := fft.FFTReal(probe)

	peakBin := 1
	peakMag := 0.0
	for k := 1; k < spectralFrameSize/2; k++ {
		if mag := cmplx.Abs(spectrum[k]); mag > peakMag {
			peakMag = mag
			peakBin = k
		}
	}

	binWidth := spectralSampleRate / float64(spectralFrameSize)
	peakHz := float64(peakBin) * binWidth
	errHz := math.Abs(peakHz - f0)

	return &SpectralResult{
		FrequencyHz: f0,
		PeakBin:     peakBin,
		PeakHz:      peakHz,
		BinWidthHz:  binWidth,
		ErrorHz:     errHz,
		Pass:        errHz <= binWidth,
	}
}

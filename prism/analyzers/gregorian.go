package analyzers

import (
	"github.com/RyanBlaney/vox-prisma/algorithms/bands"
	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
	"github.com/RyanBlaney/vox-prisma/algorithms/scale"
)

// GregorianResult frames the fundamental as a chant final: its church mode
// and the parallel organum voices sung against it.
type GregorianResult struct {
	Final   pitch.Note `json:"final"`
	Mode    bands.Mode `json:"mode"`
	Organum []Tone     `json:"organum"`
}

// GregorianAnalyzer views a fundamental through early medieval practice.
type GregorianAnalyzer struct {
	tun pitch.Tuning
}

// NewGregorianAnalyzer creates a Gregorian analyzer under the given tuning.
func NewGregorianAnalyzer(tun pitch.Tuning) *GregorianAnalyzer {
	return &GregorianAnalyzer{tun: tun}
}

// Analyze assigns the mode of the final and lays out the organum voices at
// the consonances medieval theory admitted: unison, fourth, fifth, octave.
// The voice frequencies reuse degrees 1, 4, 5, and 8 of the shared scale.
func (ga *GregorianAnalyzer) Analyze(f0 float64, degs []scale.Degree) *GregorianResult {
	final := pitch.FreqToNote(f0, ga.tun)

	voices := []Tone{
		{Name: "Vox Principalis", Ratio: degs[0].Ratio, Hz: degs[0].Hz},
		{Name: "Vox Organalis (Fourth)", Ratio: degs[3].Ratio, Hz: degs[3].Hz},
		{Name: "Vox Organalis (Fifth)", Ratio: degs[4].Ratio, Hz: degs[4].Hz},
		{Name: "Diapason", Ratio: degs[7].Ratio, Hz: degs[7].Hz},
	}

	return &GregorianResult{
		Final:   final,
		Mode:    bands.ModeForClass(final.Class),
		Organum: voices,
	}
}

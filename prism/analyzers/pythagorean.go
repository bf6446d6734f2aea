package analyzers

import (
	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
	"github.com/RyanBlaney/vox-prisma/algorithms/ratios"
)

// DitoneComparison sets the Pythagorean major third against the just third
// it misses by a syntonic comma.
type DitoneComparison struct {
	PythagoreanCents float64 `json:"pythagorean_cents"` // 81:64
	JustCents        float64 `json:"just_cents"`        // 5:4
	GapCents         float64 `json:"gap_cents"`         // the syntonic comma
}

// PythagoreanResult describes the fundamental through 3-limit intonation:
// its seat on the circle of fifths, the comma that keeps the circle from
// closing, and the pure intervals and scale built from stacked fifths.
type PythagoreanResult struct {
	// Circle of fifths
	Note           pitch.Note `json:"note"`
	FifthsPosition int        `json:"fifths_position"` // fifths above C, 0-11
	Accidentals    int        `json:"accidentals"`
	AccidentalType string     `json:"accidental_type"` // sharp, flat, or none

	// The comma
	Comma ratios.Ratio `json:"comma"` // 531441:524288

	// Pure intervals on the fundamental
	PureFourthHz float64 `json:"pure_fourth_hz"` // f0 * 4/3
	PureFifthHz  float64 `json:"pure_fifth_hz"`  // f0 * 3/2
	OctaveHz     float64 `json:"octave_hz"`      // f0 * 2

	// 3-limit scale and the ditone problem
	Scale  []Tone           `json:"scale"`
	Ditone DitoneComparison `json:"ditone"`
}

// PythagoreanAnalyzer views a fundamental through the tuning mathematics
// attributed to the Pythagorean school.
type PythagoreanAnalyzer struct {
	tun pitch.Tuning
}

// NewPythagoreanAnalyzer creates a Pythagorean analyzer under the given
// tuning.
func NewPythagoreanAnalyzer(tun pitch.Tuning) *PythagoreanAnalyzer {
	return &PythagoreanAnalyzer{tun: tun}
}

// fifthsPosition counts pure fifths from C to reach a pitch class. 7 is the
// multiplicative inverse of 7 modulo 12, so the map is its own inverse.
func fifthsPosition(class int) int {
	return (class * 7) % 12
}

// Analyze classifies f0 on the circle of fifths and builds its pure
// intervals and 3-limit scale.
func (pa *PythagoreanAnalyzer) Analyze(f0 float64) *PythagoreanResult {
	note := pitch.FreqToNote(f0, pa.tun)
	pos := fifthsPosition(note.Class)

	accidentals := pos
	accType := "sharp"
	switch {
	case pos == 0:
		accidentals = 0
		accType = "none"
	case pos > 6:
		accidentals = 12 - pos
		accType = "flat"
	}

	pyScale := ratios.PythagoreanScale()
	tones := make([]Tone, len(pyScale))
	for i, d := range pyScale {
		tones[i] = Tone{Name: d.Name, Ratio: d.Ratio, Hz: f0 * d.Ratio.Decimal}
	}

	ditone := ratios.New(81, 64)
	justThird := ratios.New(5, 4)

	return &PythagoreanResult{
		Note:           note,
		FifthsPosition: pos,
		Accidentals:    accidentals,
		AccidentalType: accType,
		Comma:          ratios.PythagoreanComma(),
		PureFourthHz:   f0 * 4.0 / 3.0,
		PureFifthHz:    f0 * 3.0 / 2.0,
		OctaveHz:       f0 * 2.0,
		Scale:          tones,
		Ditone: DitoneComparison{
			PythagoreanCents: ditone.Cents,
			JustCents:        justThird.Cents,
			GapCents:         ditone.Cents - justThird.Cents,
		},
	}
}

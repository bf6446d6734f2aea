package analyzers

import (
	"github.com/RyanBlaney/vox-prisma/algorithms/bands"
	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
	"github.com/RyanBlaney/vox-prisma/algorithms/ratios"
	"github.com/RyanBlaney/vox-prisma/algorithms/scale"
)

// VocalPlacement is a vocal classification plus the position of the
// fundamental inside its band, clamped to 0-100.
type VocalPlacement struct {
	bands.VocalRange
	Percent float64 `json:"percent"`
}

// TriadTone is one voice of a just triad.
type TriadTone struct {
	Role string     `json:"role"` // root, third, or fifth
	Hz   float64    `json:"hz"`
	Note pitch.Note `json:"note"`
}

// Triad is a just-intonation major triad on one of the primary scale
// degrees.
type Triad struct {
	Numeral   string       `json:"numeral"` // I, IV, or V
	RootRatio ratios.Ratio `json:"root_ratio"`
	Tones     []TriadTone  `json:"tones"`
}

// WesternResult places the fundamental in common-practice terms: key
// signature, vocal range, and the primary triads in just intonation.
type WesternResult struct {
	Key    bands.KeySignature `json:"key_signature"`
	Vocal  VocalPlacement     `json:"vocal"`
	Triads []Triad            `json:"triads"`
}

// WesternAnalyzer views a fundamental through common-practice Western
// theory.
type WesternAnalyzer struct {
	tun pitch.Tuning
}

// NewWesternAnalyzer creates a Western analyzer under the given tuning.
func NewWesternAnalyzer(tun pitch.Tuning) *WesternAnalyzer {
	return &WesternAnalyzer{tun: tun}
}

// triadOn builds a just major triad: the root times 1, 5/4, and 3/2.
func (wa *WesternAnalyzer) triadOn(numeral string, rootRatio ratios.Ratio, rootHz float64) Triad {
	voices := []struct {
		role string
		num  int64
		den  int64
	}{
		{"root", 1, 1},
		{"third", 5, 4},
		{"fifth", 3, 2},
	}
	tones := make([]TriadTone, len(voices))
	for i, v := range voices {
		hz := rootHz * float64(v.num) / float64(v.den)
		tones[i] = TriadTone{
			Role: v.role,
			Hz:   hz,
			Note: pitch.FreqToNote(hz, wa.tun),
		}
	}
	return Triad{Numeral: numeral, RootRatio: rootRatio, Tones: tones}
}

// Analyze derives the key signature from the nearest pitch class, places the
// fundamental in its vocal band, and spells the I, IV, and V just triads
// from the shared scale's degrees 1, 4, and 5.
func (wa *WesternAnalyzer) Analyze(f0 float64, degs []scale.Degree) *WesternResult {
	note := pitch.FreqToNote(f0, wa.tun)

	vocal := bands.VocalRangeFor(f0)
	placement := VocalPlacement{
		VocalRange: vocal,
		Percent:    bands.Percent(vocal.Band, f0),
	}

	triads := []Triad{
		wa.triadOn("I", degs[0].Ratio, degs[0].Hz),
		wa.triadOn("IV", degs[3].Ratio, degs[3].Hz),
		wa.triadOn("V", degs[4].Ratio, degs[4].Hz),
	}

	return &WesternResult{
		Key:    bands.KeySignatureForClass(note.Class),
		Vocal:  placement,
		Triads: triads,
	}
}

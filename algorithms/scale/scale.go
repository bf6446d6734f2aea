// Package scale derives the eight-degree just-intonation scale rooted on an
// arbitrary fundamental, annotating each degree with its nearest
// equal-tempered pitch under a given tuning.
package scale

import (
	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
	"github.com/RyanBlaney/vox-prisma/algorithms/ratios"
)

// Degree is one step of the generated scale: the exact just frequency plus
// its relation to the nearest tempered standard.
type Degree struct {
	Degree    int          `json:"degree"`
	Svara     string       `json:"svara"`
	Solfege   string       `json:"solfege"`
	Name      string       `json:"name"`
	Ratio     ratios.Ratio `json:"ratio"`
	Hz        float64      `json:"hz"`
	Nearest   pitch.Note   `json:"nearest"`
	NearestHz float64      `json:"nearest_hz"`
	CentsOff  float64      `json:"cents_off"`
}

// Generate builds the just major scale on f0. Pure: a fresh slice per call,
// no caching, no rounding of the derived frequencies.
func Generate(f0 float64, tun pitch.Tuning) []Degree {
	just := ratios.JustScale()
	out := make([]Degree, len(just))
	for i, d := range just {
		hz := f0 * d.Ratio.Decimal
		near := pitch.NearestTo(hz, tun)
		out[i] = Degree{
			Degree:    d.Degree,
			Svara:     d.Svara,
			Solfege:   d.Solfege,
			Name:      d.Name,
			Ratio:     d.Ratio,
			Hz:        hz,
			Nearest:   near.Note,
			NearestHz: near.Hz,
			CentsOff:  near.CentsOff,
		}
	}
	return out
}

package ratios

import "math"

// ETInterval is one semitone step of twelve-tone equal temperament. Unlike
// the just and Pythagorean tables its ratio is irrational, so only the
// decimal form is carried.
type ETInterval struct {
	Semitones int     `json:"semitones"`
	Name      string  `json:"name"`
	Ratio     float64 `json:"ratio"` // 2^(semitones/12)
	Cents     float64 `json:"cents"` // exactly 100 per semitone
}

var etNames = [13]string{
	"Unison",
	"Minor Second",
	"Major Second",
	"Minor Third",
	"Major Third",
	"Perfect Fourth",
	"Tritone",
	"Perfect Fifth",
	"Minor Sixth",
	"Major Sixth",
	"Minor Seventh",
	"Major Seventh",
	"Octave",
}

// ETIntervals returns the thirteen intervals of 12-TET from unison through
// the octave. The returned slice is freshly built on every call.
func ETIntervals() []ETInterval {
	out := make([]ETInterval, len(etNames))
	for i, name := range etNames {
		out[i] = ETInterval{
			Semitones: i,
			Name:      name,
			Ratio:     math.Pow(2.0, float64(i)/12.0),
			Cents:     float64(i) * 100.0,
		}
	}
	return out
}

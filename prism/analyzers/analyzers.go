// Package analyzers implements the six framework lenses of the engine:
// Pythagorean, Vedic, Gregorian, Western, Tibetan, and Neuroscience. Each
// analyzer is a small stateless struct built by a New* constructor and
// exposing a pure Analyze method; none touches another's output, and all
// assume the fundamental has already been validated by the caller.
package analyzers

import (
	"github.com/RyanBlaney/vox-prisma/algorithms/ratios"
)

// Tone is a pitch derived from the fundamental by an exact ratio, used for
// scales, drone voices, and other ratio-built structures.
type Tone struct {
	Name  string       `json:"name"`
	Ratio ratios.Ratio `json:"ratio"`
	Hz    float64      `json:"hz"`
}

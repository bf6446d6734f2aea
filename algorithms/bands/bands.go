// Package bands holds the static classification tables keyed by fundamental
// frequency: vocal category, saptak register, chakra, Gregorian mode, and
// key signature. Frequency tables are contiguous half-open [Min, Max) bands
// in ascending order; lookups clamp below the first band and above the last,
// so every positive frequency classifies.
package bands

import (
	"math"
	"sort"

	"github.com/RyanBlaney/vox-prisma/algorithms/common"
)

// Band is one half-open interval [Min, Max) of a frequency table. An
// unbounded top band carries Max = +Inf.
type Band struct {
	Name string  `json:"name"`
	Min  float64 `json:"min_hz"`
	Max  float64 `json:"max_hz"`
}

// Contains reports whether v falls inside the half-open interval.
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v < b.Max
}

// Unbounded reports whether the band has no upper limit.
func (b Band) Unbounded() bool {
	return math.IsInf(b.Max, 1)
}

// Locate returns the index of the band containing v. The list must be
// ascending and contiguous. Values below the first band clamp to index 0;
// values at or above the last Max clamp to the last index.
func Locate(list []Band, v float64) int {
	idx := sort.Search(len(list), func(i int) bool { return v < list[i].Max })
	if idx == len(list) {
		idx = len(list) - 1
	}
	return idx
}

// Percent places v within a band as 0-100, clamped at the edges. Unbounded
// bands have no meaningful span, so they report 0.
func Percent(b Band, v float64) float64 {
	if b.Unbounded() || b.Max <= b.Min {
		return 0
	}
	return common.Clamp((v-b.Min)/(b.Max-b.Min)*100.0, 0, 100)
}

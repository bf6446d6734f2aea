package pitch

import (
	"math"
	"strconv"
)

// RoundHz rounds a frequency for display: two decimals below 100 Hz, one
// decimal up to 1 kHz, whole hertz above. Display only; analysis math always
// runs on unrounded values.
func RoundHz(hz float64) float64 {
	switch {
	case hz < 100.0:
		return math.Round(hz*100.0) / 100.0
	case hz < 1000.0:
		return math.Round(hz*10.0) / 10.0
	default:
		return math.Round(hz)
	}
}

// FormatHz renders a frequency with the same precision tiers as RoundHz,
// without a unit suffix.
func FormatHz(hz float64) string {
	switch {
	case hz < 100.0:
		return strconv.FormatFloat(hz, 'f', 2, 64)
	case hz < 1000.0:
		return strconv.FormatFloat(hz, 'f', 1, 64)
	default:
		return strconv.FormatFloat(hz, 'f', 0, 64)
	}
}

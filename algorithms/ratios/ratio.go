// Package ratios defines exact frequency-ratio tables for just, Pythagorean,
// and equal-tempered intonation. Ratios are stored as reduced integer
// fractions so table values stay exact; decimal and cents forms are derived.
package ratios

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/vox-prisma/algorithms/common"
	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
)

// Ratio is a frequency ratio as a reduced integer fraction plus its derived
// decimal and cents forms.
type Ratio struct {
	Num     int64   `json:"num"`
	Den     int64   `json:"den"`
	Decimal float64 `json:"decimal"`
	Cents   float64 `json:"cents"`
}

// New builds a Ratio from an integer fraction, reducing it to lowest terms.
// Both terms must be positive.
func New(num, den int64) Ratio {
	g := common.GCD(num, den)
	if g > 1 {
		num /= g
		den /= g
	}
	dec := float64(num) / float64(den)
	return Ratio{
		Num:     num,
		Den:     den,
		Decimal: dec,
		Cents:   pitch.RatioToCents(dec),
	}
}

// String renders the fraction in colon notation, e.g. "3:2".
func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}

// Approximate finds the simplest fraction matching a decimal ratio, using a
// continued-fraction expansion with denominators capped at maxDen. Exact
// simple ratios such as 1.5 or 1.8 resolve to 3:2 and 9:5; irrational inputs
// resolve to their best rational neighbor under the cap.
func Approximate(x float64, maxDen int64) Ratio {
	if x <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return New(1, 1)
	}
	if maxDen < 1 {
		maxDen = 1
	}

	// Convergents h/k of the continued fraction of x.
	var (
		h0, k0 int64 = 0, 1
		h1, k1 int64 = 1, 0
		rem          = x
	)
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(rem))
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDen {
			break
		}
		h0, k0 = h1, k1
		h1, k1 = h2, k2

		frac := rem - math.Floor(rem)
		if frac < 1e-12 {
			break
		}
		rem = 1.0 / frac
	}
	if h1 == 0 || k1 == 0 {
		return New(1, 1)
	}
	return New(h1, k1)
}

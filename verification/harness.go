// Package verification re-derives the constants the analysis engine is
// built on, so a binary can prove its own pitch math at runtime. The checks
// are fixed identities, not sampled behavior: if one fails, the kernel or a
// ratio table is wrong.
package verification

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
	"github.com/RyanBlaney/vox-prisma/algorithms/ratios"
)

// Check is one verified identity.
type Check struct {
	Description string  `json:"description"`
	Expected    float64 `json:"expected"`
	Actual      float64 `json:"actual"`
	Tolerance   float64 `json:"tolerance"`
	Pass        bool    `json:"pass"`
}

// Report collects the outcome of a verification run.
type Report struct {
	Checks []Check `json:"checks"`
	Passed int     `json:"passed"`
	Failed int     `json:"failed"`
}

// AllPass reports whether every check passed.
func (r *Report) AllPass() bool {
	return r.Failed == 0
}

// check evaluates one identity.
func check(description string, expected, actual, tolerance float64) Check {
	return Check{
		Description: description,
		Expected:    expected,
		Actual:      actual,
		Tolerance:   tolerance,
		Pass:        scalar.EqualWithinAbs(expected, actual, tolerance),
	}
}

// Run evaluates the ten kernel identities.
func Run() *Report {
	tun := pitch.Default()

	checks := []Check{
		check("frequency to MIDI and back preserves 220 Hz",
			220.0, pitch.MIDIToFreq(pitch.FreqToMIDI(220.0, tun), tun), 1e-9),
		check("the reference A4 maps to MIDI 69",
			69.0, pitch.FreqToMIDI(440.0, tun), 1e-12),
		check("an octave measures 1200 cents",
			1200.0, pitch.CentsBetween(880.0, 440.0), 1e-9),
		check("the pure fifth 3:2 measures 701.955 cents",
			701.955, pitch.RatioToCents(1.5), 0.01),
		check("the just major third 5:4 measures 386.314 cents",
			386.3137, ratios.New(5, 4).Cents, 1e-3),
		check("the tempered major third measures exactly 400 cents",
			400.0, ratios.ETIntervals()[4].Cents, 1e-12),
		check("the Pythagorean comma measures 23.46 cents",
			23.46, ratios.PythagoreanComma().Cents, 0.01),
		check("the syntonic comma measures 21.506 cents",
			21.5063, ratios.SyntonicComma().Cents, 1e-3),
		check("432/240 reduces to the just minor seventh 9:5",
			1.8, ratios.Approximate(432.0/240.0, 32).Decimal, 1e-12),
		check("432 Hz is the just major seventh of 230.4 Hz",
			230.4, 432.0*8.0/15.0, 1e-9),
	}

	report := &Report{Checks: checks}
	for _, c := range checks {
		if c.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
	}
	return report
}

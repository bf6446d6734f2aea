package analyzers

import (
	"math"

	"github.com/RyanBlaney/vox-prisma/algorithms/bands"
	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
	"github.com/RyanBlaney/vox-prisma/algorithms/ratios"
)

// TibetanParams configures the overtone analysis.
type TibetanParams struct {
	MaxHarmonics            int     `json:"max_harmonics"`             // terms of the harmonic series
	DeviationThresholdCents float64 `json:"deviation_threshold_cents"` // flag harmonics straying further than this
}

// DefaultTibetanParams returns the standard 16-term series with the 25 cent
// deviation threshold.
func DefaultTibetanParams() TibetanParams {
	return TibetanParams{
		MaxHarmonics:            16,
		DeviationThresholdCents: 25.0,
	}
}

// BowlClass is a singing-bowl size classification by fundamental frequency.
type BowlClass struct {
	bands.Band
	Description string `json:"description"`
}

var bowls = []BowlClass{
	{bands.Band{Name: "Large", Min: 50, Max: 110}, "wide-rimmed meditation bowls with slow, deep pulses"},
	{bands.Band{Name: "Medium", Min: 110, Max: 220}, "general-practice bowls balancing body and shimmer"},
	{bands.Band{Name: "Small", Min: 220, Max: 440}, "bright accent bowls favored for clearing strikes"},
	{bands.Band{Name: "Handbell", Min: 440, Max: math.Inf(1)}, "handheld bells and tingsha in the brilliant register"},
}

var bowlBands = func() []bands.Band {
	out := make([]bands.Band, len(bowls))
	for i, b := range bowls {
		out[i] = b.Band
	}
	return out
}()

// Harmonic is one term of the natural overtone series with its relation to
// equal temperament.
type Harmonic struct {
	N                int        `json:"n"`
	Hz               float64    `json:"hz"`
	Note             pitch.Note `json:"note"`
	Interval         string     `json:"interval"` // nearest tempered interval class
	Octaves          int        `json:"octaves"`  // whole octaves above the fundamental
	ETDeviationCents float64    `json:"et_deviation_cents"`
	Flagged          bool       `json:"flagged"`
}

// TibetanResult describes the fundamental as a struck bowl: its size class
// and the overtone series with the harmonics no keyboard can reach.
type TibetanResult struct {
	Bowl             BowlClass  `json:"bowl"`
	Harmonics        []Harmonic `json:"harmonics"`
	FlaggedHarmonics []int      `json:"flagged_harmonics"`
}

// TibetanAnalyzer views a fundamental through overtone practice.
type TibetanAnalyzer struct {
	params TibetanParams
	tun    pitch.Tuning
}

// NewTibetanAnalyzer creates a Tibetan analyzer, filling zero params with
// defaults.
func NewTibetanAnalyzer(tun pitch.Tuning, params TibetanParams) *TibetanAnalyzer {
	def := DefaultTibetanParams()
	if params.MaxHarmonics <= 0 {
		params.MaxHarmonics = def.MaxHarmonics
	}
	if params.DeviationThresholdCents <= 0 {
		params.DeviationThresholdCents = def.DeviationThresholdCents
	}
	return &TibetanAnalyzer{params: params, tun: tun}
}

// Analyze classifies the bowl and walks the harmonic series. The deviation
// of harmonic n is measured from the nearest tempered degree,
//
//	dev(n) = RatioToCents(n) - 100*round(RatioToCents(n)/100)
//
// so negative means flat. With the default threshold this flags harmonics
// 7, 11, 13, and 14.
func (ta *TibetanAnalyzer) Analyze(f0 float64) *TibetanResult {
	et := ratios.ETIntervals()

	harmonics := make([]Harmonic, 0, ta.params.MaxHarmonics)
	var flagged []int
	for n := 1; n <= ta.params.MaxHarmonics; n++ {
		cents := pitch.RatioToCents(float64(n))
		semis := math.Round(cents / 100.0)
		dev := cents - 100.0*semis

		class := int(semis) % 12
		octaves := int(semis) / 12
		name := et[class].Name
		if class == 0 && octaves > 0 {
			name = et[12].Name
		}

		hz := f0 * float64(n)
		h := Harmonic{
			N:                n,
			Hz:               hz,
			Note:             pitch.FreqToNote(hz, ta.tun),
			Interval:         name,
			Octaves:          octaves,
			ETDeviationCents: dev,
			Flagged:          math.Abs(dev) > ta.params.DeviationThresholdCents,
		}
		if h.Flagged {
			flagged = append(flagged, n)
		}
		harmonics = append(harmonics, h)
	}

	return &TibetanResult{
		Bowl:             bowls[bands.Locate(bowlBands, f0)],
		Harmonics:        harmonics,
		FlaggedHarmonics: flagged,
	}
}

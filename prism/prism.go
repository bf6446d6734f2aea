// Package prism aggregates the six framework analyzers over one validated
// fundamental frequency, producing a single deterministic Result. The same
// input under the same configuration always yields byte-identical output:
// there are no clocks, no random IDs, and no hidden state anywhere below.
package prism

import (
	"errors"
	"fmt"
	"math"

	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
	"github.com/RyanBlaney/vox-prisma/algorithms/scale"
	"github.com/RyanBlaney/vox-prisma/logging"
	"github.com/RyanBlaney/vox-prisma/prism/analyzers"
	"github.com/RyanBlaney/vox-prisma/prism/config"
)

// EngineVersion participates in the result ID, so bumping it changes every
// ID.
const EngineVersion = "1.0.0"

// The analyzable range. Below 50 Hz the band tables lose meaning; above
// 1 kHz the fundamental is no longer a voice or bowl register.
const (
	MinFrequencyHz = 50.0
	MaxFrequencyHz = 1000.0
)

// ErrFrequencyOutOfRange is the module's single domain error. Analyze wraps
// it with the offending value; match with errors.Is.
var ErrFrequencyOutOfRange = errors.New("prism: frequency out of range")

// InputInfo echoes the validated input and its kernel-level reading.
type InputInfo struct {
	FrequencyHz float64       `json:"frequency_hz"`
	Tuning      pitch.Tuning  `json:"tuning"`
	MIDI        float64       `json:"midi"` // continuous, unrounded
	Nearest     pitch.Nearest `json:"nearest"`
}

// Frameworks groups the six analysis views.
type Frameworks struct {
	Pythagorean  *analyzers.PythagoreanResult `json:"pythagorean"`
	Vedic        *analyzers.VedicResult       `json:"vedic"`
	Gregorian    *analyzers.GregorianResult   `json:"gregorian"`
	Western      *analyzers.WesternResult     `json:"western"`
	Tibetan      *analyzers.TibetanResult     `json:"tibetan"`
	Neuroscience *analyzers.NeuroResult       `json:"neuroscience"`
}

// Narrative carries the templated prose summaries.
type Narrative struct {
	Short  string `json:"short"`
	Medium string `json:"medium"`
}

// Result is the complete analysis of one fundamental.
type Result struct {
	ID            string         `json:"id"`
	EngineVersion string         `json:"engine_version"`
	Input         InputInfo      `json:"input"`
	Scale         []scale.Degree `json:"scale"`
	Frameworks    Frameworks     `json:"frameworks"`
	Narrative     *Narrative     `json:"narrative,omitempty"`
}

// Analyzer runs the full pipeline under one fixed configuration. Safe for
// concurrent use; all held analyzers are stateless.
type Analyzer struct {
	cfg    *config.AnalysisConfig
	tun    pitch.Tuning
	logger logging.Logger

	pythagorean *analyzers.PythagoreanAnalyzer
	vedic       *analyzers.VedicAnalyzer
	gregorian   *analyzers.GregorianAnalyzer
	western     *analyzers.WesternAnalyzer
	tibetan     *analyzers.TibetanAnalyzer
	neuro       *analyzers.NeuroAnalyzer
}

// NewAnalyzer creates an analyzer from the given configuration, or the
// defaults when cfg is nil. Configuration problems surface here, at
// construction, never during Analyze.
func NewAnalyzer(cfg *config.AnalysisConfig) (*Analyzer, error) {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tun, _ := pitch.TuningByID(cfg.TuningID)

	return &Analyzer{
		cfg:         cfg,
		tun:         tun,
		logger:      logging.WithFields(logging.Fields{"component": "prism"}),
		pythagorean: analyzers.NewPythagoreanAnalyzer(tun),
		vedic:       analyzers.NewVedicAnalyzer(),
		gregorian:   analyzers.NewGregorianAnalyzer(tun),
		western:     analyzers.NewWesternAnalyzer(tun),
		tibetan: analyzers.NewTibetanAnalyzer(tun, analyzers.TibetanParams{
			MaxHarmonics:            cfg.MaxHarmonics,
			DeviationThresholdCents: cfg.DeviationThresholdCents,
		}),
		neuro: analyzers.NewNeuroAnalyzer(analyzers.NeuroParams{
			GammaCapHz: cfg.GammaCapHz,
		}),
	}, nil
}

// Tuning returns the tuning the analyzer was built with.
func (a *Analyzer) Tuning() pitch.Tuning {
	return a.tun
}

// Analyze validates f0 and runs every framework over it.
func (a *Analyzer) Analyze(f0 float64) (*Result, error) {
	if math.IsNaN(f0) || math.IsInf(f0, 0) || f0 < MinFrequencyHz || f0 > MaxFrequencyHz {
		return nil, fmt.Errorf("%w: %g Hz not in [%g, %g]",
			ErrFrequencyOutOfRange, f0, MinFrequencyHz, MaxFrequencyHz)
	}

	a.logger.Debug("starting analysis", logging.Fields{
		"frequency_hz": f0,
		"tuning":       a.tun.ID,
	})

	degs := scale.Generate(f0, a.tun)

	result := &Result{
		ID:            resultID(f0, a.tun.ID),
		EngineVersion: EngineVersion,
		Input: InputInfo{
			FrequencyHz: f0,
			Tuning:      a.tun,
			MIDI:        pitch.FreqToMIDI(f0, a.tun),
			Nearest:     pitch.NearestTo(f0, a.tun),
		},
		Scale: degs,
		Frameworks: Frameworks{
			Pythagorean:  a.pythagorean.Analyze(f0),
			Vedic:        a.vedic.Analyze(f0),
			Gregorian:    a.gregorian.Analyze(f0, degs),
			Western:      a.western.Analyze(f0, degs),
			Tibetan:      a.tibetan.Analyze(f0),
			Neuroscience: a.neuro.Analyze(f0),
		},
	}

	if a.cfg.IncludeNarrative {
		n := buildNarrative(result, a.cfg.DeviationThresholdCents)
		result.Narrative = &n
	}

	a.logger.Debug("analysis complete", logging.Fields{
		"id":      result.ID,
		"nearest": result.Input.Nearest.Note.String(),
	})
	return result, nil
}

// Calculate analyzes f0 under the default configuration.
func Calculate(f0 float64) (*Result, error) {
	a, err := NewAnalyzer(nil)
	if err != nil {
		return nil, err
	}
	return a.Analyze(f0)
}

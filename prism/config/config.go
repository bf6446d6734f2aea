// Package config defines the analysis configuration shared by the
// aggregator and the command line front end.
package config

import (
	"fmt"

	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
)

// AnalysisConfig controls everything variable about an analysis run. The
// zero value is not usable; start from DefaultAnalysisConfig.
type AnalysisConfig struct {
	// Tuning
	TuningID string `json:"tuning_id"` // registry ID, e.g. "a440"

	// Tibetan overtone analysis
	MaxHarmonics            int     `json:"max_harmonics"`
	DeviationThresholdCents float64 `json:"deviation_threshold_cents"`

	// Neuroscience beat planning
	GammaCapHz float64 `json:"gamma_cap_hz"`

	// Output
	IncludeNarrative bool `json:"include_narrative"`
}

// DefaultAnalysisConfig returns the standard configuration: concert tuning,
// 16 harmonics with the 25 cent threshold, 100 Hz gamma cap, narrative on.
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		TuningID:                "a440",
		MaxHarmonics:            16,
		DeviationThresholdCents: 25.0,
		GammaCapHz:              100.0,
		IncludeNarrative:        true,
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c *AnalysisConfig) Validate() error {
	if _, ok := pitch.TuningByID(c.TuningID); !ok {
		return fmt.Errorf("config: unknown tuning %q", c.TuningID)
	}
	if c.MaxHarmonics < 1 || c.MaxHarmonics > 64 {
		return fmt.Errorf("config: max harmonics %d outside [1, 64]", c.MaxHarmonics)
	}
	if c.DeviationThresholdCents <= 0 || c.DeviationThresholdCents > 600 {
		return fmt.Errorf("config: deviation threshold %.2f cents outside (0, 600]", c.DeviationThresholdCents)
	}
	if c.GammaCapHz <= 30 || c.GammaCapHz > 1000 {
		return fmt.Errorf("config: gamma cap %.2f Hz outside (30, 1000]", c.GammaCapHz)
	}
	return nil
}

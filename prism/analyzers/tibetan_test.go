package analyzers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
	"github.com/RyanBlaney/vox-prisma/prism/analyzers"
)

// TestTibetanBowlClass covers the four bowl bands including both clamps.
func TestTibetanBowlClass(t *testing.T) {
	ta := analyzers.NewTibetanAnalyzer(pitch.Default(), analyzers.DefaultTibetanParams())

	assert.Equal(t, "Large", ta.Analyze(90.0).Bowl.Name)
	assert.Equal(t, "Medium", ta.Analyze(110.0).Bowl.Name, "110 Hz opens the medium band")
	assert.Equal(t, "Small", ta.Analyze(300.0).Bowl.Name)
	assert.Equal(t, "Handbell", ta.Analyze(440.0).Bowl.Name)
	assert.Equal(t, "Handbell", ta.Analyze(999.0).Bowl.Name, "the top band is unbounded")
}

// TestTibetanHarmonicSeries verifies the series frequencies and the derived
// tempered deviations, pinning the documented seventh harmonic example.
func TestTibetanHarmonicSeries(t *testing.T) {
	ta := analyzers.NewTibetanAnalyzer(pitch.Default(), analyzers.DefaultTibetanParams())
	res := ta.Analyze(300.0)

	require.Len(t, res.Harmonics, 16)

	first := res.Harmonics[0]
	assert.Equal(t, 1, first.N)
	assert.Equal(t, 300.0, first.Hz)
	assert.Equal(t, "Unison", first.Interval)
	assert.InDelta(t, 0.0, first.ETDeviationCents, 1e-12)
	assert.False(t, first.Flagged)

	second := res.Harmonics[1]
	assert.Equal(t, "Octave", second.Interval)
	assert.Equal(t, 1, second.Octaves)
	assert.InDelta(t, 0.0, second.ETDeviationCents, 1e-9)

	third := res.Harmonics[2]
	assert.Equal(t, "Perfect Fifth", third.Interval)
	assert.Equal(t, 1, third.Octaves)
	assert.InDelta(t, 1.955, third.ETDeviationCents, 1e-3, "the pure fifth runs 2 cents sharp")

	seventh := res.Harmonics[6]
	assert.Equal(t, 7, seventh.N)
	assert.Equal(t, 2100.0, seventh.Hz, "the seventh harmonic of 300 Hz")
	assert.Equal(t, "Minor Seventh", seventh.Interval)
	assert.Equal(t, 2, seventh.Octaves)
	assert.InDelta(t, -31.17, seventh.ETDeviationCents, 0.01, "the natural seventh is a third of a semitone flat")
	assert.True(t, seventh.Flagged)
}

// TestTibetanFlaggedSet verifies the default threshold reproduces the
// canonical unreachable harmonics with their signed deviations.
func TestTibetanFlaggedSet(t *testing.T) {
	ta := analyzers.NewTibetanAnalyzer(pitch.Default(), analyzers.DefaultTibetanParams())
	res := ta.Analyze(220.0)

	assert.Equal(t, []int{7, 11, 13, 14}, res.FlaggedHarmonics)

	assert.InDelta(t, -48.68, res.Harmonics[10].ETDeviationCents, 0.01, "harmonic 11 splits the tritone")
	assert.Equal(t, "Tritone", res.Harmonics[10].Interval)
	assert.InDelta(t, 40.53, res.Harmonics[12].ETDeviationCents, 0.01, "harmonic 13 runs sharp of the minor sixth")
	assert.Equal(t, "Minor Sixth", res.Harmonics[12].Interval)
	assert.InDelta(t, -31.17, res.Harmonics[13].ETDeviationCents, 0.01)
}

// TestTibetanParams verifies the configurable series length and threshold,
// and that zero params fall back to defaults.
func TestTibetanParams(t *testing.T) {
	tun := pitch.Default()

	short := analyzers.NewTibetanAnalyzer(tun, analyzers.TibetanParams{
		MaxHarmonics:            8,
		DeviationThresholdCents: 25,
	})
	res := short.Analyze(200.0)
	require.Len(t, res.Harmonics, 8)
	assert.Equal(t, []int{7}, res.FlaggedHarmonics, "only the seventh strays within eight terms")

	strict := analyzers.NewTibetanAnalyzer(tun, analyzers.TibetanParams{
		MaxHarmonics:            16,
		DeviationThresholdCents: 45,
	})
	assert.Equal(t, []int{11}, strict.Analyze(200.0).FlaggedHarmonics,
		"a 45 cent threshold leaves only harmonic 11")

	defaulted := analyzers.NewTibetanAnalyzer(tun, analyzers.TibetanParams{})
	assert.Len(t, defaulted.Analyze(200.0).Harmonics, 16, "zero params take defaults")
}

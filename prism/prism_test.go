package prism_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/vox-prisma/prism"
	"github.com/RyanBlaney/vox-prisma/prism/config"
)

// TestAnalyzeValidatesRange verifies the single domain error covers both
// bounds and non-finite input, while the bounds themselves are analyzable.
func TestAnalyzeValidatesRange(t *testing.T) {
	for _, f0 := range []float64{49.9, 1000.1, 0, -220, math.NaN(), math.Inf(1)} {
		_, err := prism.Calculate(f0)
		assert.ErrorIs(t, err, prism.ErrFrequencyOutOfRange, "f0 = %v must be rejected", f0)
	}

	for _, f0 := range []float64{50, 220, 1000} {
		res, err := prism.Calculate(f0)
		require.NoError(t, err, "f0 = %v is in range", f0)
		assert.Equal(t, f0, res.Input.FrequencyHz)
	}
}

// TestCalculateOnA3 runs the full pipeline on 220 Hz and checks the
// kernel-level reading plus presence of every framework.
func TestCalculateOnA3(t *testing.T) {
	res, err := prism.Calculate(220.0)
	require.NoError(t, err)

	assert.Equal(t, "A3", res.Input.Nearest.Note.String())
	assert.InDelta(t, 0.0, res.Input.Nearest.CentsOff, 1e-9, "220 Hz is an exact standard under a440")
	assert.InDelta(t, 57.0, res.Input.MIDI, 1e-12)
	assert.Equal(t, "a440", res.Input.Tuning.ID)

	require.Len(t, res.Scale, 8)
	require.NotNil(t, res.Frameworks.Pythagorean)
	require.NotNil(t, res.Frameworks.Vedic)
	require.NotNil(t, res.Frameworks.Gregorian)
	require.NotNil(t, res.Frameworks.Western)
	require.NotNil(t, res.Frameworks.Tibetan)
	require.NotNil(t, res.Frameworks.Neuroscience)
	require.NotNil(t, res.Narrative, "defaults include the narrative")

	assert.Equal(t, prism.EngineVersion, res.EngineVersion)
	assert.Regexp(t, "^[0-9a-f]{16}$", res.ID)
}

// TestDeterminism verifies equal inputs produce byte-identical results.
func TestDeterminism(t *testing.T) {
	a, err := prism.Calculate(329.63)
	require.NoError(t, err)
	b, err := prism.Calculate(329.63)
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, ja, jb, "repeated runs must serialize identically")
}

// TestIDDistinguishesInputs verifies the ID separates frequencies and
// tunings.
func TestIDDistinguishesInputs(t *testing.T) {
	a, err := prism.Calculate(220.0)
	require.NoError(t, err)
	b, err := prism.Calculate(221.0)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	cfg := config.DefaultAnalysisConfig()
	cfg.TuningID = "a432"
	verdi, err := prism.NewAnalyzer(cfg)
	require.NoError(t, err)
	c, err := verdi.Analyze(220.0)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, c.ID, "the tuning participates in the ID")
}

// TestAnalyzerRespectsConfig verifies tuning, harmonic count, and narrative
// toggles reach the output.
func TestAnalyzerRespectsConfig(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()
	cfg.TuningID = "a432"
	cfg.MaxHarmonics = 8
	cfg.IncludeNarrative = false

	an, err := prism.NewAnalyzer(cfg)
	require.NoError(t, err)
	assert.Equal(t, "a432", an.Tuning().ID)

	res, err := an.Analyze(432.0)
	require.NoError(t, err)

	assert.Equal(t, "A4", res.Input.Nearest.Note.String())
	assert.InDelta(t, 0.0, res.Input.Nearest.CentsOff, 1e-9, "432 Hz is exact under a432")
	assert.Len(t, res.Frameworks.Tibetan.Harmonics, 8)
	assert.Nil(t, res.Narrative, "narrative disabled by config")
}

// TestNewAnalyzerRejectsBadConfig verifies construction-time validation.
func TestNewAnalyzerRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()
	cfg.TuningID = "a999"
	_, err := prism.NewAnalyzer(cfg)
	assert.ErrorContains(t, err, "unknown tuning")

	an, err := prism.NewAnalyzer(nil)
	require.NoError(t, err, "nil config takes defaults")
	assert.Equal(t, "a440", an.Tuning().ID)
}

// TestSharedScaleConsistency verifies the analyzers that take the shared
// scale stay numerically consistent with it.
func TestSharedScaleConsistency(t *testing.T) {
	res, err := prism.Calculate(165.0)
	require.NoError(t, err)

	organum := res.Frameworks.Gregorian.Organum
	assert.Equal(t, res.Scale[0].Hz, organum[0].Hz)
	assert.Equal(t, res.Scale[3].Hz, organum[1].Hz)
	assert.Equal(t, res.Scale[4].Hz, organum[2].Hz)
	assert.Equal(t, res.Scale[7].Hz, organum[3].Hz)

	triads := res.Frameworks.Western.Triads
	assert.Equal(t, res.Scale[0].Hz, triads[0].Tones[0].Hz)
	assert.Equal(t, res.Scale[3].Hz, triads[1].Tones[0].Hz)
	assert.Equal(t, res.Scale[4].Hz, triads[2].Tones[0].Hz)
}

// TestJSONPathStability walks the serialized form down to the documented
// consumer path frameworks.vedic.shruti.scale[i].hz.
func TestJSONPathStability(t *testing.T) {
	res, err := prism.Calculate(165.0)
	require.NoError(t, err)

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	frameworks, ok := doc["frameworks"].(map[string]any)
	require.True(t, ok)
	vedic, ok := frameworks["vedic"].(map[string]any)
	require.True(t, ok)
	shrutiObj, ok := vedic["shruti"].(map[string]any)
	require.True(t, ok)
	ladder, ok := shrutiObj["scale"].([]any)
	require.True(t, ok)
	require.Len(t, ladder, 23)

	pa, ok := ladder[13].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pa", pa["label"])
	assert.InDelta(t, 247.5, pa["hz"].(float64), 1e-9)

	input, ok := doc["input"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 165.0, input["frequency_hz"].(float64), 1e-12)
}

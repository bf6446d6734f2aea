package analyzers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/vox-prisma/prism/analyzers"
)

// TestVedicClassification checks register and chakra bands across the
// frequency range.
func TestVedicClassification(t *testing.T) {
	va := analyzers.NewVedicAnalyzer()

	low := va.Analyze(90.0)
	assert.Equal(t, "Mandra", low.Saptak.Name)
	assert.Equal(t, "Muladhara", low.Chakra.Name)

	mid := va.Analyze(165.0)
	assert.Equal(t, "Madhya", mid.Saptak.Name)
	assert.Equal(t, "Manipura", mid.Chakra.Name)

	high := va.Analyze(300.0)
	assert.Equal(t, "Taar", high.Saptak.Name)
	assert.Equal(t, "Vishuddha", high.Chakra.Name)
}

// TestVedicShrutiScale verifies the 23-tone ladder scaled onto the
// fundamental, including the documented fifth on 165 Hz.
func TestVedicShrutiScale(t *testing.T) {
	va := analyzers.NewVedicAnalyzer()
	res := va.Analyze(165.0)

	ladder := res.Shruti.Scale
	require.Len(t, ladder, 23)

	assert.Equal(t, "Sa", ladder[0].Label)
	assert.Equal(t, 165.0, ladder[0].Hz, "Sa is the fundamental itself")
	assert.Equal(t, "Sa'", ladder[22].Label)
	assert.Equal(t, 330.0, ladder[22].Hz, "the upper Sa doubles the fundamental")

	pa := ladder[13]
	assert.Equal(t, "Pa", pa.Label)
	assert.Equal(t, "3:2", pa.Ratio.String())
	assert.InDelta(t, 247.5, pa.Hz, 1e-9, "the pure fifth above 165 Hz")

	for i := 1; i < len(ladder); i++ {
		assert.Greater(t, ladder[i].Hz, ladder[i-1].Hz, "ladder must ascend at %s", ladder[i].Label)
	}
}

// TestVedicRagaPlans verifies the realized raga subsets.
func TestVedicRagaPlans(t *testing.T) {
	va := analyzers.NewVedicAnalyzer()
	res := va.Analyze(165.0)

	require.Len(t, res.Ragas, 5)
	for _, plan := range res.Ragas {
		require.Len(t, plan.Tones, 8, "raga %s must realize eight tones", plan.Name)
		assert.Equal(t, 165.0, plan.Tones[0].Hz, "raga %s opens on the fundamental", plan.Name)
		assert.Equal(t, 330.0, plan.Tones[7].Hz, "raga %s closes on the octave", plan.Name)
	}

	bilawal := res.Ragas[0]
	assert.Equal(t, "Bilawal", bilawal.Name)
	assert.InDelta(t, 247.5, bilawal.Tones[4].Hz, 1e-9, "Bilawal's fifth tone is Pa")

	yaman := res.Ragas[1]
	assert.Equal(t, "Yaman", yaman.Name)
	assert.Equal(t, "Ma3", yaman.Tones[3].Label, "Yaman takes tivra Ma")
	assert.Equal(t, "45:32", yaman.Tones[3].Ratio.String())
}

// TestVedicA432Facts pins the two arithmetic identities surfaced for the
// 432 Hz tuning.
func TestVedicA432Facts(t *testing.T) {
	va := analyzers.NewVedicAnalyzer()
	res := va.Analyze(220.0)

	assert.Equal(t, "9:5", res.A432.RatioTo240.String(), "432/240 reduces to the just minor seventh")
	assert.InDelta(t, 1.8, res.A432.RatioTo240.Decimal, 1e-12)
	assert.InDelta(t, 230.4, res.A432.JustSeventhRootHz, 1e-9,
		"432 Hz is the just major seventh of 230.4 Hz")
}

package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
	"github.com/RyanBlaney/vox-prisma/algorithms/scale"
)

// TestGenerateShape verifies the eight ascending degrees and the exact
// octave relation between the outer degrees.
func TestGenerateShape(t *testing.T) {
	degs := scale.Generate(220.0, pitch.Default())
	require.Len(t, degs, 8)

	assert.Equal(t, 220.0, degs[0].Hz, "degree 1 is the fundamental itself")
	assert.Equal(t, 2.0*degs[0].Hz, degs[7].Hz, "degree 8 doubles the fundamental exactly")

	for i := 1; i < len(degs); i++ {
		assert.Greater(t, degs[i].Hz, degs[i-1].Hz, "degrees must ascend")
		assert.Equal(t, i+1, degs[i].Degree)
	}
}

// TestGenerateFifthOn165 pins the documented example: the fifth above 165 Hz
// is 247.5 Hz, a hair above B3.
func TestGenerateFifthOn165(t *testing.T) {
	degs := scale.Generate(165.0, pitch.Default())

	fifth := degs[4]
	assert.Equal(t, "Pa", fifth.Svara)
	assert.Equal(t, "Sol", fifth.Solfege)
	assert.Equal(t, "3:2", fifth.Ratio.String())
	assert.InDelta(t, 247.5, fifth.Hz, 1e-9)
	assert.Equal(t, "B3", fifth.Nearest.String())
	assert.InDelta(t, 246.94, fifth.NearestHz, 0.01)
	assert.Positive(t, fifth.CentsOff, "247.5 Hz is sharp of B3")
}

// TestGenerateOnStandard checks that a scale rooted on a tempered standard
// reports a zero offset at the root.
func TestGenerateOnStandard(t *testing.T) {
	degs := scale.Generate(220.0, pitch.Default())

	root := degs[0]
	assert.Equal(t, "A3", root.Nearest.String())
	assert.InDelta(t, 0.0, root.CentsOff, 1e-9)

	// The just fifth on a 220 root is 330 Hz, about 2 cents sharp of E4.
	fifth := degs[4]
	assert.Equal(t, "E4", fifth.Nearest.String())
	assert.InDelta(t, 1.955, fifth.CentsOff, 1e-3, "the just fifth exceeds the tempered by ~2 cents")
}

// TestGenerateFreshSlices verifies that Generate does not share state
// between calls.
func TestGenerateFreshSlices(t *testing.T) {
	a := scale.Generate(100.0, pitch.Default())
	a[0].Svara = "mutated"
	b := scale.Generate(100.0, pitch.Default())
	assert.Equal(t, "Sa", b[0].Svara)
}

// TestGenerateRespectsTuning confirms the tuning reaches the nearest-pitch
// annotation: 432 Hz is 32 cents flat of A4 under a440 but exact under a432.
func TestGenerateRespectsTuning(t *testing.T) {
	concert := scale.Generate(432.0, pitch.Default())
	assert.InDelta(t, -31.77, concert[0].CentsOff, 0.01)

	verdi, ok := pitch.TuningByID("a432")
	require.True(t, ok)
	scaled := scale.Generate(432.0, verdi)
	assert.InDelta(t, 0.0, scaled[0].CentsOff, 1e-9)
	assert.Equal(t, "A4", scaled[0].Nearest.String())
}

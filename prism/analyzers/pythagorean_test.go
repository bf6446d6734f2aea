package analyzers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
	"github.com/RyanBlaney/vox-prisma/prism/analyzers"
)

// TestPythagoreanCircleOfFifths checks the fifths position and accidental
// derivation for a sharp key, a flat key, and the natural center.
func TestPythagoreanCircleOfFifths(t *testing.T) {
	pa := analyzers.NewPythagoreanAnalyzer(pitch.Default())

	a := pa.Analyze(220.0)
	assert.Equal(t, "A", a.Note.Name)
	assert.Equal(t, 3, a.FifthsPosition, "A sits three fifths above C")
	assert.Equal(t, 3, a.Accidentals)
	assert.Equal(t, "sharp", a.AccidentalType)

	c := pa.Analyze(261.6255653005986)
	assert.Equal(t, "C", c.Note.Name)
	assert.Equal(t, 0, c.FifthsPosition)
	assert.Equal(t, 0, c.Accidentals)
	assert.Equal(t, "none", c.AccidentalType)

	f := pa.Analyze(349.23)
	assert.Equal(t, "F", f.Note.Name)
	assert.Equal(t, 11, f.FifthsPosition, "F is eleven fifths up, i.e. one fifth down")
	assert.Equal(t, 1, f.Accidentals)
	assert.Equal(t, "flat", f.AccidentalType)
}

// TestPythagoreanIntervals verifies the comma and the pure intervals on the
// fundamental.
func TestPythagoreanIntervals(t *testing.T) {
	pa := analyzers.NewPythagoreanAnalyzer(pitch.Default())
	res := pa.Analyze(220.0)

	assert.Equal(t, "531441:524288", res.Comma.String())
	assert.InDelta(t, 23.46, res.Comma.Cents, 0.01)

	assert.InDelta(t, 293.3333333, res.PureFourthHz, 1e-6)
	assert.InDelta(t, 330.0, res.PureFifthHz, 1e-9)
	assert.InDelta(t, 440.0, res.OctaveHz, 1e-9)
}

// TestPythagoreanScaleAndDitone verifies the 3-limit scale on the
// fundamental and the syntonic gap against the just third.
func TestPythagoreanScaleAndDitone(t *testing.T) {
	pa := analyzers.NewPythagoreanAnalyzer(pitch.Default())
	res := pa.Analyze(220.0)

	require.Len(t, res.Scale, 8)
	assert.Equal(t, "81:64", res.Scale[2].Ratio.String())
	assert.InDelta(t, 278.4375, res.Scale[2].Hz, 1e-9, "the ditone above 220 Hz")
	assert.Equal(t, 440.0, res.Scale[7].Hz)

	assert.InDelta(t, 407.82, res.Ditone.PythagoreanCents, 0.01)
	assert.InDelta(t, 386.31, res.Ditone.JustCents, 0.01)
	assert.InDelta(t, 21.5063, res.Ditone.GapCents, 1e-3, "the gap is the syntonic comma")
}

package prism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/vox-prisma/prism"
)

// TestNarrativeShort verifies the one-line summary names the note, ranges,
// key, and mode.
func TestNarrativeShort(t *testing.T) {
	res, err := prism.Calculate(165.0)
	require.NoError(t, err)
	require.NotNil(t, res.Narrative)

	short := res.Narrative.Short
	assert.Contains(t, short, "165.0 Hz")
	assert.Contains(t, short, "E3")
	assert.Contains(t, short, "cents sharp", "165 Hz rides sharp of E3")
	assert.Contains(t, short, "Alto range")
	assert.Contains(t, short, "Madhya register")
	assert.Contains(t, short, "keyed E major")
	assert.Contains(t, short, "Phrygian mode")
}

// TestNarrativeMedium verifies the paragraph touches every framework.
func TestNarrativeMedium(t *testing.T) {
	res, err := prism.Calculate(220.0)
	require.NoError(t, err)
	require.NotNil(t, res.Narrative)

	medium := res.Narrative.Medium
	assert.Contains(t, medium, "Concert Standard")
	assert.Contains(t, medium, "MIDI 57.00")
	assert.Contains(t, medium, "organum voices")
	assert.Contains(t, medium, "Pythagorean comma")
	assert.Contains(t, medium, "harmonics 7, 11, 13 and 14")
	assert.Contains(t, medium, "alpha rates")
	assert.Contains(t, medium, "small bowl", "220 Hz opens the small-bowl band")
}

// TestNarrativeDeterminism verifies repeated runs render identical prose.
func TestNarrativeDeterminism(t *testing.T) {
	a, err := prism.Calculate(307.7)
	require.NoError(t, err)
	b, err := prism.Calculate(307.7)
	require.NoError(t, err)

	assert.Equal(t, a.Narrative.Short, b.Narrative.Short)
	assert.Equal(t, a.Narrative.Medium, b.Narrative.Medium)
}

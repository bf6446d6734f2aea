package shruti_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/vox-prisma/algorithms/shruti"
)

// TestTableShape verifies the inclusive octave span: 23 entries from Sa at
// 1:1 to Sa' at 2:1, strictly ascending in cents.
func TestTableShape(t *testing.T) {
	tab := shruti.Table()
	require.Len(t, tab, 23)

	assert.Equal(t, "Sa", tab[0].Label)
	assert.Equal(t, "1:1", tab[0].Ratio.String())
	assert.Equal(t, "Sa'", tab[22].Label)
	assert.Equal(t, "2:1", tab[22].Ratio.String())
	assert.InDelta(t, 1200.0, tab[22].Ratio.Cents, 1e-9)

	for i := 1; i < len(tab); i++ {
		assert.Greater(t, tab[i].Ratio.Cents, tab[i-1].Ratio.Cents,
			"cents must ascend strictly at %s", tab[i].Label)
		assert.Equal(t, i+1, tab[i].Index, "indexes are 1-based and dense")
	}
}

// TestTableSpotValues pins a handful of classical shruti ratios.
func TestTableSpotValues(t *testing.T) {
	tab := shruti.Table()

	assert.Equal(t, "256:243", tab[1].Ratio.String(), "Re1 is the Pythagorean limma")
	assert.InDelta(t, 90.22, tab[1].Ratio.Cents, 0.01)

	assert.Equal(t, "Pa", tab[13].Label)
	assert.Equal(t, "3:2", tab[13].Ratio.String(), "Pa is the pure fifth")
	assert.InDelta(t, 701.955, tab[13].Ratio.Cents, 1e-3)

	assert.Equal(t, "Ga3", tab[7].Label)
	assert.Equal(t, "5:4", tab[7].Ratio.String())

	assert.Equal(t, "Ma3", tab[11].Label)
	assert.Equal(t, "45:32", tab[11].Ratio.String(), "tivra Ma")

	assert.Equal(t, "Ni2", tab[19].Label)
	assert.Equal(t, "9:5", tab[19].Ratio.String())
}

// TestByIndex covers lookup plus both out-of-range sides.
func TestByIndex(t *testing.T) {
	s, ok := shruti.ByIndex(14)
	require.True(t, ok)
	assert.Equal(t, "Pa", s.Label)

	_, ok = shruti.ByIndex(0)
	assert.False(t, ok)
	_, ok = shruti.ByIndex(24)
	assert.False(t, ok)
}

// TestTableImmutable verifies that mutating a returned table does not leak
// into later calls.
func TestTableImmutable(t *testing.T) {
	tab := shruti.Table()
	tab[0].Label = "mutated"
	assert.Equal(t, "Sa", shruti.Table()[0].Label)
}

// TestRagaCatalog verifies every raga is a well-formed ascending octave
// selection of eight shrutis.
func TestRagaCatalog(t *testing.T) {
	all := shruti.Ragas()
	require.Len(t, all, 5)

	for _, r := range all {
		require.Len(t, r.Shrutis, 8, "raga %s must span eight degrees", r.Name)
		assert.Equal(t, 1, r.Shrutis[0], "raga %s opens on Sa", r.Name)
		assert.Equal(t, 23, r.Shrutis[7], "raga %s closes on Sa'", r.Name)
		for i := 1; i < len(r.Shrutis); i++ {
			assert.Greater(t, r.Shrutis[i], r.Shrutis[i-1], "raga %s must ascend", r.Name)
		}
		for _, idx := range r.Shrutis {
			_, ok := shruti.ByIndex(idx)
			assert.True(t, ok, "raga %s index %d must resolve", r.Name, idx)
		}
	}
}

// TestBilawalMatchesJustScale checks that Bilawal selects exactly the just
// major ratios.
func TestBilawalMatchesJustScale(t *testing.T) {
	all := shruti.Ragas()
	var bilawal shruti.Raga
	for _, r := range all {
		if r.Name == "Bilawal" {
			bilawal = r
		}
	}
	require.NotEmpty(t, bilawal.Name, "Bilawal must be in the catalog")

	want := []string{"1:1", "9:8", "5:4", "4:3", "3:2", "5:3", "15:8", "2:1"}
	for i, idx := range bilawal.Shrutis {
		s, ok := shruti.ByIndex(idx)
		require.True(t, ok)
		assert.Equal(t, want[i], s.Ratio.String(), "degree %d", i+1)
	}
}

// TestRagasImmutable verifies deep-copy semantics of the catalog accessor.
func TestRagasImmutable(t *testing.T) {
	all := shruti.Ragas()
	all[0].Shrutis[0] = 99
	assert.Equal(t, 1, shruti.Ragas()[0].Shrutis[0], "Ragas must deep-copy index lists")
}

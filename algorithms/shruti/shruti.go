// Package shruti defines the 22-shruti microtonal pitch table of Hindustani
// theory and a small catalog of ragas expressed as subsets of it. The table
// spans one octave inclusively, Sa through Sa', so it carries 23 entries.
package shruti

import "github.com/RyanBlaney/vox-prisma/algorithms/ratios"

// Shruti is one microtonal position within the octave. Position numbers the
// variant within its parent svara; the fixed svaras Sa and Pa have a single
// variant.
type Shruti struct {
	Index    int          `json:"index"` // 1-23
	Label    string       `json:"label"`
	Svara    string       `json:"svara"`
	Position int          `json:"position"`
	Ratio    ratios.Ratio `json:"ratio"`
}

// table lists the classical 22 shrutis plus the closing octave, as exact
// ratios. Cents ascend strictly from 0 to 1200.
var table = []Shruti{
	{1, "Sa", "Sa", 1, ratios.New(1, 1)},
	{2, "Re1", "Re", 1, ratios.New(256, 243)},
	{3, "Re2", "Re", 2, ratios.New(16, 15)},
	{4, "Re3", "Re", 3, ratios.New(10, 9)},
	{5, "Re4", "Re", 4, ratios.New(9, 8)},
	{6, "Ga1", "Ga", 1, ratios.New(32, 27)},
	{7, "Ga2", "Ga", 2, ratios.New(6, 5)},
	{8, "Ga3", "Ga", 3, ratios.New(5, 4)},
	{9, "Ga4", "Ga", 4, ratios.New(81, 64)},
	{10, "Ma1", "Ma", 1, ratios.New(4, 3)},
	{11, "Ma2", "Ma", 2, ratios.New(27, 20)},
	{12, "Ma3", "Ma", 3, ratios.New(45, 32)},
	{13, "Ma4", "Ma", 4, ratios.New(729, 512)},
	{14, "Pa", "Pa", 1, ratios.New(3, 2)},
	{15, "Dha1", "Dha", 1, ratios.New(128, 81)},
	{16, "Dha2", "Dha", 2, ratios.New(8, 5)},
	{17, "Dha3", "Dha", 3, ratios.New(5, 3)},
	{18, "Dha4", "Dha", 4, ratios.New(27, 16)},
	{19, "Ni1", "Ni", 1, ratios.New(16, 9)},
	{20, "Ni2", "Ni", 2, ratios.New(9, 5)},
	{21, "Ni3", "Ni", 3, ratios.New(15, 8)},
	{22, "Ni4", "Ni", 4, ratios.New(243, 128)},
	{23, "Sa'", "Sa", 1, ratios.New(2, 1)},
}

// Table returns all 23 entries in ascending order. The returned slice is a
// copy.
func Table() []Shruti {
	out := make([]Shruti, len(table))
	copy(out, table)
	return out
}

// ByIndex returns the shruti with the given 1-based index. The second return
// is false when the index is out of range.
func ByIndex(index int) (Shruti, bool) {
	if index < 1 || index > len(table) {
		return Shruti{}, false
	}
	return table[index-1], true
}

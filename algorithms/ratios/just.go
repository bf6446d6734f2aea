package ratios

// ScaleDegree is one step of an eight-degree diatonic scale, named in both
// the sargam and solfege systems, with its exact intonation ratio.
type ScaleDegree struct {
	Degree  int    `json:"degree"` // 1-8
	Svara   string `json:"svara"`
	Solfege string `json:"solfege"`
	Name    string `json:"name"`
	Ratio   Ratio  `json:"ratio"`
}

// justScale is the 5-limit just major scale. The thirds, sixths, and
// sevenths carry factors of 5, which is what separates it from the
// Pythagorean table.
var justScale = []ScaleDegree{
	{1, "Sa", "Do", "Unison", New(1, 1)},
	{2, "Re", "Re", "Major Second", New(9, 8)},
	{3, "Ga", "Mi", "Major Third", New(5, 4)},
	{4, "Ma", "Fa", "Perfect Fourth", New(4, 3)},
	{5, "Pa", "Sol", "Perfect Fifth", New(3, 2)},
	{6, "Dha", "La", "Major Sixth", New(5, 3)},
	{7, "Ni", "Ti", "Major Seventh", New(15, 8)},
	{8, "Sa'", "Do'", "Octave", New(2, 1)},
}

// JustScale returns the eight degrees of the 5-limit just major scale. The
// returned slice is a copy.
func JustScale() []ScaleDegree {
	out := make([]ScaleDegree, len(justScale))
	copy(out, justScale)
	return out
}

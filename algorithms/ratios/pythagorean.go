package ratios

// pythagoreanScale is the 3-limit major scale built from stacked pure
// fifths. Every term is a power of 2 and 3, so the thirds and sevenths come
// out wider than their just counterparts by a syntonic comma.
var pythagoreanScale = []ScaleDegree{
	{1, "Sa", "Do", "Unison", New(1, 1)},
	{2, "Re", "Re", "Major Second", New(9, 8)},
	{3, "Ga", "Mi", "Major Third", New(81, 64)},
	{4, "Ma", "Fa", "Perfect Fourth", New(4, 3)},
	{5, "Pa", "Sol", "Perfect Fifth", New(3, 2)},
	{6, "Dha", "La", "Major Sixth", New(27, 16)},
	{7, "Ni", "Ti", "Major Seventh", New(243, 128)},
	{8, "Sa'", "Do'", "Octave", New(2, 1)},
}

// PythagoreanScale returns the eight degrees of the 3-limit major scale. The
// returned slice is a copy.
func PythagoreanScale() []ScaleDegree {
	out := make([]ScaleDegree, len(pythagoreanScale))
	copy(out, pythagoreanScale)
	return out
}

// PythagoreanComma is the excess of twelve pure fifths over seven octaves,
// 3^12 : 2^19, about 23.46 cents. It is the reason a circle of pure fifths
// never closes.
func PythagoreanComma() Ratio {
	return New(531441, 524288)
}

// SyntonicComma is the gap between the Pythagorean major third 81:64 and the
// just major third 5:4, i.e. 81:80, about 21.51 cents.
func SyntonicComma() Ratio {
	return New(81, 80)
}

package bands

// VocalRange is a voice classification by fundamental frequency.
type VocalRange struct {
	Band
	Description string `json:"description"`
}

// vocalRanges spans 65-400 Hz. The table is nominally bounded: fundamentals
// above 400 Hz still classify as soprano by the clamping lookup contract.
var vocalRanges = []VocalRange{
	{Band{"Bass", 65, 100}, "the lowest male voice, dark and weighty"},
	{Band{"Baritone", 100, 130}, "the common male voice, warm and full"},
	{Band{"Tenor", 130, 165}, "the high male voice, bright and carrying"},
	{Band{"Alto", 165, 220}, "the low female voice, rich and rounded"},
	{Band{"Mezzo-Soprano", 220, 265}, "the middle female voice, flexible and expressive"},
	{Band{"Soprano", 265, 400}, "the high female voice, brilliant and soaring"},
}

var vocalBands = func() []Band {
	out := make([]Band, len(vocalRanges))
	for i, v := range vocalRanges {
		out[i] = v.Band
	}
	return out
}()

// VocalRanges returns the vocal classification table. The returned slice is
// a copy.
func VocalRanges() []VocalRange {
	out := make([]VocalRange, len(vocalRanges))
	copy(out, vocalRanges)
	return out
}

// VocalRangeFor classifies a fundamental frequency into its vocal range.
func VocalRangeFor(hz float64) VocalRange {
	return vocalRanges[Locate(vocalBands, hz)]
}

package bands

// KeySignature describes a major key: its accidental count and type, its
// relative minor, and its enharmonic twin where one is in common use.
type KeySignature struct {
	Tonic         string `json:"tonic"`
	PitchClass    int    `json:"pitch_class"`
	Accidentals   int    `json:"accidentals"`
	Type          string `json:"type"` // sharp, flat, or none
	RelativeMinor string `json:"relative_minor"`
	Enharmonic    string `json:"enharmonic,omitempty"`
}

// keySignatures lists the eight sharp-side and six flat-side keys in circle
// of fifths order.
var keySignatures = []KeySignature{
	{"C", 0, 0, "none", "A minor", ""},
	{"G", 7, 1, "sharp", "E minor", ""},
	{"D", 2, 2, "sharp", "B minor", ""},
	{"A", 9, 3, "sharp", "F# minor", ""},
	{"E", 4, 4, "sharp", "C# minor", ""},
	{"B", 11, 5, "sharp", "G# minor", ""},
	{"F#", 6, 6, "sharp", "D# minor", "Gb"},
	{"C#", 1, 7, "sharp", "A# minor", "Db"},
	{"F", 5, 1, "flat", "D minor", ""},
	{"Bb", 10, 2, "flat", "G minor", ""},
	{"Eb", 3, 3, "flat", "C minor", ""},
	{"Ab", 8, 4, "flat", "F minor", ""},
	{"Db", 1, 5, "flat", "Bb minor", "C#"},
	{"Gb", 6, 6, "flat", "Eb minor", "F#"},
}

// preferredTonic picks the conventional spelling per pitch class: flat keys
// where they carry fewer accidentals (Db over C#), F# over Gb by common use.
var preferredTonic = [12]string{
	"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B",
}

// KeySignatures returns all fourteen named keys. The returned slice is a
// copy.
func KeySignatures() []KeySignature {
	out := make([]KeySignature, len(keySignatures))
	copy(out, keySignatures)
	return out
}

// KeySignatureForClass returns the conventional major key for a pitch class.
// Out-of-range classes are normalized modulo 12.
func KeySignatureForClass(class int) KeySignature {
	tonic := preferredTonic[((class%12)+12)%12]
	for _, ks := range keySignatures {
		if ks.Tonic == tonic {
			return ks
		}
	}
	// Unreachable: every preferred tonic is in the table.
	return keySignatures[0]
}

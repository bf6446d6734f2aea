package bands

// Mode is one of the seven diatonic church modes.
type Mode struct {
	Name    string `json:"name"`
	Degree  int    `json:"degree"`  // 1-7, position of the final in the diatonic series
	Quality string `json:"quality"` // major, minor, or diminished
	Ethos   string `json:"ethos"`
}

var modes = []Mode{
	{"Ionian", 1, "major", "open and affirming, the plain major scale"},
	{"Dorian", 2, "minor", "serious yet hopeful, the first mode of the medieval system"},
	{"Phrygian", 3, "minor", "austere and penitential, marked by the lowered second"},
	{"Lydian", 4, "major", "radiant and unresolved, floating on the raised fourth"},
	{"Mixolydian", 5, "major", "pastoral and grounded, the major scale with a softened seventh"},
	{"Aeolian", 6, "minor", "melancholic and inward, the plain natural minor"},
	{"Locrian", 7, "diminished", "unstable and rarely sung, its final refuses to rest"},
}

// modeByClass maps the 12 pitch classes onto the 7 diatonic modes. Sharps
// inherit the mode of the natural step below them.
var modeByClass = [12]int{
	0, 0, // C, C#
	1, 1, // D, D#
	2,    // E
	3, 3, // F, F#
	4, 4, // G, G#
	5, 5, // A, A#
	6, // B
}

// Modes returns the seven mode records. The returned slice is a copy.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// ModeForClass returns the church mode whose final is the given pitch class.
// Out-of-range classes are normalized modulo 12.
func ModeForClass(class int) Mode {
	return modes[modeByClass[((class%12)+12)%12]]
}

package pitch

// Tuning fixes the reference frequency of A4. Every conversion in the engine
// takes one, so an analysis at 432 Hz differs from one at 440 Hz only through
// this value.
type Tuning struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	A4          float64 `json:"a4_hz"`
	Description string  `json:"description"`
}

// tunings is the closed registry of supported standards, ordered by
// historical relevance rather than pitch.
var tunings = []Tuning{
	{
		ID:          "a440",
		Name:        "Concert Standard",
		A4:          440.0,
		Description: "ISO 16 concert pitch, the modern international standard",
	},
	{
		ID:          "a432",
		Name:        "Verdi Tuning",
		A4:          432.0,
		Description: "so-called scientific pitch, favored in sound-healing traditions",
	},
	{
		ID:          "a415",
		Name:        "Baroque Pitch",
		A4:          415.0,
		Description: "historically informed performance pitch, roughly a semitone below modern",
	},
	{
		ID:          "a466",
		Name:        "Chorton",
		A4:          466.0,
		Description: "high church pitch of the German baroque, roughly a semitone above modern",
	},
	{
		ID:          "a435",
		Name:        "Diapason Normal",
		A4:          435.0,
		Description: "French legal standard of 1859",
	},
	{
		ID:          "a444",
		Name:        "Modern Bright",
		A4:          444.0,
		Description: "elevated orchestral pitch used by some contemporary ensembles",
	},
}

// Tunings returns the supported tuning standards in registry order. The
// returned slice is a copy; callers may reorder it freely.
func Tunings() []Tuning {
	out := make([]Tuning, len(tunings))
	copy(out, tunings)
	return out
}

// TuningByID looks up a tuning standard by its identifier. The second return
// is false when the ID is not registered.
func TuningByID(id string) (Tuning, bool) {
	for _, t := range tunings {
		if t.ID == id {
			return t, true
		}
	}
	return Tuning{}, false
}

// Default returns the concert-standard A440 tuning.
func Default() Tuning {
	return tunings[0]
}

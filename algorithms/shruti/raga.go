package shruti

// Raga is a melodic framework expressed as an ascending selection of shruti
// indexes, always opening on Sa (1) and closing on Sa' (23).
type Raga struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Shrutis     []int  `json:"shrutis"` // 1-based indexes into the table
}

// ragas is a small catalog of common thaat-defining ragas. Indexes follow
// the table above; komal variants pick the lower shruti of a svara, tivra Ma
// picks 45:32.
var ragas = []Raga{
	{
		Name:        "Bilawal",
		Description: "all shuddha svaras, the Hindustani parallel of the just major scale",
		Shrutis:     []int{1, 5, 8, 10, 14, 17, 21, 23},
	},
	{
		Name:        "Yaman",
		Description: "tivra Ma lends the Lydian color of the evening",
		Shrutis:     []int{1, 5, 8, 12, 14, 17, 21, 23},
	},
	{
		Name:        "Bhairav",
		Description: "komal Re and komal Dha, the solemn dawn raga",
		Shrutis:     []int{1, 3, 8, 10, 14, 16, 21, 23},
	},
	{
		Name:        "Kafi",
		Description: "komal Ga and komal Ni, close to the Dorian mode",
		Shrutis:     []int{1, 5, 7, 10, 14, 17, 20, 23},
	},
	{
		Name:        "Bhairavi",
		Description: "all four komal svaras, close to the Phrygian mode",
		Shrutis:     []int{1, 3, 7, 10, 14, 16, 20, 23},
	},
}

// Ragas returns the raga catalog. Both the slice and each raga's index list
// are copies.
func Ragas() []Raga {
	out := make([]Raga, len(ragas))
	for i, r := range ragas {
		idx := make([]int, len(r.Shrutis))
		copy(idx, r.Shrutis)
		out[i] = Raga{Name: r.Name, Description: r.Description, Shrutis: idx}
	}
	return out
}

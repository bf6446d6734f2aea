package analyzers

import (
	"github.com/RyanBlaney/vox-prisma/algorithms/bands"
	"github.com/RyanBlaney/vox-prisma/algorithms/ratios"
	"github.com/RyanBlaney/vox-prisma/algorithms/shruti"
)

// ShrutiTone is one microtonal table entry scaled onto the fundamental.
type ShrutiTone struct {
	Index int          `json:"index"`
	Label string       `json:"label"`
	Svara string       `json:"svara"`
	Ratio ratios.Ratio `json:"ratio"`
	Hz    float64      `json:"hz"`
}

// ShrutiScale carries the full 23-tone ladder on the fundamental.
type ShrutiScale struct {
	Scale []ShrutiTone `json:"scale"`
}

// RagaPlan is a raga realized as concrete frequencies on the fundamental.
type RagaPlan struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Tones       []ShrutiTone `json:"tones"`
}

// A432Facts carries the two arithmetic identities behind the 432 Hz lore:
// its 9:5 relation to 240 Hz and the fundamental whose just major seventh
// lands exactly on 432 Hz.
type A432Facts struct {
	RatioTo240        ratios.Ratio `json:"ratio_to_240"`
	JustSeventhRootHz float64      `json:"just_seventh_root_hz"` // 432 * 8/15
}

// VedicResult places the fundamental in the Hindustani system: octave
// register, chakra correspondence, the 22-shruti ladder, and raga subsets,
// all scaled to concrete frequencies.
type VedicResult struct {
	Saptak bands.Saptak `json:"saptak"`
	Chakra bands.Chakra `json:"chakra"`
	Shruti ShrutiScale  `json:"shruti"`
	Ragas  []RagaPlan   `json:"ragas"`
	A432   A432Facts    `json:"a432"`
}

// VedicAnalyzer views a fundamental through shruti intonation. It needs no
// tuning reference: everything here is built from exact ratios on f0.
type VedicAnalyzer struct{}

// NewVedicAnalyzer creates a Vedic analyzer.
func NewVedicAnalyzer() *VedicAnalyzer {
	return &VedicAnalyzer{}
}

// scaleTone realizes one shruti on the fundamental.
func scaleTone(s shruti.Shruti, f0 float64) ShrutiTone {
	return ShrutiTone{
		Index: s.Index,
		Label: s.Label,
		Svara: s.Svara,
		Ratio: s.Ratio,
		Hz:    f0 * s.Ratio.Decimal,
	}
}

// Analyze builds the shruti ladder and raga plans on f0 and classifies its
// register and chakra band.
func (va *VedicAnalyzer) Analyze(f0 float64) *VedicResult {
	tab := shruti.Table()
	ladder := make([]ShrutiTone, len(tab))
	for i, s := range tab {
		ladder[i] = scaleTone(s, f0)
	}

	catalog := shruti.Ragas()
	plans := make([]RagaPlan, len(catalog))
	for i, r := range catalog {
		tones := make([]ShrutiTone, len(r.Shrutis))
		for j, idx := range r.Shrutis {
			s, _ := shruti.ByIndex(idx)
			tones[j] = scaleTone(s, f0)
		}
		plans[i] = RagaPlan{Name: r.Name, Description: r.Description, Tones: tones}
	}

	return &VedicResult{
		Saptak: bands.SaptakFor(f0),
		Chakra: bands.ChakraFor(f0),
		Shruti: ShrutiScale{Scale: ladder},
		Ragas:  plans,
		A432: A432Facts{
			RatioTo240:        ratios.Approximate(432.0/240.0, 32),
			JustSeventhRootHz: 432.0 * 8.0 / 15.0,
		},
	}
}

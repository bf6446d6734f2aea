package bands

import "math"

// Chakra is an energy center associated with a frequency band in modern
// sound-healing practice, carrying its traditional correspondences.
type Chakra struct {
	Band
	Sanskrit string `json:"sanskrit"`
	English  string `json:"english"`
	Bija     string `json:"bija"`
	Element  string `json:"element"`
	Color    string `json:"color"`
}

var chakras = []Chakra{
	{Band{"Muladhara", 50, 100}, "Muladhara", "Root", "LAM", "Earth", "red"},
	{Band{"Svadhisthana", 100, 150}, "Svadhisthana", "Sacral", "VAM", "Water", "orange"},
	{Band{"Manipura", 150, 200}, "Manipura", "Solar Plexus", "RAM", "Fire", "yellow"},
	{Band{"Anahata", 200, 250}, "Anahata", "Heart", "YAM", "Air", "green"},
	{Band{"Vishuddha", 250, 320}, "Vishuddha", "Throat", "HAM", "Ether", "blue"},
	{Band{"Ajna", 320, 440}, "Ajna", "Third Eye", "OM", "Light", "indigo"},
	{Band{"Sahasrara", 440, math.Inf(1)}, "Sahasrara", "Crown", "AUM", "Consciousness", "violet"},
}

var chakraBands = func() []Band {
	out := make([]Band, len(chakras))
	for i, c := range chakras {
		out[i] = c.Band
	}
	return out
}()

// Chakras returns the seven chakra bands. The returned slice is a copy.
func Chakras() []Chakra {
	out := make([]Chakra, len(chakras))
	copy(out, chakras)
	return out
}

// ChakraFor classifies a fundamental frequency into its chakra band.
func ChakraFor(hz float64) Chakra {
	return chakras[Locate(chakraBands, hz)]
}

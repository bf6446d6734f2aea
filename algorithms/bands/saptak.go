package bands

import "math"

// Saptak is a Hindustani octave register.
type Saptak struct {
	Band
	Description string `json:"description"`
}

var saptaks = []Saptak{
	{Band{"Mandra", 50, 130}, "the low register, sung from the chest"},
	{Band{"Madhya", 130, 260}, "the middle register, the natural speaking range"},
	{Band{"Taar", 260, math.Inf(1)}, "the high register, sung from the head"},
}

var saptakBands = func() []Band {
	out := make([]Band, len(saptaks))
	for i, s := range saptaks {
		out[i] = s.Band
	}
	return out
}()

// Saptaks returns the three octave registers. The returned slice is a copy.
func Saptaks() []Saptak {
	out := make([]Saptak, len(saptaks))
	copy(out, saptaks)
	return out
}

// SaptakFor classifies a fundamental frequency into its register.
func SaptakFor(hz float64) Saptak {
	return saptaks[Locate(saptakBands, hz)]
}

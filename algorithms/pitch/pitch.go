// Package pitch implements the conversion kernel shared by every analysis
// framework: frequency to MIDI pitch, MIDI to frequency, note naming, and
// cents arithmetic. All conversions take an explicit Tuning so there is no
// hidden reference-pitch state; every function is pure and safe for
// concurrent use.
package pitch

import (
	"fmt"
	"math"
)

// pitchClassNames maps pitch class 0-11 to names, using sharps.
var pitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchClassName returns the name of a pitch class. Out-of-range values are
// normalized modulo 12.
func PitchClassName(class int) string {
	return pitchClassNames[((class%12)+12)%12]
}

// Note identifies an equal-tempered pitch: a pitch class plus an octave in
// scientific pitch notation (A4 = MIDI 69).
type Note struct {
	Class  int    `json:"class"`  // 0=C, 1=C#, ..., 11=B
	Name   string `json:"name"`   // pitch class name, sharps
	Octave int    `json:"octave"` // scientific octave number
	MIDI   int    `json:"midi"`   // rounded MIDI pitch
}

// String renders the note in scientific pitch notation, e.g. "A4".
func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Name, n.Octave)
}

// Nearest describes the equal-tempered pitch closest to a frequency.
type Nearest struct {
	Note     Note    `json:"note"`
	Hz       float64 `json:"hz"`
	CentsOff float64 `json:"cents_off"` // positive = input is sharp of the standard
}

// FreqToMIDI converts a frequency in Hz to a continuous MIDI pitch:
//
//	midi = 69 + 12*log2(freq/a4)
//
// The domain is freq > 0 with a positive A4 reference; violating it is a
// programming error and yields NaN rather than a recoverable runtime
// condition.
func FreqToMIDI(freq float64, tun Tuning) float64 {
	if freq <= 0 || tun.A4 <= 0 {
		return math.NaN()
	}
	return 69.0 + 12.0*math.Log2(freq/tun.A4)
}

// MIDIToFreq converts a continuous MIDI pitch back to Hz. Exact inverse of
// FreqToMIDI for any fixed tuning.
func MIDIToFreq(midi float64, tun Tuning) float64 {
	return tun.A4 * math.Pow(2.0, (midi-69.0)/12.0)
}

// roundMIDI rounds a continuous MIDI pitch to the nearest integer, with ties
// rounding toward +infinity. The tie rule only matters for inputs exactly
// between two semitones and must stay consistent across the engine.
func roundMIDI(midi float64) int {
	return int(math.Floor(midi + 0.5))
}

// FreqToNote names the equal-tempered pitch nearest to freq under the given
// tuning.
func FreqToNote(freq float64, tun Tuning) Note {
	midi := roundMIDI(FreqToMIDI(freq, tun))
	class := ((midi % 12) + 12) % 12
	return Note{
		Class:  class,
		Name:   pitchClassNames[class],
		Octave: int(math.Floor(float64(midi)/12.0)) - 1,
		MIDI:   midi,
	}
}

// NearestStandard returns the frequency of the equal-tempered pitch nearest
// to freq: MIDIToFreq(round(FreqToMIDI(freq))).
func NearestStandard(freq float64, tun Tuning) float64 {
	return MIDIToFreq(float64(roundMIDI(FreqToMIDI(freq, tun))), tun)
}

// NearestTo bundles the nearest-pitch lookup used throughout the analyzers:
// the named note, its exact frequency, and the signed cents offset of the
// input from it.
func NearestTo(freq float64, tun Tuning) Nearest {
	note := FreqToNote(freq, tun)
	hz := MIDIToFreq(float64(note.MIDI), tun)
	return Nearest{
		Note:     note,
		Hz:       hz,
		CentsOff: CentsBetween(freq, hz),
	}
}

// CentsBetween measures the signed interval from f2 to f1 in cents:
//
//	1200*log2(f1/f2)
//
// Positive means f1 is sharp of f2; CentsBetween(f, f) = 0 and
// CentsBetween(2f, f) = 1200.
func CentsBetween(f1, f2 float64) float64 {
	return 1200.0 * math.Log2(f1/f2)
}

// RatioToCents converts a frequency ratio to cents.
func RatioToCents(r float64) float64 {
	return 1200.0 * math.Log2(r)
}

// CentsToRatio converts cents to a frequency ratio. Mutual inverse of
// RatioToCents.
func CentsToRatio(c float64) float64 {
	return math.Pow(2.0, c/1200.0)
}

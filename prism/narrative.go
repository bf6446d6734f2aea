package prism

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/RyanBlaney/vox-prisma/algorithms/common"
	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
)

// offsetPhrase renders a signed cents offset as prose.
func offsetPhrase(cents float64) string {
	direction := "sharp"
	if cents < 0 {
		direction = "flat"
	}
	return fmt.Sprintf("%.1f cents %s", math.Abs(cents), direction)
}

// joinInts renders a list like "7, 11, 13 and 14".
func joinInts(ns []int) string {
	if len(ns) == 0 {
		return ""
	}
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

// buildNarrative renders the short and medium prose summaries from an
// already-complete result. Templated and deterministic: equal results give
// equal narratives.
func buildNarrative(r *Result, thresholdCents float64) Narrative {
	in := r.Input
	fw := r.Frameworks

	short := fmt.Sprintf("%s Hz sounds nearest %s (%s): %s range, %s register, keyed %s major in the %s mode.",
		pitch.FormatHz(in.FrequencyHz),
		in.Nearest.Note,
		offsetPhrase(in.Nearest.CentsOff),
		fw.Western.Vocal.Name,
		fw.Vedic.Saptak.Name,
		fw.Western.Key.Tonic,
		fw.Gregorian.Mode.Name,
	)

	centsOff := make([]float64, len(r.Scale))
	hzs := make([]float64, len(r.Scale))
	for i, d := range r.Scale {
		centsOff[i] = d.CentsOff
		hzs[i] = d.Hz
	}
	loHz, hiHz := common.Span(hzs)

	var b strings.Builder
	fmt.Fprintf(&b, "Under the %s tuning (A4 = %s Hz), %s Hz reads as MIDI %.2f, nearest %s at %s Hz, %s. ",
		in.Tuning.Name,
		pitch.FormatHz(in.Tuning.A4),
		pitch.FormatHz(in.FrequencyHz),
		in.MIDI,
		in.Nearest.Note,
		pitch.FormatHz(in.Nearest.Hz),
		offsetPhrase(in.Nearest.CentsOff),
	)
	fmt.Fprintf(&b, "Its just scale spans %s to %s Hz and sits %.1f cents from the tempered grid on average. ",
		pitch.FormatHz(loHz),
		pitch.FormatHz(hiHz),
		common.MeanAbs(centsOff),
	)
	fmt.Fprintf(&b, "Sung as a chant final it takes the %s mode, with organum voices at %s, %s and %s Hz. ",
		fw.Gregorian.Mode.Name,
		pitch.FormatHz(fw.Gregorian.Organum[1].Hz),
		pitch.FormatHz(fw.Gregorian.Organum[2].Hz),
		pitch.FormatHz(fw.Gregorian.Organum[3].Hz),
	)
	fmt.Fprintf(&b, "Twelve pure fifths from this tone overshoot seven octaves by the %.2f cent Pythagorean comma. ",
		fw.Pythagorean.Comma.Cents,
	)
	if len(fw.Tibetan.FlaggedHarmonics) > 0 {
		fmt.Fprintf(&b, "Struck as a %s bowl, its harmonics %s stray beyond %.0f cents of any tempered key. ",
			strings.ToLower(fw.Tibetan.Bowl.Name),
			joinInts(fw.Tibetan.FlaggedHarmonics),
			thresholdCents,
		)
	} else {
		fmt.Fprintf(&b, "Struck as a %s bowl, every computed harmonic stays within reach of the tempered keyboard. ",
			strings.ToLower(fw.Tibetan.Bowl.Name),
		)
	}
	alpha := fw.Neuroscience.Bands[2]
	fmt.Fprintf(&b, "Droned against a companion near %s Hz it beats at alpha rates, %s.",
		pitch.FormatHz(alpha.CompanionHz),
		alpha.Band.State,
	)

	return Narrative{Short: short, Medium: b.String()}
}

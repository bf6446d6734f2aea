package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
	"github.com/RyanBlaney/vox-prisma/algorithms/scale"
	"github.com/RyanBlaney/vox-prisma/prism"
	"github.com/RyanBlaney/vox-prisma/prism/analyzers"
	"github.com/RyanBlaney/vox-prisma/verification"
)

// render dispatches on the requested output format, using the provided
// renderer for the human-readable form.
func render(v any, format string, text func() string) (string, error) {
	switch format {
	case "json":
		return renderJSON(v)
	case "yaml":
		return renderYAML(v)
	case "text", "":
		return text(), nil
	default:
		return "", fmt.Errorf("unsupported format %q (want text, json, or yaml)", format)
	}
}

func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal json: %w", err)
	}
	return string(data), nil
}

// renderYAML round-trips through the JSON form so YAML keys match the
// documented snake_case JSON fields.
func renderYAML(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal json: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("rebuild document: %w", err)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	return string(data), nil
}

// accidentalPhrase renders an accidental count as prose.
func accidentalPhrase(n int, typ string) string {
	switch {
	case n == 0:
		return "no accidentals"
	case n == 1:
		return fmt.Sprintf("1 %s", typ)
	default:
		return fmt.Sprintf("%d %ss", n, typ)
	}
}

func formatScaleTable(degs []scale.Degree) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tsvara\tsolfege\tratio\thz\tnearest\tcents")
	for _, d := range degs {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\t%s\t%+.1f\n",
			d.Degree, d.Svara, d.Solfege, d.Ratio, pitch.FormatHz(d.Hz), d.Nearest, d.CentsOff)
	}
	w.Flush()
	return sb.String()
}

func formatHarmonicsTable(hs []analyzers.Harmonic) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  n\thz\tnote\tinterval\tcents vs ET\t")
	for _, h := range hs {
		flag := ""
		if h.Flagged {
			flag = "*"
		}
		interval := h.Interval
		if h.Octaves > 0 && h.Interval != "Octave" {
			interval = fmt.Sprintf("%s +%doct", h.Interval, h.Octaves)
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%+.1f\t%s\n",
			h.N, pitch.FormatHz(h.Hz), h.Note, interval, h.ETDeviationCents, flag)
	}
	w.Flush()
	return sb.String()
}

func formatResultText(res *prism.Result) string {
	var b strings.Builder
	in := res.Input
	fw := res.Frameworks

	fmt.Fprintf(&b, "voxprisma %s: %s Hz under %s (A4 = %s Hz)\n",
		res.EngineVersion, pitch.FormatHz(in.FrequencyHz), in.Tuning.Name, pitch.FormatHz(in.Tuning.A4))
	b.WriteString(strings.Repeat("=", 64) + "\n")
	fmt.Fprintf(&b, "id %s   midi %.2f   nearest %s at %s Hz (%+.2f cents)\n",
		res.ID, in.MIDI, in.Nearest.Note, pitch.FormatHz(in.Nearest.Hz), in.Nearest.CentsOff)

	if res.Narrative != nil {
		fmt.Fprintf(&b, "\n%s\n", res.Narrative.Short)
	}

	b.WriteString("\nJust scale\n")
	b.WriteString(formatScaleTable(res.Scale))

	p := fw.Pythagorean
	b.WriteString("\nPythagorean\n")
	fmt.Fprintf(&b, "  %s sits %d fifths above C: %s\n",
		p.Note.Name, p.FifthsPosition, accidentalPhrase(p.Accidentals, p.AccidentalType))
	fmt.Fprintf(&b, "  pure fourth %s Hz, pure fifth %s Hz, octave %s Hz\n",
		pitch.FormatHz(p.PureFourthHz), pitch.FormatHz(p.PureFifthHz), pitch.FormatHz(p.OctaveHz))
	fmt.Fprintf(&b, "  comma %s = %.2f cents; ditone 81:64 runs %.1f cents past the just third\n",
		p.Comma, p.Comma.Cents, p.Ditone.GapCents)

	v := fw.Vedic
	b.WriteString("\nVedic\n")
	fmt.Fprintf(&b, "  saptak %s: %s\n", v.Saptak.Name, v.Saptak.Description)
	fmt.Fprintf(&b, "  chakra %s (%s), bija %s, element %s, color %s\n",
		v.Chakra.Sanskrit, v.Chakra.English, v.Chakra.Bija, v.Chakra.Element, v.Chakra.Color)
	fmt.Fprintf(&b, "  432/240 = %s (%.4f); 432 Hz is the just seventh of %s Hz\n",
		v.A432.RatioTo240, v.A432.RatioTo240.Decimal, pitch.FormatHz(v.A432.JustSeventhRootHz))
	b.WriteString("  shruti ladder\n")
	{
		w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "    #\tlabel\tratio\thz")
		for _, s := range v.Shruti.Scale {
			fmt.Fprintf(w, "    %d\t%s\t%s\t%s\n", s.Index, s.Label, s.Ratio, pitch.FormatHz(s.Hz))
		}
		w.Flush()
	}
	b.WriteString("  ragas\n")
	for _, r := range v.Ragas {
		hzs := make([]string, len(r.Tones))
		for i, tn := range r.Tones {
			hzs[i] = pitch.FormatHz(tn.Hz)
		}
		fmt.Fprintf(&b, "    %-9s %s\n", r.Name, strings.Join(hzs, " "))
	}

	g := fw.Gregorian
	b.WriteString("\nGregorian\n")
	fmt.Fprintf(&b, "  final %s takes the %s mode (%s): %s\n",
		g.Final, g.Mode.Name, g.Mode.Quality, g.Mode.Ethos)
	for _, voice := range g.Organum {
		fmt.Fprintf(&b, "  %-24s %s at %s Hz\n", voice.Name, voice.Ratio, pitch.FormatHz(voice.Hz))
	}

	wst := fw.Western
	b.WriteString("\nWestern\n")
	keyLine := fmt.Sprintf("  key %s major: %s, relative %s",
		wst.Key.Tonic, accidentalPhrase(wst.Key.Accidentals, wst.Key.Type), wst.Key.RelativeMinor)
	if wst.Key.Enharmonic != "" {
		keyLine += fmt.Sprintf(" (enharmonic %s major)", wst.Key.Enharmonic)
	}
	b.WriteString(keyLine + "\n")
	fmt.Fprintf(&b, "  vocal range %s (%.0f%% through %s-%s Hz)\n",
		wst.Vocal.Name, wst.Vocal.Percent, pitch.FormatHz(wst.Vocal.Min), pitch.FormatHz(wst.Vocal.Max))
	for _, tri := range wst.Triads {
		fmt.Fprintf(&b, "  %-3s %s-%s-%s (%s, %s, %s Hz)\n",
			tri.Numeral,
			tri.Tones[0].Note.Name, tri.Tones[1].Note.Name, tri.Tones[2].Note.Name,
			pitch.FormatHz(tri.Tones[0].Hz), pitch.FormatHz(tri.Tones[1].Hz), pitch.FormatHz(tri.Tones[2].Hz))
	}

	tb := fw.Tibetan
	b.WriteString("\nTibetan\n")
	fmt.Fprintf(&b, "  %s bowl: %s\n", strings.ToLower(tb.Bowl.Name), tb.Bowl.Description)
	b.WriteString(formatHarmonicsTable(tb.Harmonics))
	if len(tb.FlaggedHarmonics) > 0 {
		fmt.Fprintf(&b, "  * harmonics with no tempered neighbor within threshold\n")
	}

	n := fw.Neuroscience
	b.WriteString("\nNeuroscience\n")
	for _, plan := range n.Bands {
		below := fmt.Sprintf("(%s, %s] Hz", pitch.FormatHz(plan.Below.LowHz), pitch.FormatHz(plan.Below.HighHz))
		if !plan.Below.Feasible {
			below = "infeasible below"
		}
		fmt.Fprintf(&b, "  %-6s %.1f-%.1f Hz beats: above [%s, %s) Hz, below %s; companion %s Hz (%s)\n",
			plan.Band.Name, plan.Band.LowHz, plan.Band.HighHz,
			pitch.FormatHz(plan.Above.LowHz), pitch.FormatHz(plan.Above.HighHz),
			below, pitch.FormatHz(plan.CompanionHz), plan.Band.State)
	}

	return b.String()
}

func formatReportText(rep *verification.Report, spectral *verification.SpectralResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "verification: %d passed, %d failed\n", rep.Passed, rep.Failed)
	b.WriteString(strings.Repeat("=", 64) + "\n")
	for _, c := range rep.Checks {
		status := "PASS"
		if !c.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "%s  %s\n      expected %.6f, got %.6f (tolerance %g)\n",
			status, c.Description, c.Expected, c.Actual, c.Tolerance)
	}

	if spectral != nil {
		status := "PASS"
		if !spectral.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "%s  spectral peak for %s Hz lands on bin %d (%s Hz, error %.3f Hz)\n",
			status, pitch.FormatHz(spectral.FrequencyHz), spectral.PeakBin,
			pitch.FormatHz(spectral.PeakHz), spectral.ErrorHz)
	}

	return b.String()
}

func formatTuningsText(tunings []pitch.Tuning) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tname\ta4\tdescription")
	for _, t := range tunings {
		fmt.Fprintf(w, "%s\t%s\t%s Hz\t%s\n", t.ID, t.Name, pitch.FormatHz(t.A4), t.Description)
	}
	w.Flush()
	return sb.String()
}

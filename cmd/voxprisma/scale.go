package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
	"github.com/RyanBlaney/vox-prisma/prism"
)

var scaleCmd = &cobra.Command{
	Use:   "scale <hz>",
	Short: "Print the just-intonation scale on a fundamental",
	Long: `Scale prints the eight-degree just major scale rooted on the given
fundamental, with each degree's exact frequency and its distance from the
nearest tempered pitch.

Examples:
  voxprisma scale 165
  voxprisma scale 220 --tuning a432 --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runScale,
}

func init() {
	rootCmd.AddCommand(scaleCmd)
}

func runScale(cmd *cobra.Command, args []string) error {
	f0, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parse frequency %q: %w", args[0], err)
	}

	an, err := prism.NewAnalyzer(analysisConfig())
	if err != nil {
		return err
	}
	res, err := an.Analyze(f0)
	if err != nil {
		return err
	}

	out, err := render(res.Scale, outputFormat(), func() string {
		tun := res.Input.Tuning
		header := fmt.Sprintf("just scale on %s Hz under %s (A4 = %s Hz)\n",
			pitch.FormatHz(f0), tun.Name, pitch.FormatHz(tun.A4))
		return header + formatScaleTable(res.Scale)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

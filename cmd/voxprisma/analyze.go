package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/vox-prisma/prism"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <hz>",
	Short: "Run all six framework analyses on a fundamental",
	Long: `Analyze reads a fundamental frequency in Hz (50-1000) and reports it
through every framework: Pythagorean, Vedic, Gregorian, Western, Tibetan,
and Neuroscience.

Examples:
  voxprisma analyze 220
  voxprisma analyze 165 --format json
  voxprisma analyze 432 --tuning a432`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
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

	out, err := render(res, outputFormat(), func() string { return formatResultText(res) })
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

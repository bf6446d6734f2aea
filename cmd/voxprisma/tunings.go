package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/vox-prisma/algorithms/pitch"
)

var tuningsCmd = &cobra.Command{
	Use:   "tunings",
	Short: "List the supported tuning standards",
	Args:  cobra.NoArgs,
	RunE:  runTunings,
}

func init() {
	rootCmd.AddCommand(tuningsCmd)
}

func runTunings(cmd *cobra.Command, args []string) error {
	tunings := pitch.Tunings()
	out, err := render(tunings, outputFormat(), func() string {
		return formatTuningsText(tunings)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/vox-prisma/prism"
	"github.com/RyanBlaney/vox-prisma/verification"
)

var (
	verifySpectral bool
	verifyProbeHz  float64
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Re-derive the engine's core identities",
	Long: `Verify recomputes the ten numeric identities the engine is built on
(conversion round trips, interval sizes, the commas, the 432 Hz facts) and
reports each. With --spectral it also synthesizes a sine at the probe
frequency and confirms the FFT peak lands within one bin.

The command exits non-zero if any check fails.

Examples:
  voxprisma verify
  voxprisma verify --spectral --probe 247.5`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&verifySpectral, "spectral", false, "also run the FFT synthesis cross-check")
	verifyCmd.Flags().Float64Var(&verifyProbeHz, "probe", 220.0, "probe frequency for the spectral cross-check")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	report := verification.Run()

	var spectral *verification.SpectralResult
	if verifySpectral {
		if verifyProbeHz < prism.MinFrequencyHz || verifyProbeHz > prism.MaxFrequencyHz {
			return fmt.Errorf("probe frequency %g Hz not in [%g, %g]",
				verifyProbeHz, prism.MinFrequencyHz, prism.MaxFrequencyHz)
		}
		spectral = verification.SpectralCheck(verifyProbeHz)
	}

	payload := struct {
		*verification.Report
		Spectral *verification.SpectralResult `json:"spectral,omitempty"`
	}{report, spectral}

	out, err := render(payload, outputFormat(), func() string {
		return formatReportText(report, spectral)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if !report.AllPass() {
		return fmt.Errorf("verification failed: %d of %d checks", report.Failed, len(report.Checks))
	}
	if spectral != nil && !spectral.Pass {
		return fmt.Errorf("spectral cross-check failed at %g Hz", verifyProbeHz)
	}
	return nil
}

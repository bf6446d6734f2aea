package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/vox-prisma/logging"
	"github.com/RyanBlaney/vox-prisma/prism"
	"github.com/RyanBlaney/vox-prisma/prism/config"
)

var (
	flagConfig  string
	flagTuning  string
	flagFormat  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "voxprisma",
	Short: "Cross-tradition analysis of a fundamental frequency",
	Long: `voxprisma reads one fundamental frequency and reports how six musical
traditions would hear it: Pythagorean tuning mathematics, the Vedic
22-shruti system, Gregorian modal chant, common-practice Western theory,
Tibetan bowl overtones, and the neuroscience of binaural beats.

All analyses are deterministic: the same frequency under the same tuning
always produces byte-identical output.

Examples:
  voxprisma analyze 220
  voxprisma analyze 432 --tuning a432 --format json
  voxprisma scale 165
  voxprisma verify --spectral`,
	Version:       prism.EngineVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.SetVersionTemplate("voxprisma {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default $HOME/.voxprisma.yaml)")
	pf.StringVar(&flagTuning, "tuning", "", "tuning standard: a440, a432, a415, a466, a435, a444")
	pf.StringVarP(&flagFormat, "format", "f", "text", "output format: text, json, or yaml")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	_ = viper.BindPFlag("tuning", pf.Lookup("tuning"))
	_ = viper.BindPFlag("format", pf.Lookup("format"))
}

// initConfig wires the precedence chain: flags over VOXPRISMA_* environment
// variables over the config file over defaults.
func initConfig() {
	if flagConfig != "" {
		viper.SetConfigFile(flagConfig)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".voxprisma")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("VOXPRISMA")
	viper.AutomaticEnv()

	if flagVerbose {
		logging.SetLevel(logging.DebugLevel)
	}

	if err := viper.ReadInConfig(); err == nil {
		logging.Debug("loaded config file", logging.Fields{"file": viper.ConfigFileUsed()})
	}
}

// analysisConfig resolves the effective engine configuration from the
// precedence chain.
func analysisConfig() *config.AnalysisConfig {
	cfg := config.DefaultAnalysisConfig()
	if v := viper.GetString("tuning"); v != "" {
		cfg.TuningID = v
	}
	if viper.IsSet("max_harmonics") {
		cfg.MaxHarmonics = viper.GetInt("max_harmonics")
	}
	if viper.IsSet("deviation_threshold_cents") {
		cfg.DeviationThresholdCents = viper.GetFloat64("deviation_threshold_cents")
	}
	if viper.IsSet("gamma_cap_hz") {
		cfg.GammaCapHz = viper.GetFloat64("gamma_cap_hz")
	}
	if viper.IsSet("narrative") {
		cfg.IncludeNarrative = viper.GetBool("narrative")
	}
	return cfg
}

// outputFormat resolves the render format from the same chain.
func outputFormat() string {
	if v := viper.GetString("format"); v != "" {
		return v
	}
	return "text"
}

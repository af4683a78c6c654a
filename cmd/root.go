package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gopanchang/jyotish/internal/zodiac"
)

var rootCmd = &cobra.Command{
	Use:   "jyotish",
	Short: "Vedic astrology computation engine",
	Long: "Jyotish computes sidereal birth charts, Vimshottari dasha timelines,\n" +
		"the daily panchang with its auspicious and inauspicious windows, and\n" +
		"searches date ranges for favorable muhurats.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .jyotish.yaml)")
	rootCmd.PersistentFlags().Float64("lat", 0, "latitude, degrees north")
	rootCmd.PersistentFlags().Float64("lon", 0, "longitude, degrees east")
	rootCmd.PersistentFlags().Float64("tz", 0, "UTC offset in hours (IST is 5.5)")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".jyotish")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("JYOTISH")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// location resolves latitude, longitude and UTC offset: explicit flags win
// over config-file defaults.
func location(cmd *cobra.Command) (lat, lon, tz float64) {
	lat = viper.GetFloat64("location.latitude")
	lon = viper.GetFloat64("location.longitude")
	tz = viper.GetFloat64("location.utc_offset")
	if cmd.Flags().Changed("lat") {
		lat, _ = cmd.Flags().GetFloat64("lat")
	}
	if cmd.Flags().Changed("lon") {
		lon, _ = cmd.Flags().GetFloat64("lon")
	}
	if cmd.Flags().Changed("tz") {
		tz, _ = cmd.Flags().GetFloat64("tz")
	}
	return lat, lon, tz
}

// ayanamsaModel returns the configured precession model, defaulting to
// linear Lahiri.
func ayanamsaModel() zodiac.AyanamsaModel {
	m := zodiac.Lahiri()
	if viper.IsSet("ayanamsa.j2000") {
		m.J2000 = viper.GetFloat64("ayanamsa.j2000")
	}
	if viper.IsSet("ayanamsa.annual_rate") {
		m.AnnualRate = viper.GetFloat64("ayanamsa.annual_rate")
	}
	return m
}

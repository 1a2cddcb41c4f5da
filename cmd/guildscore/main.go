// Command guildscore scores a proposed plant guild against the
// reference corpus and its climate-tier calibration tables, and runs
// the calibration pipeline that produces those tables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"guildscore/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "guildscore",
		Short: "Score ecological plant guilds against a calibrated reference corpus",
	}

	rootCmd.AddCommand(
		newScoreCmd(),
		newCalibrateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return newApp(cfg)
}

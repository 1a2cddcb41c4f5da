package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"guildscore/adapters/calibration"
	"guildscore/adapters/calibstore"
)

func newCalibrateCmd() *cobra.Command {
	var seed int64
	var sampleSize int
	var guildSizePair int
	var guildSizeFull int

	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Run the sampling pipeline and persist a fresh calibration artifact",
		Long: `Run the C7 calibration pipeline: draw random guild samples per
climate tier and reduce them into percentile tables, then save the
resulting artifact to the configured store.

Example: guildscore calibrate --seed 42 --sample-size 20000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalibrate(cmd, seed, sampleSize, guildSizePair, guildSizeFull)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Base random seed")
	cmd.Flags().IntVar(&sampleSize, "sample-size", 20000, "Samples drawn per eligible tier")
	cmd.Flags().IntVar(&guildSizePair, "guild-size-pair", 2, "Guild size for pairwise-metric sampling")
	cmd.Flags().IntVar(&guildSizeFull, "guild-size-full", 7, "Guild size for full-guild metric sampling")

	cmd.AddCommand(newCalibrateVerifyCmd())

	return cmd
}

func runCalibrate(cmd *cobra.Command, seed int64, sampleSize, guildSizePair, guildSizeFull int) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	// Flags left unset fall back to the configured calibration defaults.
	if !cmd.Flags().Changed("seed") {
		seed = a.cfg.Calibration.Seed
	}
	if !cmd.Flags().Changed("sample-size") {
		sampleSize = a.cfg.Calibration.SampleSize
	}
	if !cmd.Flags().Changed("guild-size-pair") {
		guildSizePair = a.cfg.Calibration.GuildSizePair
	}
	if !cmd.Flags().Changed("guild-size-full") {
		guildSizeFull = a.cfg.Calibration.GuildSizeFull
	}

	artifact, err := a.pipeline.Run(seed, sampleSize, guildSizePair, guildSizeFull)
	if err != nil {
		return fmt.Errorf("run calibration pipeline: %w", err)
	}

	if err := a.store.Save(artifact); err != nil {
		return fmt.Errorf("save calibration artifact: %w", err)
	}

	fmt.Printf("calibration run %s complete: %d tiers calibrated, %d skipped\n",
		artifact.RunID, len(artifact.Tiers), len(artifact.Skipped))
	for tier, reason := range artifact.Skipped {
		fmt.Printf("  skipped %s: %s\n", tier, reason)
	}
	return nil
}

func newCalibrateVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check a saved calibration artifact's structural integrity",
		Long: `Verify checks tier coverage, metric-key completeness (canonical and
legacy), and percentile monotonicity against the artifact currently in
the configured store. Legacy-key completeness is checked only when the
store is the JSON file. Exits non-zero and lists every problem found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalibrateVerify()
		},
	}
}

func runCalibrateVerify() error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	artifact, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("load calibration artifact: %w", err)
	}

	var problems []string
	problems = append(problems, calibration.Verify(artifact)...)

	if jsonStore, ok := a.store.(calibstore.JSONStore); ok {
		data, err := os.ReadFile(jsonStore.Path)
		if err != nil {
			return fmt.Errorf("read calibration document: %w", err)
		}
		dualProblems, err := calibstore.VerifyDualNaming(data)
		if err != nil {
			return fmt.Errorf("verify dual naming: %w", err)
		}
		problems = append(problems, dualProblems...)
	}

	if len(problems) == 0 {
		fmt.Println("calibration artifact is sound")
		return nil
	}

	for _, p := range problems {
		fmt.Fprintln(os.Stderr, p)
	}
	return fmt.Errorf("%d integrity problem(s) found", len(problems))
}

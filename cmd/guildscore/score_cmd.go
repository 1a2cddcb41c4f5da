package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"guildscore/domain/core"
	"guildscore/domain/guild"
	"guildscore/adapters/scorer"
)

func newScoreCmd() *cobra.Command {
	var plantsFlag string
	var plantsFile string
	var format string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Resolve a plant guild and score it against the calibrated corpus",
		Long: `Score a candidate guild of reference-corpus plant ids.

Plant ids are read from --plants (comma-separated) or --plants-file
(one id per line); exactly one of the two must be given.

Example: guildscore score --plants wfo-0000123,wfo-0000456,wfo-0000789 --format markdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := resolvePlantIDs(plantsFlag, plantsFile)
			if err != nil {
				return err
			}
			return runScore(ids, format)
		},
	}

	cmd.Flags().StringVar(&plantsFlag, "plants", "", "Comma-separated plant ids")
	cmd.Flags().StringVar(&plantsFile, "plants-file", "", "Path to a file of newline-separated plant ids")
	cmd.Flags().StringVar(&format, "format", "markdown", "Output format: markdown|json|html")

	return cmd
}

func resolvePlantIDs(plantsFlag, plantsFile string) ([]string, error) {
	switch {
	case plantsFlag != "" && plantsFile != "":
		return nil, fmt.Errorf("specify only one of --plants or --plants-file")
	case plantsFlag != "":
		var ids []string
		for _, id := range strings.Split(plantsFlag, ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				ids = append(ids, id)
			}
		}
		return ids, nil
	case plantsFile != "":
		data, err := os.ReadFile(plantsFile)
		if err != nil {
			return nil, fmt.Errorf("read plants file: %w", err)
		}
		var ids []string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				ids = append(ids, line)
			}
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("one of --plants or --plants-file is required")
	}
}

func runScore(plantIDs []string, format string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	formatter, err := formatterFor(format)
	if err != nil {
		return err
	}

	req := guild.Request{ID: core.NewGuildID(), PlantIDs: plantIDs}
	g, err := scorer.Resolve(req, a.corpus)
	if err != nil {
		return fmt.Errorf("resolve guild: %w", err)
	}

	artifact, err := a.store.Load()
	if err != nil {
		return fmt.Errorf("load calibration artifact: %w", err)
	}

	score, err := a.scorer.Score(g, artifact)
	if err != nil {
		return fmt.Errorf("score guild: %w", err)
	}

	exp, err := a.explain.Explain(score, g)
	if err != nil {
		return fmt.Errorf("generate explanation: %w", err)
	}

	out, err := formatter.Format(exp)
	if err != nil {
		return fmt.Errorf("format explanation: %w", err)
	}

	_, err = os.Stdout.Write(out)
	return err
}

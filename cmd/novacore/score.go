package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novalabs/novacore/internal/engine"
)

var scoreInput string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print just the Nova Score for a set of executions",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreInput, "input", "", "Path to normalized executions JSON (required)")
	scoreCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := buildLogger(cfg)
	defer log.Sync()

	executions, _, err := loadExecutions(scoreInput)
	if err != nil {
		return err
	}

	result := engine.New(engine.WithLogger(log)).Analyze(executions)

	fmt.Printf("Nova Score: %d (%s)\n", result.Nova.Score, result.Nova.Label)
	for _, axis := range result.Nova.Radar {
		fmt.Printf("  %-14s %.1f\n", axis.Axis, axis.Value)
	}
	return nil
}

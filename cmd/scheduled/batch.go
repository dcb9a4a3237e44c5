package main

import (
	"fmt"

	"evscheduled/internal/runner"

	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var cfgPath string
	var step int

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Smoke-check solver feasibility and scale as the activity table grows in size",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, activities, err := loadRun(cfgPath)
			if err != nil {
				return err
			}
			params := cfg.Params.ToScheduleParams()

			var sizes []int
			for n := step; n < len(activities); n += step {
				sizes = append(sizes, n)
			}
			sizes = append(sizes, len(activities))

			results, err := runner.RunBatch(cmd.Context(), activities, params, sizes)
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}

			fmt.Printf("%-10s %-10s %-10s %-6s\n", "n", "feasible", "utility", "dssr")
			for _, r := range results {
				fmt.Printf("%-10d %-10v %-10.3f %-6d\n", r.NumActivities, r.Feasible, r.Utility, r.DSSRIters)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML run config (required)")
	cmd.Flags().IntVar(&step, "step", 5, "Activity-table size increment between samples")
	cmd.MarkFlagRequired("config")
	return cmd
}

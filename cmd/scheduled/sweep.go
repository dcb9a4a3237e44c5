package main

import (
	"fmt"

	"evscheduled/internal/runner"

	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	var cfgPath string
	var samples int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Re-solve the same activity table across a grid of random initial SOC draws",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, activities, err := loadRun(cfgPath)
			if err != nil {
				return err
			}
			params := cfg.Params.ToScheduleParams()

			results, err := runner.RunSOCSweep(cmd.Context(), activities, params, samples, seed)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}

			fmt.Printf("%-10s %-10s %-10s %-6s\n", "soc", "feasible", "utility", "dssr")
			for _, r := range results {
				fmt.Printf("%-10.3f %-10v %-10.3f %-6d\n", r.InitialSOC, !r.Result.Infeasible, r.Result.FinalUtility(), r.Result.DSSRIterations)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML run config (required)")
	cmd.Flags().IntVar(&samples, "samples", 20, "Number of random initial-SOC samples")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "RNG seed for the sweep")
	cmd.MarkFlagRequired("config")
	return cmd
}

package main

import (
	"fmt"

	"evscheduled/internal/activityio"
	"evscheduled/internal/config"
	"evscheduled/internal/schedule"

	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	var cfgPath, outPath string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run one DSSR-driven DP solve and write the reconstructed schedule CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, activities, err := loadRun(cfgPath)
			if err != nil {
				return err
			}
			params := cfg.Params.ToScheduleParams()

			res, err := schedule.Solve(cmd.Context(), activities, params)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			if res.Infeasible {
				fmt.Println("infeasible: no label reached dusk")
				return nil
			}

			out := outPath
			if out == "" {
				out = cfg.Driver.OutputFile
			}
			if out == "" {
				out = "schedule.csv"
			}
			if err := activityio.WriteSchedule(out, res.Schedule); err != nil {
				return fmt.Errorf("writing schedule: %w", err)
			}

			fmt.Printf("Wrote %d rows to %s\n", len(res.Schedule), out)
			fmt.Printf("Utility=%.3f DSSR iterations=%d\n", res.FinalUtility(), res.DSSRIterations)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML run config (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "Output schedule CSV path (overrides driver.output_file)")
	cmd.MarkFlagRequired("config")
	return cmd
}

// loadRun loads a run config and its referenced activity table, the shared
// first step of every subcommand that ultimately calls schedule.Solve.
func loadRun(cfgPath string) (*config.Config, []schedule.Activity, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	intervalMinutes := cfg.Params.IntervalMinutes
	if intervalMinutes == 0 {
		intervalMinutes = 5
	}
	activities, err := activityio.LoadActivities(cfg.Driver.ActivitiesFile, intervalMinutes)
	if err != nil {
		return nil, nil, fmt.Errorf("loading activities: %w", err)
	}
	return cfg, activities, nil
}

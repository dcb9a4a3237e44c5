package main

import (
	"fmt"

	"evscheduled/internal/runner"

	"github.com/spf13/cobra"
)

func newMultiDayCmd() *cobra.Command {
	var cfgPath string
	var numDays int
	var startSOC float64

	cmd := &cobra.Command{
		Use:   "multi-day",
		Short: "Chain several independent solves, feeding each day's ending SOC into the next",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, activities, err := loadRun(cfgPath)
			if err != nil {
				return err
			}
			params := cfg.Params.ToScheduleParams()

			run, err := runner.RunMultiDay(cmd.Context(), activities, params, numDays, startSOC, func(p runner.MultiDayProgress) {
				fmt.Printf("[%s] day %d/%d: soc %.3f -> %.3f (dssr=%d)\n",
					p.RunID[:8], p.Day.Day+1, p.Total, p.Day.StartSOC, p.Day.EndSOC, p.Day.Result.DSSRIterations)
			})
			if err != nil {
				return fmt.Errorf("multi-day run %s: %w", run.RunID, err)
			}
			fmt.Printf("run %s complete: %d days\n", run.RunID, len(run.Days))
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML run config (required)")
	cmd.Flags().IntVar(&numDays, "days", 7, "Number of days to chain")
	cmd.Flags().Float64Var(&startSOC, "start-soc", 0.8, "Initial SOC for day 0")
	cmd.MarkFlagRequired("config")
	return cmd
}

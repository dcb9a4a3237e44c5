package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"evscheduled/internal/activityio"
	"evscheduled/internal/analysis"
	"evscheduled/internal/config"
	"evscheduled/internal/schedule"

	"github.com/spf13/cobra"
)

func newRankCmd() *cobra.Command {
	var cfgPath, activityPaths string

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank candidate activity tables by best achieved utility against a shared parameter block",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			params := cfg.Params.ToScheduleParams()
			intervalMinutes := cfg.Params.IntervalMinutes
			if intervalMinutes == 0 {
				intervalMinutes = 5
			}

			candidates := map[string][]schedule.Activity{}
			for _, p := range splitPaths(activityPaths) {
				acts, err := activityio.LoadActivities(p, intervalMinutes)
				if err != nil {
					return fmt.Errorf("loading %s: %w", p, err)
				}
				label := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
				candidates[label] = acts
			}

			rankings, err := analysis.RankActivitySets(cmd.Context(), candidates, params)
			if err != nil {
				return fmt.Errorf("ranking: %w", err)
			}

			fmt.Printf("%-4s %-24s %-10s %-10s %-6s\n", "rank", "label", "feasible", "utility", "dssr")
			for i, r := range rankings {
				fmt.Printf("%-4d %-24s %-10v %-10.3f %-6d\n", i+1, r.Label, r.Feasible, r.Utility, r.DSSRIters)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML config providing the shared parameter block (required)")
	cmd.Flags().StringVar(&activityPaths, "activities", "", "Comma-separated list of candidate activity CSV files (required)")
	cmd.MarkFlagRequired("config")
	cmd.MarkFlagRequired("activities")
	return cmd
}

func splitPaths(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

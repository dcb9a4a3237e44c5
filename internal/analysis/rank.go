// Package analysis ranks candidate activity sets by the utility a solve
// achieves against them, the same shape as the teacher's location-ranking
// pass: compute a per-candidate summary, then sort.Slice descending.
package analysis

import (
	"context"
	"math"
	"sort"

	"evscheduled/internal/schedule"
)

// ActivitySetSummary is a solve-level summary for one candidate activity
// table, analogous to the teacher's per-location ArbitragePotential: enough
// statistics to rank candidates without re-solving.
type ActivitySetSummary struct {
	Label string

	Feasible  bool
	Utility   float64
	DSSRIters int

	MinSOC float64
	MaxSOC float64
}

// ComputeSummary solves activities once and reduces the result to a
// ranking-friendly summary.
func ComputeSummary(ctx context.Context, label string, activities []schedule.Activity, params schedule.Params) (ActivitySetSummary, error) {
	res, err := schedule.Solve(ctx, activities, params)
	if err != nil {
		return ActivitySetSummary{}, err
	}
	s := ActivitySetSummary{Label: label, Feasible: !res.Infeasible, DSSRIters: res.DSSRIterations}
	if res.Infeasible {
		return s, nil
	}
	s.Utility = res.FinalUtility()

	minSOC, maxSOC := math.Inf(1), math.Inf(-1)
	for _, row := range res.Schedule {
		if row.SOCEnd < minSOC {
			minSOC = row.SOCEnd
		}
		if row.SOCEnd > maxSOC {
			maxSOC = row.SOCEnd
		}
	}
	s.MinSOC, s.MaxSOC = minSOC, maxSOC
	return s, nil
}

// RankActivitySets computes a summary per named candidate and sorts
// descending by utility, infeasible candidates last.
func RankActivitySets(ctx context.Context, candidates map[string][]schedule.Activity, params schedule.Params) ([]ActivitySetSummary, error) {
	out := make([]ActivitySetSummary, 0, len(candidates))
	for label, activities := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := ComputeSummary(ctx, label, activities, params)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Feasible != out[j].Feasible {
			return out[i].Feasible
		}
		return out[i].Utility > out[j].Utility
	})
	return out, nil
}

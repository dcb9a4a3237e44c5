// Package runner hosts the multi-run orchestration the core DP explicitly
// treats as an external collaborator (§1): multi-day chaining, random-SOC
// sweeps, and a batch smoke check. Grounded on the population loops in
// testing_latest/multi_day_testing.py and testing_latest/random_soc_testing.py:
// each calls the same underlying solve repeatedly, threading state (the
// ending SOC, a new random draw) between calls rather than mutating any
// shared process state.
package runner

import (
	"context"
	"fmt"
	"math/rand"

	"evscheduled/internal/schedule"

	"github.com/google/uuid"
)

// DayResult is one day's outcome inside a multi-day run.
type DayResult struct {
	Day      int
	Result   schedule.Result
	StartSOC float64
	EndSOC   float64
}

// MultiDayRun is the outcome of one RunMultiDay call: a stable ID (so a
// caller — the API or the CLI's "watch" command — can correlate progress
// events with the run that produced them) plus the per-day results.
type MultiDayRun struct {
	RunID string
	Days  []DayResult
}

// MultiDayProgress is reported once per completed day when a non-nil
// progress callback is supplied to RunMultiDay.
type MultiDayProgress struct {
	RunID string
	Day   DayResult
	Total int
}

// RunMultiDay chains numDays independent solves over the same activity
// table, feeding each day's ending SOC in as the next day's fixed initial
// SOC — the core never plans across days itself (§1 Non-goals); the caller
// does the chaining, mirroring run_single_day's
// set_fixed_initial_soc / solve / read-final-soc / clear_fixed_initial_soc
// cycle. progress, if non-nil, is invoked synchronously after each day
// completes so a caller (e.g. the TUI watch command) can render live state;
// it is never required for correctness.
func RunMultiDay(ctx context.Context, activities []schedule.Activity, params schedule.Params, numDays int, startSOC float64, progress func(MultiDayProgress)) (MultiDayRun, error) {
	run := MultiDayRun{RunID: uuid.New().String()}
	if numDays <= 0 {
		return run, fmt.Errorf("numDays must be > 0")
	}

	run.Days = make([]DayResult, 0, numDays)
	soc := startSOC

	for day := 0; day < numDays; day++ {
		if err := ctx.Err(); err != nil {
			return run, err
		}
		dayParams := params
		dayParams.SetFixedInitialSOC(soc)

		res, err := schedule.Solve(ctx, activities, dayParams)
		if err != nil {
			return run, fmt.Errorf("day %d: %w", day, err)
		}

		dr := DayResult{Day: day, Result: res, StartSOC: soc}
		if res.Infeasible {
			run.Days = append(run.Days, dr)
			if progress != nil {
				progress(MultiDayProgress{RunID: run.RunID, Day: dr, Total: numDays})
			}
			return run, fmt.Errorf("day %d: infeasible, stopping chain", day)
		}

		endSOC := res.Schedule[len(res.Schedule)-1].SOCEnd
		dr.EndSOC = endSOC
		run.Days = append(run.Days, dr)
		if progress != nil {
			progress(MultiDayProgress{RunID: run.RunID, Day: dr, Total: numDays})
		}
		soc = endSOC
	}

	return run, nil
}

// SOCSweepResult is one sample from a random-initial-SOC sweep.
type SOCSweepResult struct {
	InitialSOC float64
	Result     schedule.Result
}

// RunSOCSweep solves the same activity table across samples random draws of
// initial SOC in [0.4, 1.0), grounded on random_soc_testing.py's exploration
// of how sensitive the best schedule is to the starting charge level.
func RunSOCSweep(ctx context.Context, activities []schedule.Activity, params schedule.Params, samples int, seed uint64) ([]SOCSweepResult, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("samples must be > 0")
	}

	r := rand.New(rand.NewSource(int64(seed)))
	out := make([]SOCSweepResult, 0, samples)

	for i := 0; i < samples; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		soc := 0.4 + r.Float64()*0.6
		p := params
		p.SetFixedInitialSOC(soc)
		p.SetSeed(seed + uint64(i))

		res, err := schedule.Solve(ctx, activities, p)
		if err != nil {
			return out, fmt.Errorf("sample %d: %w", i, err)
		}
		out = append(out, SOCSweepResult{InitialSOC: soc, Result: res})
	}

	return out, nil
}

// BatchResult summarizes a run across an increasing number of candidate
// activities, grounded on batch_scale_check.py's incremental scale smoke
// test: confirm the solver still terminates and stays feasible as the
// activity table grows.
type BatchResult struct {
	NumActivities int
	Feasible      bool
	Utility       float64
	DSSRIters     int
}

// RunBatch solves progressively larger prefixes of activities (always
// keeping the final entry as dusk) and reports one BatchResult per size in
// sizes.
func RunBatch(ctx context.Context, activities []schedule.Activity, params schedule.Params, sizes []int) ([]BatchResult, error) {
	dusk := activities[len(activities)-1]
	out := make([]BatchResult, 0, len(sizes))

	for _, n := range sizes {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if n < 2 || n > len(activities) {
			return out, fmt.Errorf("batch size %d out of range [2,%d]", n, len(activities))
		}
		subset := make([]schedule.Activity, n)
		copy(subset, activities[:n-1])
		subset[n-1] = dusk
		subset[n-1].ID = n - 1
		for i := range subset[:n-1] {
			subset[i].ID = i
		}

		res, err := schedule.Solve(ctx, subset, params)
		if err != nil {
			return out, fmt.Errorf("size %d: %w", n, err)
		}

		br := BatchResult{NumActivities: n, Feasible: !res.Infeasible, DSSRIters: res.DSSRIterations}
		if !res.Infeasible {
			br.Utility = res.FinalUtility()
		}
		out = append(out, br)
	}

	return out, nil
}

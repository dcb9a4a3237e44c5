package schedule

import (
	"context"
	"sort"
)

// Result is the outcome of one Solve call: either a best dusk label (with
// its reconstructed schedule) or an explicit infeasibility report. This is
// a normal return value, never an error — §4.10 and §7 require
// infeasibility to be a sentinel absence, not an exception.
type Result struct {
	Infeasible bool

	Schedule []ScheduleRow

	// DSSRIterations counts the DP passes run, including the first; 1 means
	// the first solve was already elementary.
	DSSRIterations int

	// ForbiddenActivities lists the activity IDs DSSR ended up banning to
	// reach an elementary best label.
	ForbiddenActivities []int

	finalUtility float64
}

// FinalUtility returns the cumulative utility of the best schedule, or 0
// when Infeasible is true.
func (r Result) FinalUtility() float64 { return r.finalUtility }

// Solve runs the DSSR-driven labeled DP of §4.7/§4.8 to completion: it
// validates the input, then repeatedly runs one DP pass and checks the best
// dusk label's predecessor chain for a repeated non-home group, forbidding
// the earliest offending activity and re-solving until the best label is
// elementary or no label reaches dusk at all.
//
// ctx is checked once per DSSR iteration and once every 4096 dequeued labels
// inside a DP pass, never inside a single extension, so cancellation never
// leaves the arena or bucket store half-written. A nil ctx is treated as
// context.Background().
func Solve(ctx context.Context, activities []Activity, params Params) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := params.finalize(); err != nil {
		return Result{}, &InputError{Reason: err.Error()}
	}
	if err := ValidateActivities(activities, &params); err != nil {
		return Result{}, err
	}

	dawnID := 0
	duskID := len(activities) - 1

	forbidden := make(map[int]bool)

	for iter := 1; ; iter++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		bestIdx, ar, err := runDP(ctx, activities, &params, dawnID, duskID, forbidden)
		if err != nil {
			return Result{}, err
		}
		if bestIdx < 0 {
			return Result{Infeasible: true, DSSRIterations: iter, ForbiddenActivities: forbiddenList(forbidden)}, nil
		}

		repeat, ok := firstRepeatedGroupActivity(ar, bestIdx, activities)
		if !ok {
			rows := reconstruct(ar, bestIdx, activities, &params)
			best := ar.get(bestIdx)
			return Result{
				Schedule:            rows,
				DSSRIterations:      iter,
				ForbiddenActivities: forbiddenList(forbidden),
				finalUtility:        best.Utility,
			}, nil
		}

		forbidden[repeat] = true
	}
}

// runDP performs one full DP pass: seeds the dawn label, extends every kept
// label once from a FIFO work-list, and returns the arena-index of the best
// (dusk, H) label, or -1 if none exists.
func runDP(ctx context.Context, activities []Activity, params *Params, dawnID, duskID int, forbidden map[int]bool) (int, *arena, error) {
	ar := newArena(params.MaxLabels)
	store := newBucketStore(ar, len(activities), params.Horizon+1)

	initSOC := initialSOC(params)
	seed := Label{
		Activity:   dawnID,
		Time:       0,
		StartTime:  0,
		Utility:    params.ASC[activities[dawnID].Group],
		SOCAtStart: initSOC,
		SOC:        initSOC,
		Cost:       0,
		Groups:     groupSet(0),
		Prev:       labelNil,
	}
	seedIdx, ok := ar.alloc(seed)
	if !ok {
		return -1, nil, &ResourceError{MaxLabels: params.MaxLabels}
	}
	store.insert(seedIdx)

	// A FIFO work-list rather than a fixed time-major scan: extension
	// almost always strictly increases time, but a zero-duration,
	// zero-travel-time successor can land a new label in the very time
	// slice being walked. Draining a queue (instead of re-scanning buckets
	// per t) guarantees every kept label is eventually extended exactly
	// once, regardless of where in the scan order it was created.
	queue := []int{seedIdx}
	for head := 0; head < len(queue); head++ {
		if head%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return -1, nil, err
			}
		}
		idx := queue[head]
		newIdx, err := extendLabel(activities, params, ar, store, idx, forbidden)
		if err != nil {
			return -1, nil, err
		}
		queue = append(queue, newIdx...)
	}

	best := -1
	for _, idx := range store.at(duskID, params.Horizon) {
		l := ar.get(idx)
		if best < 0 || l.Utility > ar.get(best).Utility {
			best = idx
		}
	}
	return best, ar, nil
}

func initialSOC(params *Params) float64 {
	if params.FixedInitialSOC != nil {
		return *params.FixedInitialSOC
	}
	return drawInitialSOC(initialSOCRNG(params.Seed))
}

// firstRepeatedGroupActivity walks the predecessor chain of bestIdx looking
// for the first non-home group visited twice, scanning from dawn outward so
// the earliest offending activity (by position in the chain) is returned,
// matching §4.8's "pick the earliest such activity id in the chain".
func firstRepeatedGroupActivity(ar *arena, bestIdx int, activities []Activity) (int, bool) {
	chain := predecessorChain(ar, bestIdx)

	seen := make(map[int]int) // group -> first activity id that visited it
	for _, idx := range chain {
		l := ar.get(idx)
		g := activities[l.Activity].Group
		if g == 0 {
			continue
		}
		if first, ok := seen[g]; ok {
			return first, true
		}
		seen[g] = l.Activity
	}
	return 0, false
}

// predecessorChain returns arena indices from dawn to bestIdx, inclusive,
// in chronological order.
func predecessorChain(ar *arena, bestIdx int) []int {
	var rev []int
	for idx := bestIdx; idx != labelNil; idx = ar.get(idx).Prev {
		rev = append(rev, idx)
	}
	chain := make([]int, len(rev))
	for i, idx := range rev {
		chain[len(rev)-1-i] = idx
	}
	return chain
}

// forbiddenList returns the forbidden activity IDs in ascending order so
// Result.ForbiddenActivities is deterministic across runs, not dependent on
// map iteration order.
func forbiddenList(forbidden map[int]bool) []int {
	out := make([]int, 0, len(forbidden))
	for id := range forbidden {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

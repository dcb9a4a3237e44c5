package schedule

// bucketStore holds the non-dominated labels at each (activity, time) cell.
// solve.go extends labels from a FIFO work-list as they are kept rather than
// by walking buckets in time order, so a label can be extended before a later
// arrival dominates it and removes it from its bucket.
type bucketStore struct {
	arena   *arena
	horizon int
	nCells  int
	// buckets[activity*horizon+time] is the list of label indices currently
	// undominated in that cell.
	buckets [][]int
}

func newBucketStore(a *arena, numActivities, horizon int) *bucketStore {
	n := numActivities * horizon
	b := &bucketStore{
		arena:   a,
		horizon: horizon,
		nCells:  n,
		buckets: make([][]int, n),
	}
	return b
}

func (b *bucketStore) cellIndex(activity, t int) int {
	return activity*b.horizon + t
}

func (b *bucketStore) at(activity, t int) []int {
	return b.buckets[b.cellIndex(activity, t)]
}

// dominates reports whether label x dominates label y: at least as good on
// utility, SOC and cost, and visiting a subset of y's groups (so x retains
// at least as much freedom to extend elementarily), with strict
// improvement, or a proper subset of groups, on at least one dimension.
// Cost is a minimize-dimension so "as good" means x.Cost <= y.Cost. Two
// labels identical on all four dimensions are mutual dominators; insert
// keeps whichever arrived first.
func dominates(x, y *Label) bool {
	if x.Utility < y.Utility || x.SOC < y.SOC || x.Cost > y.Cost {
		return false
	}
	if !x.Groups.isSubset(y.Groups) {
		return false
	}
	if equalKey(x, y) {
		return true
	}
	return x.Utility > y.Utility || x.SOC > y.SOC || x.Cost < y.Cost || x.Groups != y.Groups
}

// equalKey reports whether two labels are identical on all four dimensions,
// making either a valid representative (kept for determinism: whichever
// arrived first stays, per insert's ordering).
func equalKey(x, y *Label) bool {
	return x.Utility == y.Utility && x.SOC == y.SOC && x.Cost == y.Cost && x.Groups == y.Groups
}

// insert adds candidate (already allocated in the arena at index idx) to
// the bucket for its (Activity, Time), removing any labels it dominates and
// refusing insertion if an existing label already dominates it. Returns
// whether the candidate was kept.
func (b *bucketStore) insert(idx int) bool {
	cand := b.arena.get(idx)
	cell := b.cellIndex(cand.Activity, cand.Time)
	existing := b.buckets[cell]

	kept := existing[:0]
	for _, other := range existing {
		o := b.arena.get(other)
		if dominates(o, cand) {
			return false
		}
		if !dominates(cand, o) {
			kept = append(kept, other)
		}
	}
	kept = append(kept, idx)
	b.buckets[cell] = kept
	return true
}


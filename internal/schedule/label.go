package schedule

// labelNil marks the absence of a predecessor (the seed label at dawn).
const labelNil = -1

// Label is one Pareto-dominance state in the labeled DP, matching the C
// Label/L_list layout of the system this engine replaces: an activity, the
// interval at which it ends, accumulated utility/SOC/cost, the forbidden-set-adjusted
// group memory, and an index-based link to the predecessor label. Labels
// are never mutated after creation; extension always produces a new one.
type Label struct {
	Activity int // activity ID this label arrives at
	Time     int // interval at which the activity ends: StartTime + duration
	StartTime int // chosen start_time at Activity

	Utility float64
	SOCAtStart float64 // soc on arrival, after travel but before any charging here
	SOC        float64 // soc on departure, after any in-activity charging
	Cost       float64

	ChargeDuration int // intervals of in-activity charging chosen

	Groups groupSet

	Prev int // index into the owning arena, or labelNil
}

// arena is a bump allocator for labels, indexed by int rather than pointer
// so a predecessor chain is a walk over indices. runDP builds a fresh arena,
// preallocated to Params.MaxLabels, for each DP pass.
type arena struct {
	labels []Label
	cap    int
}

func newArena(capacity int) *arena {
	return &arena{
		labels: make([]Label, 0, capacity),
		cap:    capacity,
	}
}

// alloc appends a new label and returns its index. Returns -1, false if the
// arena is exhausted; the caller turns that into a ResourceError.
func (a *arena) alloc(l Label) (int, bool) {
	if len(a.labels) >= a.cap {
		return -1, false
	}
	a.labels = append(a.labels, l)
	return len(a.labels) - 1, true
}

func (a *arena) get(idx int) *Label {
	return &a.labels[idx]
}

// reset discards all labels but keeps the backing array.
func (a *arena) reset() {
	a.labels = a.labels[:0]
}

func (a *arena) len() int {
	return len(a.labels)
}

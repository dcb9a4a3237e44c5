package schedule

// ScheduleRow is one emitted visit in the reconstructed schedule, matching
// the caller-facing CSV layout of §6.
type ScheduleRow struct {
	ActivityID   int
	ActivityType string
	Group        int

	StartHour float64 // start_time * interval_minutes / 60
	Duration  int      // intervals

	SOCStart float64
	SOCEnd   float64

	IsCharging     bool
	ChargeMode     int
	ChargeDuration float64 // hours
	ChargeCost     float64 // cumulative

	Utility float64 // cumulative

	X, Y float64
}

// reconstruct walks the predecessor chain of bestIdx from dawn to dusk and
// emits one row per label, de-duplicating rows that share (activity id,
// start time) by keeping the one with the largest duration, per §4.9 — a
// dominance-surviving intermediate label for the same visit is superseded
// by whichever resident actually carried through to the final chain.
func reconstruct(ar *arena, bestIdx int, activities []Activity, params *Params) []ScheduleRow {
	chain := predecessorChain(ar, bestIdx)

	rows := make([]ScheduleRow, 0, len(chain))
	type key struct{ actID, startTime int }
	index := make(map[key]int) // key -> position in rows

	for _, idx := range chain {
		l := ar.get(idx)
		act := activities[l.Activity]

		row := ScheduleRow{
			ActivityID:     act.ID,
			ActivityType:   act.Type,
			Group:          act.Group,
			StartHour:      float64(l.StartTime) * float64(params.IntervalMinutes) / 60.0,
			Duration:       l.Time - l.StartTime,
			SOCStart:       l.SOCAtStart,
			SOCEnd:         l.SOC,
			IsCharging:     act.IsCharging,
			ChargeMode:     act.ChargeMode,
			ChargeDuration: float64(l.ChargeDuration) * float64(params.IntervalMinutes) / 60.0,
			ChargeCost:     l.Cost,
			Utility:        l.Utility,
			X:              act.X,
			Y:              act.Y,
		}
		k := key{act.ID, l.StartTime}
		if pos, ok := index[k]; ok {
			if row.Duration > rows[pos].Duration {
				rows[pos] = row
			}
			continue
		}
		index[k] = len(rows)
		rows = append(rows, row)
	}

	return rows
}

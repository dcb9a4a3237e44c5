package schedule

import (
	"math"
)

// extendLabel runs the extension operator (§4.6) on the resident label at
// arena index idx: it enumerates admissible successor activities, then for
// each a canonical set of (start, duration, charge_duration) choices wide
// enough to reach the utility optima on the piecewise-linear segments
// (earliest-feasible, desired and latest-feasible start, crossed with
// min/desired/max duration, crossed with {0, full, duration-to-full}
// charging), and inserts
// every resulting label into its successor bucket under dominance.
func extendLabel(activities []Activity, params *Params, ar *arena, store *bucketStore, idx int, forbidden map[int]bool) ([]int, error) {
	var kept []int
	L := *ar.get(idx) // copy: ar.labels may grow (and reallocate) during this call
	from := activities[L.Activity]

	for bID := range activities {
		if bID == from.ID || bID == 0 {
			continue // b != a, b != dawn
		}
		if forbidden[bID] {
			continue
		}
		b := activities[bID]
		if b.Group != 0 && L.Groups.contains(b.Group) {
			continue
		}

		dx := from.X - b.X
		dy := from.Y - b.Y
		distanceM := math.Hypot(dx, dy)
		travelTime := int(math.Ceil(distanceM / params.speedMetersPerInterval))
		tArr := L.Time + travelTime
		if tArr > b.LatestStart || tArr > params.Horizon {
			continue
		}

		distanceKM := distanceM / 1000.0
		travelSOC := distanceKM * params.EnergyConsumptionKWhPerKM / params.BatteryCapacityKWh
		socAfterTravel := L.SOC - travelSOC
		if socAfterTravel < 0 || math.IsNaN(socAfterTravel) {
			continue
		}

		earliestFeasibleStart := tArr
		if b.EarliestStart > earliestFeasibleStart {
			earliestFeasibleStart = b.EarliestStart
		}
		latestFeasibleStart := b.LatestStart
		if earliestFeasibleStart > latestFeasibleStart {
			continue
		}
		desiredStart := clampInt(b.DesiredStart, earliestFeasibleStart, latestFeasibleStart)

		starts := dedupInts(earliestFeasibleStart, desiredStart, latestFeasibleStart)
		isDusk := bID == len(activities)-1

		for _, startB := range starts {
			durations := dedupInts(b.MinDuration, clampInt(b.DesiredDuration, b.MinDuration, b.MaxDuration), b.MaxDuration)
			if isDusk {
				fixed := params.Horizon - startB
				if fixed < b.MinDuration || fixed > b.MaxDuration {
					continue
				}
				durations = []int{fixed}
			}

			for _, durationB := range durations {
				if startB+durationB > params.Horizon {
					continue
				}
				if isDusk && startB+durationB != params.Horizon {
					continue
				}

				for _, chargeDurationB := range chargeDurationCandidates(&b, params, durationB, socAfterTravel) {
					deltaSOC := params.SOCIncrementPerIntervalForMode(b.ChargeMode) * float64(chargeDurationB)
					if socAfterTravel+deltaSOC > 1 {
						deltaSOC = 1 - socAfterTravel
					}
					if deltaSOC < 0 {
						deltaSOC = 0
					}
					finalSOC := socAfterTravel + deltaSOC
					if finalSOC < 0 || finalSOC > 1 || math.IsNaN(finalSOC) {
						continue
					}

					chargeCost := params.tariffPerKWh(b.ChargeMode) * params.chargePowerKW(b.ChargeMode) * float64(chargeDurationB) * params.intervalHours

					utilityDelta := extensionUtility(params, &b, startB, durationB, travelTime, chargeCost)
					if params.UtilityErrorStdDev > 0 {
						utilityDelta += utilityPerturbation(params.Seed, from.ID, b.ID, startB, durationB, params.UtilityErrorStdDev)
					}
					if math.IsNaN(utilityDelta) {
						continue
					}

					newLabel := Label{
						Activity:       b.ID,
						Time:           startB + durationB,
						StartTime:      startB,
						Utility:        L.Utility + utilityDelta,
						SOCAtStart:     socAfterTravel,
						SOC:            finalSOC,
						Cost:           L.Cost + chargeCost,
						ChargeDuration: chargeDurationB,
						Groups:         L.Groups.extend(b.Group),
						Prev:           idx,
					}

					newIdx, ok := ar.alloc(newLabel)
					if !ok {
						return nil, &ResourceError{MaxLabels: params.MaxLabels}
					}
					if store.insert(newIdx) {
						kept = append(kept, newIdx)
					}
				}
			}
		}
	}
	return kept, nil
}

// extensionUtility computes the additive utility terms of §4.6 excluding
// the optional error perturbation, which the caller adds separately (it
// needs the raw (a, b, start_b, duration_b) key rather than an activity
// pointer).
func extensionUtility(params *Params, b *Activity, startB, durationB, travelTime int, chargeCost float64) float64 {
	g := b.Group
	u := params.ASC[g]

	if startB < b.DesiredStart {
		u += params.Early[g] * float64(b.DesiredStart-startB)
	} else {
		u += params.Late[g] * float64(startB-b.DesiredStart)
	}

	if durationB < b.DesiredDuration {
		u += params.Short[g] * float64(b.DesiredDuration-durationB)
	} else {
		u += params.Long[g] * float64(durationB-b.DesiredDuration)
	}

	u += params.TravelTimePenalty * float64(travelTime)
	u -= chargeCost

	return u
}

// chargeDurationCandidates returns the canonical charge durations to try at
// b, per the design note permitting {0, full, duration-to-full} instead of
// the full [0, duration_b] enumeration.
func chargeDurationCandidates(b *Activity, params *Params, durationB int, socAfterTravel float64) []int {
	if !b.IsCharging {
		return []int{0}
	}
	if b.IsServiceStation {
		return []int{durationB}
	}

	perInterval := params.SOCIncrementPerIntervalForMode(b.ChargeMode)
	toFull := durationB
	if perInterval > 0 {
		needed := (1 - socAfterTravel) / perInterval
		toFull = int(math.Ceil(needed))
		if toFull > durationB {
			toFull = durationB
		}
		if toFull < 0 {
			toFull = 0
		}
	}
	return dedupInts(0, toFull, durationB)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// dedupInts returns its arguments with duplicates removed, preserving first
// occurrence order.
func dedupInts(vals ...int) []int {
	out := make([]int, 0, len(vals))
	for _, v := range vals {
		seen := false
		for _, o := range out {
			if o == v {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, v)
		}
	}
	return out
}

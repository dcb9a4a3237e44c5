package schedule

// ValidateActivities checks the activity table and parameter block for the
// structural requirements Solve assumes before any DP work starts: IDs
// exactly 0..N-1 in index order, activity 0 is dawn (home, earliest=latest=0),
// activity N-1 is dusk (home, latest_start=H), time windows within the
// horizon, non-negative durations, charge modes in range, and a group count
// groupSet can actually track (elementarity silently stops being enforced
// past maxTrackedGroups non-home groups, so that case is rejected here
// rather than left to fail open). Returns an *InputError on the first
// violation found.
func ValidateActivities(activities []Activity, params *Params) error {
	n := len(activities)
	if n < 2 {
		return inputErrorf("need at least a dawn and a dusk activity, got %d", n)
	}
	if params.NumGroups() == 0 {
		return inputErrorf("params must declare at least one group")
	}
	if params.NumGroups() > maxTrackedGroups+1 {
		return inputErrorf("params declare %d groups, but groupSet only tracks %d non-home groups (home + %d)", params.NumGroups(), maxTrackedGroups, maxTrackedGroups)
	}

	for i, act := range activities {
		if act.ID != i {
			return inputErrorf("activity table must be indexed 0..N-1 by id; position %d has id %d", i, act.ID)
		}
		if act.Group < 0 || act.Group >= params.NumGroups() {
			return inputErrorf("activity %d: group %d out of range [0,%d)", act.ID, act.Group, params.NumGroups())
		}
		if act.EarliestStart < 0 || act.EarliestStart > params.Horizon {
			return inputErrorf("activity %d: earliest_start %d out of horizon", act.ID, act.EarliestStart)
		}
		if act.LatestStart < act.EarliestStart {
			return inputErrorf("activity %d: latest_start %d before earliest_start %d", act.ID, act.LatestStart, act.EarliestStart)
		}
		if act.LatestStart > params.Horizon {
			return inputErrorf("activity %d: latest_start %d out of horizon", act.ID, act.LatestStart)
		}
		if act.MinDuration < 0 {
			return inputErrorf("activity %d: negative min_duration", act.ID)
		}
		if act.MaxDuration < act.MinDuration {
			return inputErrorf("activity %d: max_duration %d below min_duration %d", act.ID, act.MaxDuration, act.MinDuration)
		}
		if act.ChargeMode < 0 || act.ChargeMode > maxChargeMode {
			return inputErrorf("activity %d: charge_mode %d out of range", act.ID, act.ChargeMode)
		}
		if act.IsCharging && act.ChargeMode == ChargeModeNone {
			return inputErrorf("activity %d: is_charging set but charge_mode is none", act.ID)
		}
		if act.IsServiceStation && !act.IsCharging {
			return inputErrorf("activity %d: service station must have is_charging set", act.ID)
		}
	}

	dawn, dusk := activities[0], activities[n-1]
	if dawn.Group != 0 {
		return inputErrorf("activity 0 (dawn) must be group 0 (home)")
	}
	if dawn.EarliestStart != 0 || dawn.LatestStart != 0 {
		return inputErrorf("activity 0 (dawn) must have earliest_start=latest_start=0")
	}
	if dusk.Group != 0 {
		return inputErrorf("activity %d (dusk) must be group 0 (home)", n-1)
	}
	if dusk.LatestStart != params.Horizon {
		return inputErrorf("activity %d (dusk) must have latest_start=horizon (%d), got %d", n-1, params.Horizon, dusk.LatestStart)
	}

	return nil
}

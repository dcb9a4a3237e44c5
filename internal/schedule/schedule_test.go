package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseParams(numGroups int) Params {
	p := NewParams(numGroups)
	p.Horizon = 48
	return p
}

func TestSolve_SingleHomeDay(t *testing.T) {
	p := baseParams(1)
	p.ASC[0] = 1.0
	p.SetFixedInitialSOC(0.7)

	activities := []Activity{
		{ID: 0, Type: "home", Group: 0, EarliestStart: 0, LatestStart: 0, MinDuration: 0, MaxDuration: 0},
		{ID: 1, Type: "home", Group: 0, EarliestStart: 0, LatestStart: p.Horizon, MinDuration: 0, MaxDuration: p.Horizon,
			DesiredStart: p.Horizon, DesiredDuration: p.Horizon},
	}

	res, err := Solve(context.Background(), activities, p)
	require.NoError(t, err)
	require.False(t, res.Infeasible)
	require.Len(t, res.Schedule, 2)

	last := res.Schedule[len(res.Schedule)-1]
	assert.InDelta(t, 0.7, last.SOCEnd, 1e-9)
	assert.InDelta(t, 2.0, last.Utility, 1e-9)
}

func TestSolve_HomeWorkHomeNoCharging(t *testing.T) {
	p := baseParams(2)
	p.ASC[0] = 0.5
	p.ASC[1] = 2.0
	p.SetFixedInitialSOC(0.5)

	activities := []Activity{
		{ID: 0, Type: "home", Group: 0, EarliestStart: 0, LatestStart: 0, MinDuration: 0, MaxDuration: 0},
		{ID: 1, Type: "work", Group: 1, X: 10000, Y: 0,
			EarliestStart: 0, LatestStart: p.Horizon - 10,
			MinDuration: 8, MaxDuration: 20, DesiredStart: 16, DesiredDuration: 16},
		{ID: 2, Type: "home", Group: 0, EarliestStart: 0, LatestStart: p.Horizon,
			MinDuration: 0, MaxDuration: p.Horizon, DesiredStart: p.Horizon, DesiredDuration: p.Horizon},
	}

	res, err := Solve(context.Background(), activities, p)
	require.NoError(t, err)
	require.False(t, res.Infeasible)

	var visitedWork int
	for _, row := range res.Schedule {
		if row.Group == 1 {
			visitedWork++
		}
	}
	assert.Equal(t, 1, visitedWork)
}

func TestSolve_GroupRepeatForbidden(t *testing.T) {
	p := baseParams(2)
	p.ASC[0] = 0.1
	p.ASC[1] = 5.0
	p.SetFixedInitialSOC(1.0)

	mk := func(id, earliest, latest, min, max int) Activity {
		return Activity{ID: id, Type: "errand", Group: 1,
			EarliestStart: earliest, LatestStart: latest, MinDuration: min, MaxDuration: max,
			DesiredStart: earliest, DesiredDuration: min}
	}

	activities := []Activity{
		{ID: 0, Type: "home", Group: 0, EarliestStart: 0, LatestStart: 0, MinDuration: 0, MaxDuration: 0},
		mk(1, 0, 10, 2, 2),
		mk(2, 4, 14, 2, 2),
		mk(3, 8, 18, 2, 2),
		{ID: 4, Type: "home", Group: 0, EarliestStart: 0, LatestStart: p.Horizon,
			MinDuration: 0, MaxDuration: p.Horizon, DesiredStart: p.Horizon, DesiredDuration: p.Horizon},
	}

	res, err := Solve(context.Background(), activities, p)
	require.NoError(t, err)
	require.False(t, res.Infeasible)

	seenGroup1 := 0
	for _, row := range res.Schedule {
		if row.Group == 1 {
			seenGroup1++
		}
	}
	assert.Equal(t, 1, seenGroup1)
	assert.GreaterOrEqual(t, res.DSSRIterations, 1)
}

func TestSolve_Reproducible(t *testing.T) {
	p := baseParams(1)
	p.ASC[0] = 1.0
	p.SetUtilityErrorStdDev(1.0)
	p.SetSeed(42)
	p.SetFixedInitialSOC(0.5)

	activities := []Activity{
		{ID: 0, Type: "home", Group: 0, EarliestStart: 0, LatestStart: 0, MinDuration: 0, MaxDuration: 0},
		{ID: 1, Type: "home", Group: 0, EarliestStart: 0, LatestStart: p.Horizon,
			MinDuration: 0, MaxDuration: p.Horizon, DesiredStart: p.Horizon, DesiredDuration: p.Horizon},
	}

	res1, err := Solve(context.Background(), activities, p)
	require.NoError(t, err)
	res2, err := Solve(context.Background(), activities, p)
	require.NoError(t, err)

	require.Equal(t, len(res1.Schedule), len(res2.Schedule))
	for i := range res1.Schedule {
		assert.Equal(t, res1.Schedule[i], res2.Schedule[i])
	}
}

func TestValidateActivities_RejectsBadDawn(t *testing.T) {
	p := baseParams(1)
	activities := []Activity{
		{ID: 0, Type: "home", Group: 0, EarliestStart: 1, LatestStart: 1},
		{ID: 1, Type: "home", Group: 0, LatestStart: p.Horizon},
	}
	err := ValidateActivities(activities, &p)
	require.Error(t, err)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestGroupSet_ContainsAndExtend(t *testing.T) {
	var s groupSet
	assert.False(t, s.contains(1))
	s = s.extend(1)
	assert.True(t, s.contains(1))
	assert.False(t, s.contains(2))
	assert.False(t, s.contains(0)) // home never tracked
	assert.Equal(t, 1, s.count())
}

func TestDominates_StrictlyBetterWins(t *testing.T) {
	better := &Label{Utility: 10, SOC: 0.5, Cost: 1}
	worse := &Label{Utility: 5, SOC: 0.5, Cost: 1}
	assert.True(t, dominates(better, worse))
	assert.False(t, dominates(worse, better))
}

func TestDominates_IncomparableGroupsNeitherDominates(t *testing.T) {
	a := &Label{Utility: 5, SOC: 0.5, Cost: 1, Groups: groupSet(0).extend(1)}
	b := &Label{Utility: 5, SOC: 0.5, Cost: 1, Groups: groupSet(0).extend(2)}
	assert.False(t, dominates(a, b))
	assert.False(t, dominates(b, a))
}

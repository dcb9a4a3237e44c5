package analysis

import (
	"context"
	"testing"

	"evscheduled/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homeOnly(p *schedule.Params) []schedule.Activity {
	return []schedule.Activity{
		{ID: 0, Type: "home", Group: 0, EarliestStart: 0, LatestStart: 0, MinDuration: 0, MaxDuration: 0},
		{ID: 1, Type: "home", Group: 0, EarliestStart: 0, LatestStart: p.Horizon,
			MinDuration: 0, MaxDuration: p.Horizon, DesiredStart: p.Horizon, DesiredDuration: p.Horizon},
	}
}

func baseParams() schedule.Params {
	p := schedule.NewParams(1)
	p.Horizon = 48
	p.ASC[0] = 1.0
	p.SetFixedInitialSOC(0.7)
	return p
}

func TestComputeSummary_FeasibleReportsUtilityAndSOCRange(t *testing.T) {
	p := baseParams()
	s, err := ComputeSummary(context.Background(), "home-only", homeOnly(&p), p)
	require.NoError(t, err)
	assert.True(t, s.Feasible)
	assert.Equal(t, "home-only", s.Label)
	assert.InDelta(t, 0.7, s.MinSOC, 1e-9)
	assert.InDelta(t, 0.7, s.MaxSOC, 1e-9)
}

func TestRankActivitySets_FeasibleBeforeInfeasibleAndHigherUtilityFirst(t *testing.T) {
	p := baseParams()
	lowUtility := homeOnly(&p)
	lowUtility[1].X = 2_500 // one interval of travel, costing TravelTimePenalty

	infeasible := homeOnly(&p)
	infeasible[1].X = 1_000_000 // too far to reach dusk within the horizon

	candidates := map[string][]schedule.Activity{
		"high-utility": homeOnly(&p),
		"low-utility":  lowUtility,
		"broken":       infeasible,
	}

	rankings, err := RankActivitySets(context.Background(), candidates, p)
	require.NoError(t, err)
	require.Len(t, rankings, 3)

	assert.True(t, rankings[0].Feasible)
	assert.True(t, rankings[1].Feasible)
	assert.GreaterOrEqual(t, rankings[0].Utility, rankings[1].Utility)
	assert.False(t, rankings[2].Feasible)
}

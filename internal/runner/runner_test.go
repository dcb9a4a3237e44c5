package runner

import (
	"context"
	"testing"

	"evscheduled/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoHomeDays(horizon int) []schedule.Activity {
	return []schedule.Activity{
		{ID: 0, Type: "home", Group: 0, EarliestStart: 0, LatestStart: 0, MinDuration: 0, MaxDuration: 0},
		{ID: 1, Type: "home", Group: 0, EarliestStart: 0, LatestStart: horizon,
			MinDuration: 0, MaxDuration: horizon, DesiredStart: horizon, DesiredDuration: horizon},
	}
}

func baseRunnerParams() schedule.Params {
	p := schedule.NewParams(1)
	p.Horizon = 48
	p.ASC[0] = 1.0
	return p
}

func TestRunMultiDay_ChainsEndingSOCIntoNextDay(t *testing.T) {
	p := baseRunnerParams()
	activities := twoHomeDays(p.Horizon)

	run, err := RunMultiDay(context.Background(), activities, p, 3, 0.7, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, run.RunID)
	require.Len(t, run.Days, 3)

	for i, d := range run.Days {
		assert.Equal(t, i, d.Day)
		assert.False(t, d.Result.Infeasible)
	}
	assert.InDelta(t, run.Days[0].EndSOC, run.Days[1].StartSOC, 1e-9)
	assert.InDelta(t, run.Days[1].EndSOC, run.Days[2].StartSOC, 1e-9)
}

func TestRunMultiDay_ReportsProgressPerDay(t *testing.T) {
	p := baseRunnerParams()
	activities := twoHomeDays(p.Horizon)

	var seen []MultiDayProgress
	_, err := RunMultiDay(context.Background(), activities, p, 2, 0.5, func(ev MultiDayProgress) {
		seen = append(seen, ev)
	})
	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Equal(t, 2, seen[0].Total)
}

func TestRunMultiDay_RejectsNonPositiveDays(t *testing.T) {
	p := baseRunnerParams()
	activities := twoHomeDays(p.Horizon)
	_, err := RunMultiDay(context.Background(), activities, p, 0, 0.5, nil)
	require.Error(t, err)
}

func TestRunSOCSweep_SamplesWithinBounds(t *testing.T) {
	p := baseRunnerParams()
	activities := twoHomeDays(p.Horizon)

	results, err := RunSOCSweep(context.Background(), activities, p, 5, 7)
	require.NoError(t, err)
	require.Len(t, results, 5)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.InitialSOC, 0.4)
		assert.Less(t, r.InitialSOC, 1.0)
		assert.False(t, r.Result.Infeasible)
	}
}

func TestRunBatch_OneResultPerSize(t *testing.T) {
	p := baseRunnerParams()
	activities := twoHomeDays(p.Horizon)

	results, err := RunBatch(context.Background(), activities, p, []int{2})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].NumActivities)
	assert.True(t, results[0].Feasible)
}

func TestRunBatch_RejectsSizeOutOfRange(t *testing.T) {
	p := baseRunnerParams()
	activities := twoHomeDays(p.Horizon)

	_, err := RunBatch(context.Background(), activities, p, []int{99})
	require.Error(t, err)
}

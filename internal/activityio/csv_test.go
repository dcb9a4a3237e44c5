package activityio

import (
	"os"
	"path/filepath"
	"testing"

	"evscheduled/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadActivities_ParsesRawIntervalsAndRemapsGroups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "activities.csv")
	body := `id,act_type,x,y,group,earliest_start,latest_start,min_duration,max_duration,des_start_time,des_duration,charge_mode,is_charging,is_service_station
0,home,0,0,1,0,0,0,0,0,0,0,0,0
1,work,10000,0,2,0,270,48,120,96,96,0,0,0
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	acts, err := LoadActivities(path, 5)
	require.NoError(t, err)
	require.Len(t, acts, 2)

	assert.Equal(t, 0, acts[0].Group)
	assert.Equal(t, 1, acts[1].Group)
	assert.Equal(t, "work", acts[1].Type)
	assert.Equal(t, 270, acts[1].LatestStart)
}

func TestLoadActivities_AcceptsHHMMWallClock(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "activities.csv")
	body := `id,act_type,x,y,group,earliest_start,latest_start,min_duration,max_duration,des_start_time,des_duration,charge_mode,is_charging,is_service_station
0,home,0,0,1,00:00,01:00,0,12,00:30,4,0,0,0
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	acts, err := LoadActivities(path, 5)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, 12, acts[0].LatestStart) // 60min / 5min
	assert.Equal(t, 6, acts[0].DesiredStart) // 30min / 5min
}

func TestLoadActivities_RejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "activities.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,act_type\n"), 0o644))

	_, err := LoadActivities(path, 5)
	require.Error(t, err)
}

func TestWriteSchedule_RoundTripsRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.csv")

	rows := []schedule.ScheduleRow{
		{ActivityID: 0, ActivityType: "home", StartHour: 0, Duration: 0, SOCStart: 0.7, SOCEnd: 0.7, Utility: 1.0},
		{ActivityID: 1, ActivityType: "work", StartHour: 8, Duration: 96, SOCStart: 0.7, SOCEnd: 0.6,
			IsCharging: false, ChargeMode: 0, Utility: 3.0, X: 10000, Y: 0},
	}
	require.NoError(t, WriteSchedule(path, rows))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), "act_id,act_type,start_time,duration")
	assert.Contains(t, string(out), "1,work,8.000000,96")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, `
params:
  horizon: 48
  interval_minutes: 5
  avg_speed_kmh: 30
  asc: [0.1, 1.0]
  early: [0, -0.1]
  late: [0, -0.1]
  long: [0, -0.01]
  short: [0, -0.02]
  battery_capacity_kwh: 60
  energy_consumption_kwh_per_km: 0.2
  seed: 7
driver:
  activities_file: activities.csv
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "activities.csv", cfg.Driver.ActivitiesFile)

	p := cfg.Params.ToScheduleParams()
	assert.Equal(t, 48, p.Horizon)
	assert.Equal(t, 2, p.NumGroups())
}

func TestLoad_MissingActivitiesFileRejected(t *testing.T) {
	path := writeTempConfig(t, `
params:
  horizon: 48
  asc: [0.1]
driver:
  activities_file: ""
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_InvalidParamsRejected(t *testing.T) {
	path := writeTempConfig(t, `
params:
  horizon: 0
  asc: [0.1]
driver:
  activities_file: activities.csv
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestMergeParams_OverrideWinsOnNonZero(t *testing.T) {
	base := ParamsConfig{Horizon: 48, Seed: 1, ASC: []float64{0.1}}
	override := ParamsConfig{Seed: 99}
	merged := MergeParams(base, override)
	assert.Equal(t, 48, merged.Horizon)
	assert.Equal(t, uint64(99), merged.Seed)
}

func TestLoadUnchecked_MergesParamsFile(t *testing.T) {
	dir := t.TempDir()
	paramsPath := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(paramsPath, []byte(`
params:
  horizon: 100
  asc: [0.1]
`), 0o644))

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
params_file: params.yaml
params:
  seed: 5
driver:
  activities_file: activities.csv
`), 0o644))

	cfg, err := LoadUnchecked(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Params.Horizon)
	assert.Equal(t, uint64(5), cfg.Params.Seed)
}

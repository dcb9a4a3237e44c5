package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"evscheduled/internal/schedule"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML) for one solve run:
// the scheduling parameter block, an optional separate params file the
// inline block can override, and the driver settings (activities file and
// output path).
type Config struct {
	// Optional: load scheduling parameters from a separate YAML (e.g.
	// examples/params/*.yaml). If both ParamsFile and Params are provided,
	// Params overrides ParamsFile.
	ParamsFile string       `yaml:"params_file"`
	Params     ParamsConfig `yaml:"params"`
	Driver     DriverConfig `yaml:"driver"`
}

// ParamsConfig mirrors schedule.Params field-for-field in YAML form.
type ParamsConfig struct {
	Horizon           int       `yaml:"horizon"`
	IntervalMinutes   int       `yaml:"interval_minutes"`
	AvgSpeedKMH       float64   `yaml:"avg_speed_kmh"`
	TravelTimePenalty float64   `yaml:"travel_time_penalty"`
	ASC               []float64 `yaml:"asc"`
	Early             []float64 `yaml:"early"`
	Late              []float64 `yaml:"late"`
	Long              []float64 `yaml:"long"`
	Short             []float64 `yaml:"short"`

	ChargePowerKW [4]float64 `yaml:"charge_power_kw"`
	TariffPerKWh  [4]float64 `yaml:"tariff_per_kwh"`

	BatteryCapacityKWh        float64 `yaml:"battery_capacity_kwh"`
	EnergyConsumptionKWhPerKM float64 `yaml:"energy_consumption_kwh_per_km"`

	UtilityErrorStdDev float64  `yaml:"utility_error_std_dev"`
	FixedInitialSOC    *float64 `yaml:"fixed_initial_soc"`
	Seed               uint64   `yaml:"seed"`
	MaxLabels          int      `yaml:"max_labels"`
}

// DriverConfig holds the run-level settings that are not part of the DP
// parameter block proper.
type DriverConfig struct {
	ActivitiesFile string `yaml:"activities_file"`
	OutputFile     string `yaml:"output_file"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it. Useful
// for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ParamsFile != "" {
		paramsPath := c.ParamsFile
		if !filepath.IsAbs(paramsPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, but fall back to the provided path (relative
			// to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), paramsPath)
			if _, err := os.Stat(cand); err == nil {
				paramsPath = cand
			}
		}
		loaded, err := loadParamsFile(paramsPath)
		if err != nil {
			return nil, err
		}
		c.Params = MergeParams(loaded, c.Params)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Driver.ActivitiesFile == "" {
		return errors.New("driver.activities_file is required")
	}
	p := c.Params.ToScheduleParams()
	if err := schedule.ValidateParams(&p); err != nil {
		return fmt.Errorf("params config invalid: %w", err)
	}
	return nil
}

// ToScheduleParams builds a schedule.Params from the YAML shape, applying
// the §6 derived-constant defaults for anything left zero-valued.
func (pc ParamsConfig) ToScheduleParams() schedule.Params {
	numGroups := len(pc.ASC)
	if numGroups == 0 {
		numGroups = 1
	}
	p := schedule.NewParams(numGroups)

	if pc.Horizon != 0 {
		p.Horizon = pc.Horizon
	}
	if pc.IntervalMinutes != 0 {
		p.IntervalMinutes = pc.IntervalMinutes
	}
	if pc.AvgSpeedKMH != 0 {
		p.AvgSpeedKMH = pc.AvgSpeedKMH
	}
	if pc.TravelTimePenalty != 0 {
		p.TravelTimePenalty = pc.TravelTimePenalty
	}
	if len(pc.ASC) > 0 {
		p.ASC = pc.ASC
		p.Early = pc.Early
		p.Late = pc.Late
		p.Long = pc.Long
		p.Short = pc.Short
	}
	if pc.ChargePowerKW != [4]float64{} {
		p.ChargePowerKW = pc.ChargePowerKW
	}
	p.TariffPerKWh = pc.TariffPerKWh
	if pc.BatteryCapacityKWh != 0 {
		p.BatteryCapacityKWh = pc.BatteryCapacityKWh
	}
	if pc.EnergyConsumptionKWhPerKM != 0 {
		p.EnergyConsumptionKWhPerKM = pc.EnergyConsumptionKWhPerKM
	}
	p.UtilityErrorStdDev = pc.UtilityErrorStdDev
	if pc.FixedInitialSOC != nil {
		p.SetFixedInitialSOC(*pc.FixedInitialSOC)
	}
	p.SetSeed(pc.Seed)
	if pc.MaxLabels != 0 {
		p.MaxLabels = pc.MaxLabels
	}
	return p
}

type paramsFileWrapper struct {
	Params ParamsConfig `yaml:"params"`
}

func loadParamsFile(path string) (ParamsConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ParamsConfig{}, err
	}
	var w paramsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ParamsConfig{}, err
	}
	return w.Params, nil
}

// MergeParams overlays non-zero fields from override onto base, the same
// shallow-merge idiom used to layer a battery file under request overrides.
func MergeParams(base, override ParamsConfig) ParamsConfig {
	out := base
	if override.Horizon != 0 {
		out.Horizon = override.Horizon
	}
	if override.IntervalMinutes != 0 {
		out.IntervalMinutes = override.IntervalMinutes
	}
	if override.AvgSpeedKMH != 0 {
		out.AvgSpeedKMH = override.AvgSpeedKMH
	}
	if override.TravelTimePenalty != 0 {
		out.TravelTimePenalty = override.TravelTimePenalty
	}
	if len(override.ASC) > 0 {
		out.ASC = override.ASC
		out.Early = override.Early
		out.Late = override.Late
		out.Long = override.Long
		out.Short = override.Short
	}
	if override.ChargePowerKW != [4]float64{} {
		out.ChargePowerKW = override.ChargePowerKW
	}
	if override.TariffPerKWh != [4]float64{} {
		out.TariffPerKWh = override.TariffPerKWh
	}
	if override.BatteryCapacityKWh != 0 {
		out.BatteryCapacityKWh = override.BatteryCapacityKWh
	}
	if override.EnergyConsumptionKWhPerKM != 0 {
		out.EnergyConsumptionKWhPerKM = override.EnergyConsumptionKWhPerKM
	}
	if override.UtilityErrorStdDev != 0 {
		out.UtilityErrorStdDev = override.UtilityErrorStdDev
	}
	if override.FixedInitialSOC != nil {
		out.FixedInitialSOC = override.FixedInitialSOC
	}
	if override.Seed != 0 {
		out.Seed = override.Seed
	}
	if override.MaxLabels != 0 {
		out.MaxLabels = override.MaxLabels
	}
	return out
}

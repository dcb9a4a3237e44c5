package schedule

import "fmt"

// Params is the parameter block of §4.1: horizon, time step, travel model,
// per-group utility coefficients, charging tariffs/rates, battery model
// constants, RNG seed, and the optional fixed initial SOC. One value is
// built per solve and never mutated once Solve begins (mirrors the
// teacher's model.BatteryParams: a flat, validated value type installed by
// the caller before a run).
type Params struct {
	Horizon         int     // H, number of discrete intervals covering 24h (288 at 5-min steps)
	IntervalMinutes int     // minutes per interval (5)
	AvgSpeedKMH     float64 // average travel speed, km/h

	TravelTimePenalty float64 // negative coefficient applied per interval of travel

	// Per-group utility coefficients, indexed 0..NumGroups-1. Group 0 (home)
	// is a normal index here, same as any other group.
	ASC   []float64
	Early []float64
	Late  []float64
	Long  []float64
	Short []float64

	// ChargePowerKW and TariffPerKWh are indexed 1..3 (index 0 unused) for
	// slow/fast/rapid. The "free" modes 4-6 reuse ChargePowerKW but always
	// price at zero tariff regardless of TariffPerKWh.
	ChargePowerKW [4]float64
	TariffPerKWh  [4]float64

	BatteryCapacityKWh        float64
	EnergyConsumptionKWhPerKM float64

	UtilityErrorStdDev float64

	FixedInitialSOC *float64
	Seed            uint64

	// MaxLabels bounds the label arena per DSSR iteration. Zero means use
	// the package default (ample headroom for spec-sized inputs; see
	// DefaultMaxLabels).
	MaxLabels int

	speedMetersPerInterval float64
	intervalHours          float64
}

// DefaultMaxLabels is the arena cap used when Params.MaxLabels is unset.
// Chosen generously above any realistic N*H*labels-per-cell for a
// single-day, single-driver solve; it exists only as a safety valve against
// a runaway enumeration, not as a tuning knob callers are expected to hit.
const DefaultMaxLabels = 2_000_000

// NumGroups returns the number of distinct groups implied by the
// coefficient arrays.
func (p *Params) NumGroups() int { return len(p.ASC) }

// SetFixedInitialSOC pins the initial SOC for every solve using this Params
// value, bypassing the RNG draw.
func (p *Params) SetFixedInitialSOC(soc float64) {
	v := soc
	p.FixedInitialSOC = &v
}

// ClearFixedInitialSOC reverts to drawing the initial SOC from the seeded RNG.
func (p *Params) ClearFixedInitialSOC() {
	p.FixedInitialSOC = nil
}

// SetUtilityErrorStdDev sets the std. dev. of the per-transition utility
// perturbation. Zero disables it entirely (deterministic DP).
func (p *Params) SetUtilityErrorStdDev(sd float64) {
	p.UtilityErrorStdDev = sd
}

// SetSeed sets the RNG seed used both for the initial SOC draw (when not
// fixed) and for the deterministic utility-error perturbation.
func (p *Params) SetSeed(seed uint64) {
	p.Seed = seed
}

// finalize fills in derived constants and applies defaults. Called once at
// the top of Solve; never mutates fields the caller set explicitly.
func (p *Params) finalize() error {
	if p.Horizon <= 0 {
		return fmt.Errorf("horizon must be > 0")
	}
	if p.IntervalMinutes <= 0 {
		return fmt.Errorf("interval minutes must be > 0")
	}
	if p.AvgSpeedKMH <= 0 {
		return fmt.Errorf("avg speed must be > 0")
	}
	if p.BatteryCapacityKWh <= 0 {
		return fmt.Errorf("battery capacity must be > 0")
	}
	if p.UtilityErrorStdDev < 0 {
		return fmt.Errorf("utility error std dev must be >= 0")
	}
	if p.MaxLabels <= 0 {
		p.MaxLabels = DefaultMaxLabels
	}

	p.intervalHours = float64(p.IntervalMinutes) / 60.0
	// km/h -> meters per interval
	p.speedMetersPerInterval = p.AvgSpeedKMH * 1000.0 / 60.0 * float64(p.IntervalMinutes)

	for _, arr := range [][]float64{p.ASC, p.Early, p.Late, p.Long, p.Short} {
		if len(arr) != len(p.ASC) {
			return fmt.Errorf("per-group coefficient arrays must all have the same length")
		}
	}
	return nil
}

// ValidateParams runs the same structural checks Solve applies to Params
// before any DP work starts, without requiring an activity table. Useful
// for config validation at load time.
func ValidateParams(p *Params) error {
	cp := *p
	return cp.finalize()
}

// IntervalsPerHour is a derived constant exposed for callers/CLI display.
func (p *Params) IntervalsPerHour() float64 {
	return 60.0 / float64(p.IntervalMinutes)
}

// SOCDecrementPerMeter is the derived per-meter battery drain.
func (p *Params) SOCDecrementPerMeter() float64 {
	return p.EnergyConsumptionKWhPerKM / 1000.0 / p.BatteryCapacityKWh
}

// SOCIncrementPerIntervalForMode is the derived per-interval charge gain for
// the given charge mode (0 if mode is ChargeModeNone).
func (p *Params) SOCIncrementPerIntervalForMode(mode int) float64 {
	if mode == ChargeModeNone {
		return 0
	}
	kw := p.ChargePowerKW[baseChargeMode(mode)]
	return kw * p.intervalHours / p.BatteryCapacityKWh
}

func (p *Params) chargePowerKW(mode int) float64 {
	if mode == ChargeModeNone {
		return 0
	}
	return p.ChargePowerKW[baseChargeMode(mode)]
}

func (p *Params) tariffPerKWh(mode int) float64 {
	if mode == ChargeModeNone || isFreeChargeMode(mode) {
		return 0
	}
	return p.TariffPerKWh[baseChargeMode(mode)]
}

// NewParams returns a Params populated with the derived constants named in
// §6: 5-minute intervals, 288 per day, 0.2 kWh/km, 60 kWh battery, and
// 7/22/50 kW charger speeds. Tariffs and per-group coefficients are left
// zero-valued for the caller to fill in.
func NewParams(numGroups int) Params {
	return Params{
		Horizon:                   288,
		IntervalMinutes:           5,
		AvgSpeedKMH:               30,
		TravelTimePenalty:         -0.1,
		ASC:                       make([]float64, numGroups),
		Early:                     make([]float64, numGroups),
		Late:                      make([]float64, numGroups),
		Long:                      make([]float64, numGroups),
		Short:                     make([]float64, numGroups),
		ChargePowerKW:             [4]float64{0, 7, 22, 50},
		TariffPerKWh:              [4]float64{0, 0, 0, 0},
		BatteryCapacityKWh:        60,
		EnergyConsumptionKWhPerKM: 0.2,
		MaxLabels:                 DefaultMaxLabels,
	}
}

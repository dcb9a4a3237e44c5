package models

// SolveRequest is the request body for running one DSSR-driven DP solve,
// the schedule-domain analogue of the teacher's BacktestRequest: an inline
// parameter block plus an inline activity table, so a caller never has to
// stage files on the server first.
type SolveRequest struct {
	Params     ParamsPayload     `json:"params" binding:"required"`
	Activities []ActivityPayload `json:"activities" binding:"required"`
	Options    SolveOptions      `json:"options,omitempty"`
}

// ParamsPayload mirrors config.ParamsConfig field-for-field in JSON form.
type ParamsPayload struct {
	Horizon           int       `json:"horizon,omitempty"`
	IntervalMinutes   int       `json:"interval_minutes,omitempty"`
	AvgSpeedKMH       float64   `json:"avg_speed_kmh,omitempty"`
	TravelTimePenalty float64   `json:"travel_time_penalty,omitempty"`
	ASC               []float64 `json:"asc" binding:"required"`
	Early             []float64 `json:"early,omitempty"`
	Late              []float64 `json:"late,omitempty"`
	Long              []float64 `json:"long,omitempty"`
	Short             []float64 `json:"short,omitempty"`

	ChargePowerKW [4]float64 `json:"charge_power_kw,omitempty"`
	TariffPerKWh  [4]float64 `json:"tariff_per_kwh,omitempty"`

	BatteryCapacityKWh        float64 `json:"battery_capacity_kwh,omitempty"`
	EnergyConsumptionKWhPerKM float64 `json:"energy_consumption_kwh_per_km,omitempty"`

	UtilityErrorStdDev float64  `json:"utility_error_std_dev,omitempty"`
	FixedInitialSOC    *float64 `json:"fixed_initial_soc,omitempty"`
	Seed               uint64   `json:"seed,omitempty"`
	MaxLabels          int      `json:"max_labels,omitempty"`
}

// ActivityPayload mirrors the §6 activity CSV columns in JSON form, group
// already 0-indexed (unlike the on-disk CSV's 1..G).
type ActivityPayload struct {
	ID   int    `json:"id"`
	Type string `json:"act_type"`

	X float64 `json:"x"`
	Y float64 `json:"y"`

	Group int `json:"group"`

	EarliestStart int `json:"earliest_start"`
	LatestStart   int `json:"latest_start"`
	MinDuration   int `json:"min_duration"`
	MaxDuration   int `json:"max_duration"`

	DesiredStart    int `json:"des_start_time"`
	DesiredDuration int `json:"des_duration"`

	ChargeMode       int  `json:"charge_mode"`
	IsCharging       bool `json:"is_charging"`
	IsServiceStation bool `json:"is_service_station"`
}

// SolveOptions carries request-scoped knobs that are not part of the DP
// parameter block proper.
type SolveOptions struct {
	IncludeForbidden bool `json:"include_forbidden,omitempty"`
}

// RankRequest asks the service to rank several named candidate activity
// tables against a shared parameter block, the schedule-domain analogue of
// the teacher's location-ranking RankRequest.
type RankRequest struct {
	Params     ParamsPayload                `json:"params" binding:"required"`
	Candidates map[string][]ActivityPayload `json:"candidates" binding:"required"`
}

// MultiDayRequest chains a fixed activity table across several days,
// feeding each day's ending SOC into the next as in internal/runner.RunMultiDay.
type MultiDayRequest struct {
	Params     ParamsPayload     `json:"params" binding:"required"`
	Activities []ActivityPayload `json:"activities" binding:"required"`
	NumDays    int               `json:"num_days" binding:"required"`
	StartSOC   float64           `json:"start_soc"`
}

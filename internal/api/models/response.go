package models

// SolveResponse is the response from running one solve.
type SolveResponse struct {
	ID                  string        `json:"id"`
	Infeasible          bool          `json:"infeasible"`
	DSSRIterations      int           `json:"dssr_iterations"`
	ForbiddenActivities []int         `json:"forbidden_activities,omitempty"`
	Utility             float64       `json:"utility,omitempty"`
	Schedule            []ScheduleRow `json:"schedule,omitempty"`
}

// ScheduleRow mirrors schedule.ScheduleRow field-for-field in JSON form
// (the §6 "Schedule output layout").
type ScheduleRow struct {
	ActivityID     int     `json:"act_id"`
	ActivityType   string  `json:"act_type"`
	Group          int     `json:"group"`
	StartHour      float64 `json:"start_time"`
	Duration       int     `json:"duration"`
	SOCStart       float64 `json:"soc_start"`
	SOCEnd         float64 `json:"soc_end"`
	IsCharging     bool    `json:"is_charging"`
	ChargeMode     int     `json:"charge_mode"`
	ChargeDuration float64 `json:"charge_duration"`
	ChargeCost     float64 `json:"charge_cost"`
	Utility        float64 `json:"utility"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
}

// RankResponse is the response from ranking candidate activity tables.
type RankResponse struct {
	Rankings []RankingEntry `json:"rankings"`
}

// RankingEntry is one ranked candidate.
type RankingEntry struct {
	Rank      int     `json:"rank"`
	Label     string  `json:"label"`
	Feasible  bool    `json:"feasible"`
	Utility   float64 `json:"utility"`
	DSSRIters int     `json:"dssr_iterations"`
	MinSOC    float64 `json:"min_soc"`
	MaxSOC    float64 `json:"max_soc"`
}

// MultiDayResponse is the response from a multi-day chained run.
type MultiDayResponse struct {
	ID   string          `json:"id"`
	Days []DayResultJSON `json:"days"`
}

// DayResultJSON is one day's outcome in a multi-day chain.
type DayResultJSON struct {
	Day        int           `json:"day"`
	Infeasible bool          `json:"infeasible"`
	StartSOC   float64       `json:"start_soc"`
	EndSOC     float64       `json:"end_soc"`
	Schedule   []ScheduleRow `json:"schedule,omitempty"`
}

// ErrorResponse represents an error response, kept identical in shape to
// the teacher's so existing API clients parsing `{"error": {...}}` do not
// need to change shape across domains.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

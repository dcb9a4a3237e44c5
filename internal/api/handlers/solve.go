// Package handlers adapts the teacher's BacktestHandler shape (a plain
// struct with gin.Context methods, errors returned as models.ErrorResponse)
// onto the schedule domain: one handler runs a solve, one ranks candidate
// activity sets, one chains a multi-day run.
package handlers

import (
	"net/http"
	"time"

	"evscheduled/internal/analysis"
	"evscheduled/internal/api/middleware"
	"evscheduled/internal/api/models"
	"evscheduled/internal/metrics"
	"evscheduled/internal/runner"
	"evscheduled/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SolveHandler handles solve-related requests.
type SolveHandler struct{}

// NewSolveHandler creates a new solve handler.
func NewSolveHandler() *SolveHandler {
	return &SolveHandler{}
}

// RunSolve handles POST /api/v1/solve.
func (h *SolveHandler) RunSolve(c *gin.Context) {
	var req models.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	params := toScheduleParams(req.Params)
	activities := toScheduleActivities(req.Activities)

	start := time.Now()
	res, err := schedule.Solve(c.Request.Context(), activities, params)
	if err != nil {
		respondSolveError(c, err)
		return
	}
	elapsed := time.Since(start).Seconds()
	outcome := metrics.Outcome(res.Infeasible)
	metrics.SolveDuration.WithLabelValues(outcome).Observe(elapsed)
	metrics.SolvesTotal.WithLabelValues(outcome).Inc()
	metrics.DSSRIterations.Observe(float64(res.DSSRIterations))

	resp := models.SolveResponse{
		ID:             uuid.New().String(),
		Infeasible:     res.Infeasible,
		DSSRIterations: res.DSSRIterations,
		Utility:        res.FinalUtility(),
		Schedule:       toResponseRows(res.Schedule),
	}
	if req.Options.IncludeForbidden {
		resp.ForbiddenActivities = res.ForbiddenActivities
	}
	c.JSON(http.StatusOK, resp)
}

// RunRank handles POST /api/v1/solve/rank: rank several named candidate
// activity tables against a shared parameter block.
func (h *SolveHandler) RunRank(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	params := toScheduleParams(req.Params)
	candidates := make(map[string][]schedule.Activity, len(req.Candidates))
	for label, acts := range req.Candidates {
		candidates[label] = toScheduleActivities(acts)
	}

	summaries, err := analysis.RankActivitySets(c.Request.Context(), candidates, params)
	if err != nil {
		respondSolveError(c, err)
		return
	}
	rankings := make([]models.RankingEntry, len(summaries))
	for i, s := range summaries {
		rankings[i] = models.RankingEntry{
			Rank:      i + 1,
			Label:     s.Label,
			Feasible:  s.Feasible,
			Utility:   s.Utility,
			DSSRIters: s.DSSRIters,
			MinSOC:    s.MinSOC,
			MaxSOC:    s.MaxSOC,
		}
	}
	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}

// RunMultiDay handles POST /api/v1/solve/multi-day.
func (h *SolveHandler) RunMultiDay(c *gin.Context) {
	var req models.MultiDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	params := toScheduleParams(req.Params)
	activities := toScheduleActivities(req.Activities)

	run, err := runner.RunMultiDay(c.Request.Context(), activities, params, req.NumDays, req.StartSOC, nil)
	if err != nil && len(run.Days) == 0 {
		respondSolveError(c, err)
		return
	}

	resp := models.MultiDayResponse{ID: run.RunID}
	for _, d := range run.Days {
		resp.Days = append(resp.Days, models.DayResultJSON{
			Day:        d.Day,
			Infeasible: d.Result.Infeasible,
			StartSOC:   d.StartSOC,
			EndSOC:     d.EndSOC,
			Schedule:   toResponseRows(d.Result.Schedule),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func respondSolveError(c *gin.Context, err error) {
	status, code := middleware.ErrorCode(err)
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}

func toScheduleParams(p models.ParamsPayload) schedule.Params {
	numGroups := len(p.ASC)
	if numGroups == 0 {
		numGroups = 1
	}
	sp := schedule.NewParams(numGroups)
	if p.Horizon != 0 {
		sp.Horizon = p.Horizon
	}
	if p.IntervalMinutes != 0 {
		sp.IntervalMinutes = p.IntervalMinutes
	}
	if p.AvgSpeedKMH != 0 {
		sp.AvgSpeedKMH = p.AvgSpeedKMH
	}
	if p.TravelTimePenalty != 0 {
		sp.TravelTimePenalty = p.TravelTimePenalty
	}
	sp.ASC = p.ASC
	if len(p.Early) > 0 {
		sp.Early = p.Early
	}
	if len(p.Late) > 0 {
		sp.Late = p.Late
	}
	if len(p.Long) > 0 {
		sp.Long = p.Long
	}
	if len(p.Short) > 0 {
		sp.Short = p.Short
	}
	if p.ChargePowerKW != [4]float64{} {
		sp.ChargePowerKW = p.ChargePowerKW
	}
	sp.TariffPerKWh = p.TariffPerKWh
	if p.BatteryCapacityKWh != 0 {
		sp.BatteryCapacityKWh = p.BatteryCapacityKWh
	}
	if p.EnergyConsumptionKWhPerKM != 0 {
		sp.EnergyConsumptionKWhPerKM = p.EnergyConsumptionKWhPerKM
	}
	sp.UtilityErrorStdDev = p.UtilityErrorStdDev
	if p.FixedInitialSOC != nil {
		sp.SetFixedInitialSOC(*p.FixedInitialSOC)
	}
	sp.SetSeed(p.Seed)
	if p.MaxLabels != 0 {
		sp.MaxLabels = p.MaxLabels
	}
	return sp
}

func toScheduleActivities(acts []models.ActivityPayload) []schedule.Activity {
	out := make([]schedule.Activity, len(acts))
	for i, a := range acts {
		out[i] = schedule.Activity{
			ID:               a.ID,
			Type:             a.Type,
			X:                a.X,
			Y:                a.Y,
			Group:            a.Group,
			EarliestStart:    a.EarliestStart,
			LatestStart:      a.LatestStart,
			MinDuration:      a.MinDuration,
			MaxDuration:      a.MaxDuration,
			DesiredStart:     a.DesiredStart,
			DesiredDuration:  a.DesiredDuration,
			ChargeMode:       a.ChargeMode,
			IsCharging:       a.IsCharging,
			IsServiceStation: a.IsServiceStation,
		}
	}
	return out
}

func toResponseRows(rows []schedule.ScheduleRow) []models.ScheduleRow {
	out := make([]models.ScheduleRow, len(rows))
	for i, r := range rows {
		out[i] = models.ScheduleRow{
			ActivityID:     r.ActivityID,
			ActivityType:   r.ActivityType,
			Group:          r.Group,
			StartHour:      r.StartHour,
			Duration:       r.Duration,
			SOCStart:       r.SOCStart,
			SOCEnd:         r.SOCEnd,
			IsCharging:     r.IsCharging,
			ChargeMode:     r.ChargeMode,
			ChargeDuration: r.ChargeDuration,
			ChargeCost:     r.ChargeCost,
			Utility:        r.Utility,
			X:              r.X,
			Y:              r.Y,
		}
	}
	return out
}

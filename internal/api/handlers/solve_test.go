package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"evscheduled/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func homeOnlyPayload(horizon int) []models.ActivityPayload {
	return []models.ActivityPayload{
		{ID: 0, Type: "home", Group: 0, EarliestStart: 0, LatestStart: 0},
		{ID: 1, Type: "home", Group: 0, EarliestStart: 0, LatestStart: horizon,
			MaxDuration: horizon, DesiredStart: horizon, DesiredDuration: horizon},
	}
}

func doJSON(t *testing.T, handler gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return rec
}

func TestRunSolve_FeasibleHomeOnlyReturnsSchedule(t *testing.T) {
	h := NewSolveHandler()
	req := models.SolveRequest{
		Params:     models.ParamsPayload{Horizon: 48, ASC: []float64{1.0}},
		Activities: homeOnlyPayload(48),
	}
	rec := doJSON(t, h.RunSolve, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Infeasible)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, resp.Schedule, 2)
}

func TestRunSolve_InvalidActivityTableReturnsBadRequest(t *testing.T) {
	h := NewSolveHandler()
	req := models.SolveRequest{
		Params:     models.ParamsPayload{Horizon: 48, ASC: []float64{1.0}},
		Activities: []models.ActivityPayload{{ID: 0, Type: "home", Group: 0}}, // no dusk
	}
	rec := doJSON(t, h.RunSolve, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestRunRank_RanksCandidatesFeasibleFirst(t *testing.T) {
	h := NewSolveHandler()
	req := models.RankRequest{
		Params: models.ParamsPayload{Horizon: 48, ASC: []float64{1.0}},
		Candidates: map[string][]models.ActivityPayload{
			"only": homeOnlyPayload(48),
		},
	}
	rec := doJSON(t, h.RunRank, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rankings, 1)
	assert.True(t, resp.Rankings[0].Feasible)
}

func TestRunMultiDay_ChainsAcrossDays(t *testing.T) {
	h := NewSolveHandler()
	req := models.MultiDayRequest{
		Params:     models.ParamsPayload{Horizon: 48, ASC: []float64{1.0}},
		Activities: homeOnlyPayload(48),
		NumDays:    2,
		StartSOC:   0.6,
	}
	rec := doJSON(t, h.RunMultiDay, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MultiDayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	require.Len(t, resp.Days, 2)
}

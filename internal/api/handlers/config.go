package handlers

import (
	"net/http"

	"evscheduled/internal/api/models"
	"evscheduled/internal/schedule"

	"github.com/gin-gonic/gin"
)

// ConfigHandler validates a scheduling parameter block without running a
// solve, the schedule-domain analogue of the teacher's battery-preset
// lookup handlers.
type ConfigHandler struct{}

// NewConfigHandler creates a new config handler.
func NewConfigHandler() *ConfigHandler {
	return &ConfigHandler{}
}

// ValidateParams handles POST /api/v1/params/validate.
func (h *ConfigHandler) ValidateParams(c *gin.Context) {
	var p models.ParamsPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	sp := toScheduleParams(p)
	if err := schedule.ValidateParams(&sp); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_PARAMS", Message: err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

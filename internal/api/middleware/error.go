package middleware

import (
	"net/http"

	"evscheduled/internal/schedule"

	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware handles panics and errors
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(error); ok {
			status, code := ErrorCode(err)
			c.JSON(status, gin.H{
				"error": gin.H{
					"code":    code,
					"message": err.Error(),
				},
			})
		} else if msg, ok := recovered.(string); ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": msg,
				},
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "An unexpected error occurred",
				},
			})
		}
		c.Abort()
	})
}

// ErrorCode maps a solve-domain error to the HTTP status and error code the
// handlers/solve.go response envelope uses, so a panicking solve (recovered
// above) and a normally-returned solve error report the same shape.
func ErrorCode(err error) (status int, code string) {
	switch err.(type) {
	case *schedule.InputError:
		return http.StatusBadRequest, "INVALID_INPUT"
	case *schedule.ResourceError:
		return http.StatusServiceUnavailable, "RESOURCE_EXHAUSTED"
	default:
		return http.StatusInternalServerError, "SOLVE_ERROR"
	}
}

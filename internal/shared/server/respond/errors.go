package respond

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ai-processor/internal/shared/telemetry"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error sends an error response and logs it as http.error.
func Error(c *gin.Context, status int, message, details string) {
	abort(c, "http.error", status, message, details)
}

// Failure reports a failed pipeline stage as a 500 with the error message as
// details, logged as "<stage>.failed" (e.g. recommendation_generation.failed).
func Failure(c *gin.Context, stage string, err error) {
	abort(c, StageEvent(stage), http.StatusInternalServerError, stage+" failed", err.Error())
}

// StageEvent returns the log event name for a failed stage.
func StageEvent(stage string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(stage)), " ", "_") + ".failed"
}

func abort(c *gin.Context, event string, status int, message, details string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if details != "" {
		fields["details"] = details
	}
	telemetry.Error(event, fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// RecoverStage converts a panic raised while running stage into a Failure
// response. It must be deferred directly by the handler.
func RecoverStage(c *gin.Context, stage string) {
	rec := recover()
	if rec == nil {
		return
	}
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	Failure(c, stage, err)
}

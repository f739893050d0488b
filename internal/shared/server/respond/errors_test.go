package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"ai-processor/internal/shared/telemetry"
)

func TestFailureBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/process", func(c *gin.Context) {
		Failure(c, "Processing", errors.New("boom"))
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/process", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Processing failed" || body["details"] != "boom" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestErrorOmitsEmptyDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/process", func(c *gin.Context) {
		Error(c, http.StatusBadRequest, "No materials provided", "")
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/process", nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, ok := body["details"]; ok {
		t.Fatalf("expected no details key, got %v", body)
	}
	if body["error"] != "No materials provided" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestRecoverStage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/categorize", func(c *gin.Context) {
		defer RecoverStage(c, "Categorization")
		panic("index out of range")
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/categorize", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "Categorization failed" || body.Details != "index out of range" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestFailureLogsStageEvent(t *testing.T) {
	var buf bytes.Buffer
	telemetry.Init("info", "json", &buf)
	defer telemetry.Init("info", "json", os.Stdout)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/recommendations", func(c *gin.Context) {
		Failure(c, "Recommendation generation", errors.New("summary.total_co2_kg: not a numeric value"))
	})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/recommendations", nil))

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode log line: %v (%s)", err, buf.String())
	}
	if line["message"] != "recommendation_generation.failed" || line["level"] != "error" {
		t.Fatalf("unexpected log line: %v", line)
	}
	if line["status"] != float64(http.StatusInternalServerError) {
		t.Fatalf("unexpected status field: %v", line["status"])
	}
}

func TestStageEvent(t *testing.T) {
	cases := map[string]string{
		"Processing":                "processing.failed",
		"Categorization":            "categorization.failed",
		"Recommendation generation": "recommendation_generation.failed",
	}
	for stage, want := range cases {
		if got := StageEvent(stage); got != want {
			t.Fatalf("StageEvent(%q) = %q, want %q", stage, got, want)
		}
	}
}

package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestStatus(t *testing.T) {
	svc := NewService()
	svc.Now = func() time.Time { return time.Date(2026, time.March, 4, 5, 6, 7, 8000, time.Local) }

	got := svc.Status()
	if got.Status != "healthy" || got.Service != "AI Processor" || got.Version != "1.0.0" {
		t.Fatalf("unexpected status: %+v", got)
	}
	if got.Timestamp != "2026-03-04T05:06:07.000008" {
		t.Fatalf("unexpected timestamp: %s", got.Timestamp)
	}
}

func TestHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewService().RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "healthy" || body["timestamp"] == "" {
		t.Fatalf("unexpected body: %v", body)
	}
}

package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestInfoWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	Init("info", "json", &buf)
	defer Init("info", "json", os.Stdout)

	Info("request.complete", map[string]any{"status": 200, "path": "/process"})

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if payload["message"] != "request.complete" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload["path"] != "/process" {
		t.Fatalf("unexpected path: %v", payload["path"])
	}
	if _, ok := payload["time"]; !ok {
		t.Fatalf("expected time field")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init("warn", "json", &buf)
	defer Init("info", "json", os.Stdout)

	Debug("hidden", nil)
	Info("hidden", nil)
	Error("shown", map[string]any{"error": "boom"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"shown"`) {
		t.Fatalf("expected error line, got %s", lines[0])
	}
}

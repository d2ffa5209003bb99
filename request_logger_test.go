package swc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Errorf("status %d", 500)
	logger.Warnf("retrying %s", "/v0/leagues/")
	logger.Debugf("body: %s", "[]")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 log lines, got %d: %q", len(lines), buf.String())
	}

	want := []struct{ level, message string }{
		{"error", "status 500"},
		{"warn", "retrying /v0/leagues/"},
		{"debug", "body: []"},
	}

	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}

		if entry["level"] != want[i].level {
			t.Errorf("line %d: expected level=%s, got %v", i, want[i].level, entry["level"])
		}
		if entry["message"] != want[i].message {
			t.Errorf("line %d: expected message=%q, got %v", i, want[i].message, entry["message"])
		}
		if entry["component"] != "swc" {
			t.Errorf("line %d: expected component=swc, got %v", i, entry["component"])
		}
	}
}

func TestZerologLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	logger.Debugf("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected debug output to be dropped, got %q", buf.String())
	}
}

func TestClientLogsThroughRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	rec := &recorder{}
	server := serveJSON(t, rec, countsJSON)
	client := newTestClient(t, server.URL, false, WithRequestLogger(logger))

	if _, err := client.GetCounts(t.Context()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "Entered get counts") {
		t.Errorf("expected client debug logs, got %q", buf.String())
	}
}

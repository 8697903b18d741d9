package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/isabella232/ducktape/internal/domain"
)

func TestSingleResult_Header(t *testing.T) {
	tests := []struct {
		name       string
		result     domain.TestResult
		wantStatus string
	}{
		{
			name:       "passing test",
			result:     domain.TestResult{TestID: "smoke.TestStartup", RunTimeSec: 1.5, Success: true},
			wantStatus: "status:     PASS",
		},
		{
			name:       "failing test",
			result:     domain.TestResult{TestID: "smoke.TestShutdown", RunTimeSec: 62, Success: false},
			wantStatus: "status:     FAIL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := NewSingleResult(tt.result).Header()
			if !strings.Contains(header, tt.result.TestID) {
				t.Errorf("header missing test id %q:\n%s", tt.result.TestID, header)
			}
			if !strings.Contains(header, tt.wantStatus) {
				t.Errorf("header missing %q:\n%s", tt.wantStatus, header)
			}
			lines := strings.Split(header, "\n")
			if lines[0] != strings.Repeat("=", SeparatorLength) {
				t.Error("header should start with a separator line")
			}
			if lines[len(lines)-1] != strings.Repeat("=", SeparatorLength) {
				t.Error("header should end with a separator line")
			}
		})
	}
}

func TestSingleResult_Body(t *testing.T) {
	t.Run("no payload yields empty body", func(t *testing.T) {
		s := NewSingleResult(domain.TestResult{TestID: "a", Success: true})
		if body := s.Body(); body != "" {
			t.Errorf("expected empty body, got %q", body)
		}
	})

	t.Run("payload is serialized on one line", func(t *testing.T) {
		s := NewSingleResult(domain.TestResult{
			TestID:  "a",
			Success: true,
			Data:    map[string]any{"throughput": 1200.0},
		})
		body := s.Body()
		if !strings.Contains(body, `{"throughput":1200}`) {
			t.Errorf("body missing payload JSON:\n%s", body)
		}
		if !strings.Contains(body, strings.Repeat("-", SeparatorLength)) {
			t.Errorf("body missing separator line:\n%s", body)
		}
	})
}

func TestSingleResultConsole_Report(t *testing.T) {
	var buf bytes.Buffer
	s := NewSingleResultConsole(domain.TestResult{TestID: "smoke.TestStartup", Success: true})
	s.Out = &buf

	if err := s.Report(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "smoke.TestStartup") {
		t.Errorf("console output missing test id: %q", buf.String())
	}
}

func TestSingleResultFile_Report(t *testing.T) {
	t.Run("writes report.txt and data.json", func(t *testing.T) {
		dir := t.TempDir()
		payload := map[string]any{"latency_ms": 12.5, "node": "worker-3"}
		s := NewSingleResultFile(domain.TestResult{
			TestID:     "perf.TestLatency",
			RunTimeSec: 3.25,
			Success:    true,
			Data:       payload,
			ResultsDir: dir,
		})

		if err := s.Report(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		report, err := os.ReadFile(filepath.Join(dir, "report.txt"))
		if err != nil {
			t.Fatalf("report.txt not written: %v", err)
		}
		if !strings.Contains(string(report), "perf.TestLatency") {
			t.Error("report.txt missing test id")
		}

		// The payload written to data.json must round-trip unchanged.
		raw, err := os.ReadFile(filepath.Join(dir, "data.json"))
		if err != nil {
			t.Fatalf("data.json not written: %v", err)
		}
		var got map[string]any
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("data.json is not valid JSON: %v", err)
		}
		if !reflect.DeepEqual(got, payload) {
			t.Errorf("payload round-trip mismatch: got %v, want %v", got, payload)
		}
	})

	t.Run("no data.json without payload", func(t *testing.T) {
		dir := t.TempDir()
		s := NewSingleResultFile(domain.TestResult{TestID: "a", Success: true, ResultsDir: dir})

		if err := s.Report(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "data.json")); !os.IsNotExist(err) {
			t.Error("data.json should not exist for a result without payload")
		}
	})

	t.Run("no data.json for empty payload", func(t *testing.T) {
		dir := t.TempDir()
		s := NewSingleResultFile(domain.TestResult{TestID: "a", Success: true, Data: map[string]any{}, ResultsDir: dir})

		if err := s.Report(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "data.json")); !os.IsNotExist(err) {
			t.Error("data.json should not exist for an empty payload")
		}
	})

	t.Run("unserializable payload still writes report.txt", func(t *testing.T) {
		dir := t.TempDir()
		s := NewSingleResultFile(domain.TestResult{TestID: "a", Success: true, Data: make(chan int), ResultsDir: dir})

		if err := s.Report(); err == nil {
			t.Error("expected error for unserializable payload")
		}
		if _, err := os.Stat(filepath.Join(dir, "report.txt")); err != nil {
			t.Errorf("report.txt should still be written: %v", err)
		}
	})
}

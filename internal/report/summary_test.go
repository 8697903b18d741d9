package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/isabella232/ducktape/internal/domain"
)

func sessionCollection(t *testing.T) *domain.ResultCollection {
	t.Helper()
	base := t.TempDir()
	return &domain.ResultCollection{
		Session:    domain.SessionContext{SessionID: "2026-08-28--003", ResultsDir: base},
		RunTimeSec: 63.5,
		Results: []domain.TestResult{
			{
				TestID:     "smoke.TestStartup",
				RunTimeSec: 1.5,
				Success:    true,
				ResultsDir: filepath.Join(base, "TestStartup", "1"),
			},
			{
				TestID:     "smoke.TestShutdown",
				RunTimeSec: 62.0,
				Success:    false,
				Summary:    "assertion X failed",
				ResultsDir: filepath.Join(base, "TestShutdown", "1"),
			},
		},
	}
}

func TestPlainSummary_Header(t *testing.T) {
	p := NewPlainSummary(sessionCollection(t))
	header := p.Header()

	for _, want := range []string{
		"session_id: 2026-08-28--003",
		"run time:   1 minute 3.500 seconds",
		"tests run:  2",
		"passed:     1",
		"failed:     1",
	} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q:\n%s", want, header)
		}
	}
}

func TestPlainSummary_ResultString(t *testing.T) {
	p := NewPlainSummary(sessionCollection(t))

	t.Run("passing result", func(t *testing.T) {
		s := p.ResultString(p.Results.Results[0])
		if !strings.HasPrefix(s, "PASS:     smoke.TestStartup") {
			t.Errorf("unexpected first line:\n%s", s)
		}
		if !strings.Contains(s, "run time: 1.500 seconds") {
			t.Errorf("missing run time:\n%s", s)
		}
		if strings.Contains(s, "assertion") {
			t.Errorf("passing result should carry no failure summary:\n%s", s)
		}
	})

	t.Run("failing result includes summary", func(t *testing.T) {
		s := p.ResultString(p.Results.Results[1])
		if !strings.HasPrefix(s, "FAIL:     smoke.TestShutdown") {
			t.Errorf("unexpected first line:\n%s", s)
		}
		if !strings.Contains(s, "    assertion X failed") {
			t.Errorf("missing indented failure summary:\n%s", s)
		}
	})

	t.Run("payload is appended", func(t *testing.T) {
		r := domain.TestResult{TestID: "a", Success: true, Data: []any{"x", 1.0}}
		s := p.ResultString(r)
		if !strings.Contains(s, `["x",1]`) {
			t.Errorf("missing payload JSON:\n%s", s)
		}
	})
}

func TestPlainSummary_String_PreservesOrder(t *testing.T) {
	c := sessionCollection(t)
	s := NewPlainSummary(c).String()

	first := strings.Index(s, "smoke.TestStartup")
	second := strings.Index(s, "smoke.TestShutdown")
	if first < 0 || second < 0 {
		t.Fatalf("summary missing result entries:\n%s", s)
	}
	if first > second {
		t.Error("results are not listed in collection order")
	}
}

func TestPlainSummaryConsole_Report(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainSummaryConsole(sessionCollection(t))
	p.Out = &buf

	if err := p.Report(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "tests run:  2") {
		t.Errorf("console output missing header: %q", buf.String())
	}
}

func TestPlainSummaryFile_Report(t *testing.T) {
	c := sessionCollection(t)
	p := NewPlainSummaryFile(c)

	if err := p.Report(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(c.Session.ResultsDir, "report.txt"))
	if err != nil {
		t.Fatalf("report.txt not written: %v", err)
	}
	for _, want := range []string{"tests run:  2", "passed:     1", "failed:     1", "FAIL:     smoke.TestShutdown", "assertion X failed"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("session report.txt missing %q", want)
		}
	}
}

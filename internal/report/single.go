package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/isabella232/ducktape/internal/domain"
)

// SingleResult renders the outcome of one test as plain text.
type SingleResult struct {
	Result domain.TestResult
}

// NewSingleResult creates a reporter for a single test result.
func NewSingleResult(r domain.TestResult) *SingleResult {
	return &SingleResult{Result: r}
}

// Header returns the framed identification block of the report.
func (s *SingleResult) Header() string {
	lines := []string{
		headerSeparator,
		fmt.Sprintf("test_id:    %s", s.Result.TestID),
		fmt.Sprintf("run time:   %s", FormatTime(s.Result.RunTimeSec)),
		fmt.Sprintf("status:     %s", PassFail(s.Result.Success)),
		headerSeparator,
	}
	return strings.Join(lines, "\n")
}

// Body returns the data payload block, or an empty string when the result
// carries no payload.
func (s *SingleResult) Body() string {
	line, ok := dataLine(s.Result)
	if !ok {
		return ""
	}
	return strings.Join([]string{line, bodySeparator}, "\n")
}

// String returns the whole report text.
func (s *SingleResult) String() string {
	return s.Header() + "\n" + s.Body()
}

// SingleResultConsole writes a single-test report to a console stream.
type SingleResultConsole struct {
	*SingleResult
	Out io.Writer
}

// NewSingleResultConsole creates a console reporter writing to stdout.
func NewSingleResultConsole(r domain.TestResult) *SingleResultConsole {
	return &SingleResultConsole{SingleResult: NewSingleResult(r), Out: os.Stdout}
}

// Report prints the report text.
func (s *SingleResultConsole) Report() error {
	if _, err := fmt.Fprintln(s.Out, s.String()); err != nil {
		return fmt.Errorf("write report for %s: %w", s.Result.TestID, err)
	}
	return nil
}

// SingleResultFile writes a single-test report into the test's results
// directory: report.txt always, data.json when the payload is present and
// non-empty.
type SingleResultFile struct {
	*SingleResult
}

// NewSingleResultFile creates a file reporter for one test result.
func NewSingleResultFile(r domain.TestResult) *SingleResultFile {
	return &SingleResultFile{SingleResult: NewSingleResult(r)}
}

// Report writes the report artifacts. report.txt is written first so a
// payload serialization failure still leaves the text report in place.
func (s *SingleResultFile) Report() error {
	dir := s.Result.ResultsDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}

	reportFile := filepath.Join(dir, "report.txt")
	if err := os.WriteFile(reportFile, []byte(s.String()), 0644); err != nil {
		return fmt.Errorf("write report.txt for %s: %w", s.Result.TestID, err)
	}

	if s.Result.Data == nil {
		return nil
	}
	data, err := json.Marshal(s.Result.Data)
	if err != nil {
		return fmt.Errorf("serialize data for %s: %w", s.Result.TestID, err)
	}
	if emptyPayload(data) {
		return nil
	}
	dataFile := filepath.Join(dir, "data.json")
	if err := os.WriteFile(dataFile, data, 0644); err != nil {
		return fmt.Errorf("write data.json for %s: %w", s.Result.TestID, err)
	}
	return nil
}

// emptyPayload reports whether a serialized payload holds no content worth a
// data.json artifact.
func emptyPayload(b []byte) bool {
	switch string(b) {
	case "null", "{}", "[]", `""`:
		return true
	}
	return false
}

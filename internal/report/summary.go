package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/isabella232/ducktape/internal/domain"
)

// Summary is the contract for session-level reporters. Every concrete
// variant (console, file, HTML) renders the whole session once per call.
type Summary interface {
	Report() error
}

// PlainSummary renders the aggregate outcome of a session as plain text.
type PlainSummary struct {
	Results *domain.ResultCollection
}

// NewPlainSummary creates a plain-text summary of a result collection.
func NewPlainSummary(c *domain.ResultCollection) *PlainSummary {
	return &PlainSummary{Results: c}
}

// Header returns the framed session statistics block.
func (p *PlainSummary) Header() string {
	lines := []string{
		headerSeparator,
		fmt.Sprintf("session_id: %s", p.Results.Session.SessionID),
		fmt.Sprintf("run time:   %s", FormatTime(p.Results.RunTimeSec)),
		fmt.Sprintf("tests run:  %d", p.Results.Len()),
		fmt.Sprintf("passed:     %d", p.Results.NumPassed()),
		fmt.Sprintf("failed:     %d", p.Results.NumFailed()),
		headerSeparator,
	}
	return strings.Join(lines, "\n")
}

// ResultString returns the per-result block: status and name, run time, the
// failure summary for failed tests, the payload when present, then a
// separator line.
func (p *PlainSummary) ResultString(r domain.TestResult) string {
	lines := []string{
		PassFail(r.Success) + ":     " + r.TestID,
		fmt.Sprintf("run time: %s", FormatTime(r.RunTimeSec)),
	}

	if !r.Success {
		lines = append(lines, "", "    "+r.Summary)
	}
	if line, ok := dataLine(r); ok {
		lines = append(lines, line)
	}
	lines = append(lines, bodySeparator)
	return strings.Join(lines, "\n")
}

// String returns the whole summary: header followed by every result block in
// collection order.
func (p *PlainSummary) String() string {
	lines := []string{p.Header()}
	for _, r := range p.Results.Results {
		lines = append(lines, p.ResultString(r))
	}
	return strings.Join(lines, "\n")
}

// PlainSummaryConsole writes the plain summary to a console stream.
type PlainSummaryConsole struct {
	*PlainSummary
	Out io.Writer
}

// NewPlainSummaryConsole creates a console summary reporter writing to stdout.
func NewPlainSummaryConsole(c *domain.ResultCollection) *PlainSummaryConsole {
	return &PlainSummaryConsole{PlainSummary: NewPlainSummary(c), Out: os.Stdout}
}

// Report prints the summary text.
func (p *PlainSummaryConsole) Report() error {
	if _, err := fmt.Fprintln(p.Out, p.String()); err != nil {
		return fmt.Errorf("write session summary: %w", err)
	}
	return nil
}

// PlainSummaryFile writes the plain summary to report.txt in the session
// results directory.
type PlainSummaryFile struct {
	*PlainSummary
}

// NewPlainSummaryFile creates a file summary reporter.
func NewPlainSummaryFile(c *domain.ResultCollection) *PlainSummaryFile {
	return &PlainSummaryFile{PlainSummary: NewPlainSummary(c)}
}

// Report writes report.txt into the session results directory.
func (p *PlainSummaryFile) Report() error {
	dir := p.Results.Session.ResultsDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create session results dir: %w", err)
	}
	reportFile := filepath.Join(dir, "report.txt")
	if err := os.WriteFile(reportFile, []byte(p.String()), 0644); err != nil {
		return fmt.Errorf("write session report.txt: %w", err)
	}
	return nil
}

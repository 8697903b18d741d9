package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TestResult represents the immutable outcome of a single test. It is
// produced by the test runner as each test finishes; reporters only read it.
type TestResult struct {
	TestID     string  `json:"test_id"`           // Fully qualified test identifier
	RunTimeSec float64 `json:"run_time"`          // Wall-clock run time in seconds
	Success    bool    `json:"success"`           // Whether the test passed
	Data       any     `json:"data,omitempty"`    // Arbitrary payload attached by the test
	Summary    string  `json:"summary,omitempty"` // Why the test failed; empty on success
	ResultsDir string  `json:"results_dir"`       // Per-test results directory
}

// ResultCollection is the ordered outcome of a whole session. Order is
// execution order and is preserved by every reporter.
type ResultCollection struct {
	Session    SessionContext `json:"session"`
	RunTimeSec float64        `json:"run_time"`
	Results    []TestResult   `json:"results"`
}

// Len returns the number of results in the collection.
func (c *ResultCollection) Len() int {
	return len(c.Results)
}

// NumPassed counts results with a success status.
func (c *ResultCollection) NumPassed() int {
	n := 0
	for _, r := range c.Results {
		if r.Success {
			n++
		}
	}
	return n
}

// NumFailed counts results with a failure status.
func (c *ResultCollection) NumFailed() int {
	return len(c.Results) - c.NumPassed()
}

// Validate checks that every per-test results directory lives inside the
// session results directory. Reporters rely on this when computing relative
// links, so a collection violating it is rejected up front.
func (c *ResultCollection) Validate() error {
	base, err := filepath.Abs(c.Session.ResultsDir)
	if err != nil {
		return fmt.Errorf("resolve session results dir: %w", err)
	}
	for _, r := range c.Results {
		dir, err := filepath.Abs(r.ResultsDir)
		if err != nil {
			return fmt.Errorf("resolve results dir for %s: %w", r.TestID, err)
		}
		rel, err := filepath.Rel(base, dir)
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return fmt.Errorf("results dir %s of test %s is outside session results dir %s", r.ResultsDir, r.TestID, c.Session.ResultsDir)
		}
	}
	return nil
}

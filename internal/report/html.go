package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/isabella232/ducktape/internal/domain"
)

// ResultRecord is the per-test record embedded into the HTML report's tests
// payload.
type ResultRecord struct {
	TestName   string `json:"test_name"`
	TestResult string `json:"test_result"` // "pass" or "fail"
	Summary    string `json:"summary"`
	TestLog    string `json:"test_log"` // results dir relative to the session dir
}

// HTMLSummary renders the session outcome as a templated HTML dashboard plus
// a companion stylesheet. Template and CSS content come from the injected
// asset resolver; substitution is literal token replacement, not a template
// language.
type HTMLSummary struct {
	Results *domain.ResultCollection
	Assets  AssetResolver
}

// NewHTMLSummary creates an HTML summary reporter using the given assets.
func NewHTMLSummary(c *domain.ResultCollection, assets AssetResolver) *HTMLSummary {
	return &HTMLSummary{Results: c, Assets: assets}
}

// FormatResult maps one test result to its HTML record. It fails when the
// test's results directory is not inside the session results directory.
func (h *HTMLSummary) FormatResult(r domain.TestResult) (ResultRecord, error) {
	logPath, err := RelativeLogPath(h.Results.Session.ResultsDir, r.ResultsDir)
	if err != nil {
		return ResultRecord{}, fmt.Errorf("test %s: %w", r.TestID, err)
	}

	status := "fail"
	if r.Success {
		status = "pass"
	}
	return ResultRecord{
		TestName:   r.TestID,
		TestResult: status,
		Summary:    r.Summary,
		TestLog:    logPath,
	}, nil
}

// FormatReport builds report.html from the template and copies the
// stylesheet to report.css, both in the session results directory.
func (h *HTMLSummary) FormatReport() error {
	template, err := h.Assets.Asset(TemplateAsset)
	if err != nil {
		return err
	}
	stylesheet, err := h.Assets.Asset(StylesheetAsset)
	if err != nil {
		return err
	}

	records := make([]string, 0, h.Results.Len())
	for _, r := range h.Results.Results {
		record, err := h.FormatResult(r)
		if err != nil {
			return err
		}
		b, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("serialize record for %s: %w", r.TestID, err)
		}
		records = append(records, string(b))
	}

	page := strings.NewReplacer(
		"{{num_tests}}", strconv.Itoa(h.Results.Len()),
		"{{num_passes}}", strconv.Itoa(h.Results.NumPassed()),
		"{{num_failures}}", strconv.Itoa(h.Results.NumFailed()),
		"{{run_time}}", FormatTime(h.Results.RunTimeSec),
		"{{session}}", h.Results.Session.SessionID,
		"{{tests}}", strings.Join(records, ","),
	).Replace(string(template))

	dir := h.Results.Session.ResultsDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create session results dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "report.html"), []byte(page), 0644); err != nil {
		return fmt.Errorf("write report.html: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "report.css"), stylesheet, 0644); err != nil {
		return fmt.Errorf("write report.css: %w", err)
	}
	return nil
}

// Report implements Summary.
func (h *HTMLSummary) Report() error {
	return h.FormatReport()
}

// Package report renders completed session results into text and HTML
// artifacts. Reporters are constructed per invocation, hold no state beyond
// the results they were given, and may be re-run; output is deterministic
// for unchanged input.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/isabella232/ducktape/internal/domain"
)

// SeparatorLength is the width of the border lines framing report sections.
const SeparatorLength = 100

var (
	headerSeparator = strings.Repeat("=", SeparatorLength)
	bodySeparator   = strings.Repeat("-", SeparatorLength)
)

// PassFail converts a success flag to its report label.
func PassFail(success bool) string {
	if success {
		return "PASS"
	}
	return "FAIL"
}

// FormatTime returns a human-readable interval for t seconds, e.g.
// "1 minute 5.000 seconds". The minutes component is omitted when zero.
func FormatTime(t float64) string {
	minutes := int(t / 60)
	seconds := math.Mod(t, 60)

	if minutes == 0 {
		return fmt.Sprintf("%.3f seconds", seconds)
	}
	unit := "minutes"
	if minutes == 1 {
		unit = "minute"
	}
	return fmt.Sprintf("%d %s %.3f seconds", minutes, unit, seconds)
}

// dataLine serializes a result's payload for inline display. The second
// return value reports whether the result carries a payload at all. A payload
// that cannot be serialized yields a marker line instead of aborting the
// surrounding report.
func dataLine(r domain.TestResult) (string, bool) {
	if r.Data == nil {
		return "", false
	}
	b, err := json.Marshal(r.Data)
	if err != nil {
		return fmt.Sprintf("data not serializable: %v", err), true
	}
	return string(b), true
}

package report

import "testing"

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{"zero", 0, "0.000 seconds"},
		{"sub-second", 0.5, "0.500 seconds"},
		{"seconds only", 42, "42.000 seconds"},
		{"exactly one minute", 60, "1 minute 0.000 seconds"},
		{"one minute and seconds", 65, "1 minute 5.000 seconds"},
		{"plural minutes", 125.5, "2 minutes 5.500 seconds"},
		{"over an hour", 3723.25, "62 minutes 3.250 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(tt.seconds); got != tt.expected {
				t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.expected)
			}
		})
	}
}

func TestPassFail(t *testing.T) {
	if got := PassFail(true); got != "PASS" {
		t.Errorf("PassFail(true) = %q, want PASS", got)
	}
	if got := PassFail(false); got != "FAIL" {
		t.Errorf("PassFail(false) = %q, want FAIL", got)
	}
}

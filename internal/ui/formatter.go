package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/isabella232/ducktape/internal/domain"
	"github.com/isabella232/ducktape/internal/report"
)

// Formatter displays session-level statistics on the console.
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintSessionStats displays an aggregate statistics table for a session.
func (f *Formatter) PrintSessionStats(results *domain.ResultCollection) {
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Session Report Summary                    ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Session")
	color.White("%-27s │\n", results.Session.SessionID)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Tests Run")
	color.White("%-27d │\n", results.Len())
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", results.NumPassed())
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", results.NumFailed())
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Run Time")
	color.White("%-27s │\n", report.FormatTime(results.RunTimeSec))

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if results.NumFailed() == 0 {
		color.Green("✓ All tests passed!")
		return
	}
	color.Red("✗ %d test(s) failed:", results.NumFailed())
	for _, r := range results.Results {
		if !r.Success {
			color.Yellow("  - %s", r.TestID)
		}
	}
}

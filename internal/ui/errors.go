package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/isabella232/ducktape/internal/domain"
	"github.com/isabella232/ducktape/internal/report"
	"github.com/rivo/tview"
)

// FailureViewer displays the failed tests of a session in an interactive TUI.
// It is read-only: results are immutable once the session has finished.
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View displays the failed results interactively. Sessions without failures
// print a confirmation and return without starting the TUI.
func (fv *FailureViewer) View(results *domain.ResultCollection) error {
	var failures []domain.TestResult
	for _, r := range results.Results {
		if !r.Success {
			failures = append(failures, r)
		}
	}
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	// List of failed tests (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, failure := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, failure.TestID), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header (shows the test's results directory)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Failure details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Test Failures (%d of %d tests) | Use ↑↓ to navigate, → to view details, ← to go back, Ctrl+C to exit ",
		len(failures), results.Len(),
	))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			failure := failures[index]
			statsView.SetText(fv.formatFailureStats(failure, index+1))
			detailsView.SetText(fv.formatFailureDetails(failure))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureDetails formats a failed result for display using tview color
// tags ([red], [cyan], etc.)
func (fv *FailureViewer) formatFailureDetails(failure domain.TestResult) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ Test: %s[white]\n\n", failure.TestID)
	fmt.Fprintf(&builder, "[cyan]Run time: %s[white]\n\n", report.FormatTime(failure.RunTimeSec))

	if failure.Summary != "" {
		fmt.Fprintf(&builder, "[yellow]Summary:[white]\n%s\n\n", failure.Summary)
	}

	if failure.Data != nil {
		fmt.Fprintf(&builder, "[yellow]Data:[white]\n")
		if pretty, err := json.MarshalIndent(failure.Data, "", "  "); err == nil {
			builder.Write(pretty)
			builder.WriteString("\n")
		} else {
			fmt.Fprintf(&builder, "[gray]not serializable: %v[white]\n", err)
		}
	}

	return builder.String()
}

// formatFailureStats formats the stats header for a failed result
func (fv *FailureViewer) formatFailureStats(failure domain.TestResult, number int) string {
	dir := failure.ResultsDir
	if dir == "" {
		dir = "unknown results dir"
	}

	testID := failure.TestID
	if testID == "" {
		testID = fmt.Sprintf("Test %d", number)
	}

	return fmt.Sprintf("[cyan]log:[white] [yellow]%s[white]::[yellow]%s[white]\n", dir, testID)
}

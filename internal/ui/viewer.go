package ui

import "github.com/isabella232/ducktape/internal/domain"

// Viewer displays session results in an interactive TUI
type Viewer interface {
	View(results *domain.ResultCollection) error
}

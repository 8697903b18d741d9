package commands

import (
	"github.com/isabella232/ducktape/internal/config"
	"github.com/isabella232/ducktape/internal/storage"
	"github.com/isabella232/ducktape/internal/ui"

	"github.com/spf13/cobra"
)

// FaillsCommand handles the faills command
type FaillsCommand struct {
	config *config.Config
	viewer ui.Viewer
}

// NewFaillsCommand creates a new FaillsCommand
func NewFaillsCommand(cfg *config.Config, viewer ui.Viewer) *FaillsCommand {
	return &FaillsCommand{
		config: cfg,
		viewer: viewer,
	}
}

// Execute runs the command
func (fc *FaillsCommand) Execute(cmd *cobra.Command, args []string) error {
	st := storage.NewJSONStorage(fc.config.GetResultsFilePath())
	results, err := st.Load()
	if err != nil {
		return err
	}

	return fc.viewer.View(results)
}

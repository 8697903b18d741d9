package commands

import (
	"github.com/isabella232/ducktape/internal/config"
	"github.com/isabella232/ducktape/internal/report"
	"github.com/isabella232/ducktape/internal/storage"
	"github.com/isabella232/ducktape/internal/ui"

	"github.com/spf13/cobra"
)

// ShowCommand handles the show command
type ShowCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(cfg *config.Config, formatter *ui.Formatter) *ShowCommand {
	return &ShowCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute prints the session summary without writing any files.
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	st := storage.NewJSONStorage(sc.config.GetResultsFilePath())
	results, err := st.Load()
	if err != nil {
		return err
	}

	if err := report.NewPlainSummaryConsole(results).Report(); err != nil {
		return err
	}

	sc.formatter.PrintSessionStats(results)
	return nil
}

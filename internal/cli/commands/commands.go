package commands

import (
	"github.com/isabella232/ducktape/internal/cli"
	"github.com/isabella232/ducktape/internal/config"
	"github.com/isabella232/ducktape/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Render *RenderCommand
	Show   *ShowCommand
	Faills *FaillsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	formatter := ui.NewFormatter()
	viewer := ui.NewFailureViewer()

	return &Commands{
		Render: NewRenderCommand(cfg, formatter),
		Show:   NewShowCommand(cfg, formatter),
		Faills: NewFaillsCommand(cfg, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		updated := config.Load(flags.ToConfigFlags())
		*cfg = *updated
		return nil
	}

	// Render command
	renderCmd := &cobra.Command{
		Use:     "render",
		Short:   "Render all report artifacts for a session",
		Long:    "Read the collected results of a finished session and write per-test reports, the session text summary and the HTML dashboard",
		RunE:    c.Render.Execute,
		PreRunE: applyFlags,
	}
	renderCmd.Flags().StringVarP(&flags.ResultsDir, "results-dir", "r", "", "Session results directory (default \"results\", or DUCKTAPE_RESULTS_DIR)")
	renderCmd.Flags().StringVar(&flags.TemplateDir, "template-dir", "", "Directory with report.html/report.css overriding the packaged assets")
	renderCmd.Flags().BoolVar(&flags.TextOnly, "text-only", false, "Skip the HTML report")
	renderCmd.Flags().BoolVar(&flags.HTMLOnly, "html-only", false, "Skip the text reports")
	renderCmd.Flags().BoolVar(&flags.Stdout, "stdout", false, "Also print the session summary to stdout")
	rootCmd.AddCommand(renderCmd)

	// Show command
	showCmd := &cobra.Command{
		Use:     "show",
		Short:   "Print the session summary",
		Long:    "Print the plain-text session summary to stdout without writing any files",
		RunE:    c.Show.Execute,
		PreRunE: applyFlags,
	}
	showCmd.Flags().StringVarP(&flags.ResultsDir, "results-dir", "r", "", "Session results directory (default \"results\", or DUCKTAPE_RESULTS_DIR)")
	rootCmd.AddCommand(showCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:     "faills",
		Short:   "View test failures interactively",
		Long:    "Display failed tests from the session in an interactive viewer",
		RunE:    c.Faills.Execute,
		PreRunE: applyFlags,
	}
	faillsCmd.Flags().StringVarP(&flags.ResultsDir, "results-dir", "r", "", "Session results directory (default \"results\", or DUCKTAPE_RESULTS_DIR)")
	rootCmd.AddCommand(faillsCmd)
}

package commands

import (
	"errors"
	"fmt"

	"github.com/isabella232/ducktape/internal/config"
	"github.com/isabella232/ducktape/internal/report"
	"github.com/isabella232/ducktape/internal/storage"
	"github.com/isabella232/ducktape/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RenderCommand handles the render command
type RenderCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewRenderCommand creates a new RenderCommand
func NewRenderCommand(cfg *config.Config, formatter *ui.Formatter) *RenderCommand {
	return &RenderCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute renders every requested artifact for the session. Report
// generation is best-effort: a failing artifact is reported and the
// remaining reporters still run.
func (rc *RenderCommand) Execute(cmd *cobra.Command, args []string) error {
	st := storage.NewJSONStorage(rc.config.GetResultsFilePath())
	results, err := st.Load()
	if err != nil {
		return err
	}

	var failed []error
	collect := func(err error) {
		if err != nil {
			color.Red("✗ %v", err)
			failed = append(failed, err)
		}
	}

	if !rc.config.Flags.HTMLOnly {
		// Per-test reports
		bar := ui.NewProgressBar(results.Len())
		written, errored := 0, 0
		for _, r := range results.Results {
			if err := report.NewSingleResultFile(r).Report(); err != nil {
				errored++
				collect(err)
			} else {
				written++
			}
			bar.Update(written, errored)
		}
		bar.Finish()

		collect(report.NewPlainSummaryFile(results).Report())
	}

	if !rc.config.Flags.TextOnly {
		collect(report.NewHTMLSummary(results, rc.assets()).Report())
	}

	if rc.config.Flags.Stdout {
		collect(report.NewPlainSummaryConsole(results).Report())
	}

	rc.formatter.PrintSessionStats(results)

	if len(failed) > 0 {
		return fmt.Errorf("%d report artifact(s) failed: %w", len(failed), errors.Join(failed...))
	}
	return nil
}

// assets picks the template source: an override directory when configured,
// otherwise the assets packaged into the binary.
func (rc *RenderCommand) assets() report.AssetResolver {
	if rc.config.TemplateDir != "" {
		return report.DirAssets{Dir: rc.config.TemplateDir}
	}
	return report.EmbeddedAssets{}
}

package main

import (
	"fmt"
	"os"

	"github.com/isabella232/ducktape/internal/cli"
	"github.com/isabella232/ducktape/internal/cli/commands"
	"github.com/isabella232/ducktape/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "ducktape-report",
		Short:   "Render reports for finished test sessions",
		Long:    `Render the collected results of a finished test session into per-test text reports, an aggregated session summary and an HTML dashboard.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

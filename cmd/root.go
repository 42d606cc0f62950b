// Package cmd implements the subcommands the host installer engine invokes at
// its lifecycle points. The process exit code is the step success signal the
// engine consumes: non-zero aborts the engine's own flow.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/techdeckio/setup/internal/datadir"
	"github.com/techdeckio/setup/util"
	"github.com/techdeckio/setup/version"
)

var (
	dataDir  string
	logLevel string
	logFile  string

	rootCmd = &cobra.Command{
		Use:          "techdeck-setup",
		Short:        "TechDeck installation lifecycle helper",
		Long:         "Maintains the per-user TechDeck state (data directories, admin configuration, install record) on behalf of the installer engine.",
		Version:      version.SetupVersion(),
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", datadir.DefaultRoot(), "per-user TechDeck data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "setup log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "console", "setup log location, \"console\" logs to stderr; postinstall defaults to <data-dir>/logs/setup.log")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setupCommand applies TD_* environment overrides and initializes logging.
// Called at the start of every subcommand run.
func setupCommand(cmd *cobra.Command) error {
	util.SetFlagsFromEnvVars(rootCmd)
	util.SetFlagsFromEnvVars(cmd)
	return util.InitLog(logLevel, logFile)
}

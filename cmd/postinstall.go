package cmd

import (
	"github.com/spf13/cobra"

	"github.com/techdeckio/setup/internal/datadir"
	"github.com/techdeckio/setup/internal/installrecord"
	"github.com/techdeckio/setup/internal/lifecycle"
	"github.com/techdeckio/setup/internal/retention"
	"github.com/techdeckio/setup/util"
)

var (
	installDir string
	appVersion string
)

var postinstallCmd = &cobra.Command{
	Use:   "postinstall",
	Short: "Run the post-install bootstrap sequence",
	Long: `Invoked by the installer engine after file placement. Ensures the per-user
data tree, creates the default admin configuration if none exists and records
the install location and version. A non-zero exit aborts the install.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupCommand(cmd); err != nil {
			return err
		}

		// unless the engine picked a log location, the setup log goes into
		// the data tree the bootstrap is about to create
		if !rootCmd.PersistentFlags().Changed("log-file") {
			if err := util.InitLog(logLevel, datadir.LogFile(dataDir)); err != nil {
				return err
			}
		}

		controller := lifecycle.NewController(dataDir, installrecord.NewDefaultStore(dataDir), retention.NewConsolePrompter())
		return controller.HandlePostInstall(cmd.Context(), installDir, appVersion)
	},
}

func init() {
	postinstallCmd.PersistentFlags().StringVar(&installDir, "install-dir", "", "directory the application binaries were installed to")
	postinstallCmd.PersistentFlags().StringVar(&appVersion, "app-version", "", "application version being installed")
	if err := postinstallCmd.MarkPersistentFlagRequired("install-dir"); err != nil {
		panic(err)
	}
	if err := postinstallCmd.MarkPersistentFlagRequired("app-version"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(postinstallCmd)
}

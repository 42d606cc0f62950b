package cmd

import (
	"github.com/spf13/cobra"

	"github.com/techdeckio/setup/internal/installrecord"
	"github.com/techdeckio/setup/internal/lifecycle"
	"github.com/techdeckio/setup/internal/retention"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Resolve data retention before the application is removed",
	Long: `Invoked by the installer engine before it removes the installed binaries.
Asks whether the per-user data (plugins, profiles, logs, admin configuration)
should be kept or removed and executes the decision. Data cleanup problems are
reported but never block the removal of the application itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupCommand(cmd); err != nil {
			return err
		}

		controller := lifecycle.NewController(dataDir, installrecord.NewDefaultStore(dataDir), retention.NewConsolePrompter())
		outcome, err := controller.HandleUninstall(cmd.Context())
		if err != nil {
			return err
		}

		cmd.Println(controller.Acknowledgement(outcome))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "opsctl",
		Short:        "Operator automation for the OPSource/Anya repositories",
		Long:         "opsctl bundles the cross-repository operator scripts: BIP protocol validation, Bitcoin security scanning, labelling sync, installer dry-runs, milestone tracking, and development reports.",
		SilenceUsage: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newInstallersCmd())
	cmd.AddCommand(newMilestonesCmd())
	cmd.AddCommand(newTrackCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

package deploy

import (
	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/forge"
)

var apiClient *forge.Client

func SetAPIClient(client *forge.Client) {
	apiClient = client
}

var DeployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Commands for managing site deployments",
	Long:  `Commands for enabling, triggering, and inspecting site deployments.`,
	Example: `forgectl deploy enable --server 123 --site 45
forgectl deploy run --server 123 --site 45
forgectl deploy log --server 123 --site 45
forgectl deploy disable --server 123 --site 45`,
}

var (
	serverID int
	siteID   int
)

func init() {
	DeployCmd.PersistentFlags().IntVarP(&serverID, "server", "s", 0, "Server ID (required)")
	DeployCmd.PersistentFlags().IntVar(&siteID, "site", 0, "Site ID (required)")
	_ = DeployCmd.MarkPersistentFlagRequired("server")
	_ = DeployCmd.MarkPersistentFlagRequired("site")

	DeployCmd.AddCommand(EnableCmd)
	DeployCmd.AddCommand(DisableCmd)
	DeployCmd.AddCommand(RunCmd)
	DeployCmd.AddCommand(ResetCmd)
	DeployCmd.AddCommand(LogCmd)
}

package daemon

import (
	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/forge"
)

var apiClient *forge.Client

func SetAPIClient(client *forge.Client) {
	apiClient = client
}

var DaemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Commands for managing daemons",
	Long:  `Commands for managing supervised background processes on a server.`,
	Example: `forgectl daemon list --server 123
forgectl daemon create --server 123 --command "php artisan queue:work" --user forge
forgectl daemon restart --server 123 45
forgectl daemon delete --server 123 45`,
}

var serverID int

func init() {
	DaemonCmd.PersistentFlags().IntVarP(&serverID, "server", "s", 0, "Server ID (required)")
	_ = DaemonCmd.MarkPersistentFlagRequired("server")

	DaemonCmd.AddCommand(ListCmd)
	DaemonCmd.AddCommand(CreateCmd)
	DaemonCmd.AddCommand(DeleteCmd)
	DaemonCmd.AddCommand(RestartCmd)
}

package daemon

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/printer"
)

var RestartCmd = &cobra.Command{
	Use:   "restart <daemon-id>",
	Short: "Restart a daemon",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestart,
}

func runRestart(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	daemonID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid daemon ID %q", args[0])
	}

	if err := apiClient.Daemons.Restart(cmd.Context(), serverID, daemonID); err != nil {
		return fmt.Errorf("failed to restart daemon: %w", err)
	}

	printer.PrintSuccess(fmt.Sprintf("Daemon %d restarting", daemonID))
	return nil
}

package daemon

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/printer"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <daemon-id>",
	Short: "Remove a daemon from a server",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	daemonID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid daemon ID %q", args[0])
	}

	if err := apiClient.Daemons.Delete(cmd.Context(), serverID, daemonID); err != nil {
		return fmt.Errorf("failed to delete daemon: %w", err)
	}

	printer.PrintSuccess(fmt.Sprintf("Daemon %d removed from server %d", daemonID, serverID))
	return nil
}

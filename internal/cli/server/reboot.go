package server

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/printer"
)

var RebootCmd = &cobra.Command{
	Use:   "reboot <server-id>",
	Short: "Reboot a server",
	Args:  cobra.ExactArgs(1),
	RunE:  runReboot,
}

func runReboot(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	serverID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid server ID %q", args[0])
	}

	if err := apiClient.Servers.Reboot(cmd.Context(), serverID); err != nil {
		return fmt.Errorf("failed to reboot server: %w", err)
	}

	printer.PrintSuccess(fmt.Sprintf("Server %d is rebooting", serverID))
	return nil
}

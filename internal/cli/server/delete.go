package server

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/printer"
)

var deleteConfirmed bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <server-id>",
	Short: "Delete a server",
	Long:  `Destroys the server at the provider. This cannot be undone.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteConfirmed, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	serverID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid server ID %q", args[0])
	}

	if !deleteConfirmed {
		return fmt.Errorf("refusing to delete server %d without --yes", serverID)
	}

	printer.PrintInfo(fmt.Sprintf("Deleting server %d...", serverID))
	if err := apiClient.Servers.Delete(cmd.Context(), serverID); err != nil {
		return fmt.Errorf("failed to delete server: %w", err)
	}

	printer.PrintSuccess(fmt.Sprintf("Server %d deleted", serverID))
	return nil
}

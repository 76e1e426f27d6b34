package site

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/printer"
)

var deleteConfirmed bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <site-id>",
	Short: "Delete a site",
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

	siteID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid site ID %q", args[0])
	}

	if !deleteConfirmed {
		return fmt.Errorf("refusing to delete site %d without --yes", siteID)
	}

	if err := apiClient.Sites.Delete(cmd.Context(), serverID, siteID); err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}

	printer.PrintSuccess(fmt.Sprintf("Site %d deleted from server %d", siteID, serverID))
	return nil
}

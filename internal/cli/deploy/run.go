package deploy

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/printer"
)

var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Trigger a deployment now",
	RunE: func(cmd *cobra.Command, args []string) error {
		if apiClient == nil {
			return fmt.Errorf("API client not initialized")
		}
		site, err := apiClient.Deployments.Deploy(cmd.Context(), serverID, siteID)
		if err != nil {
			return fmt.Errorf("failed to trigger deployment: %w", err)
		}
		printer.PrintSuccess(fmt.Sprintf("Deployment started for %s", site.Name))
		return nil
	},
}

var ResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the deployment status of a site",
	RunE: func(cmd *cobra.Command, args []string) error {
		if apiClient == nil {
			return fmt.Errorf("API client not initialized")
		}
		if err := apiClient.Deployments.Reset(cmd.Context(), serverID, siteID); err != nil {
			return fmt.Errorf("failed to reset deployment status: %w", err)
		}
		printer.PrintSuccess(fmt.Sprintf("Deployment status reset for site %d", siteID))
		return nil
	},
}

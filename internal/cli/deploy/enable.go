package deploy

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/printer"
)

var EnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable quick deploy for a site",
	RunE: func(cmd *cobra.Command, args []string) error {
		if apiClient == nil {
			return fmt.Errorf("API client not initialized")
		}
		if _, err := apiClient.Deployments.Enable(cmd.Context(), serverID, siteID); err != nil {
			return fmt.Errorf("failed to enable deployments: %w", err)
		}
		printer.PrintSuccess(fmt.Sprintf("Quick deploy enabled for site %d", siteID))
		return nil
	},
}

var DisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable quick deploy for a site",
	RunE: func(cmd *cobra.Command, args []string) error {
		if apiClient == nil {
			return fmt.Errorf("API client not initialized")
		}
		if _, err := apiClient.Deployments.Disable(cmd.Context(), serverID, siteID); err != nil {
			return fmt.Errorf("failed to disable deployments: %w", err)
		}
		printer.PrintSuccess(fmt.Sprintf("Quick deploy disabled for site %d", siteID))
		return nil
	},
}

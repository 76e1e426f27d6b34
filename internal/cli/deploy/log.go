package deploy

import (
	"fmt"

	"github.com/spf13/cobra"
)

var LogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the latest deployment log",
	RunE: func(cmd *cobra.Command, args []string) error {
		if apiClient == nil {
			return fmt.Errorf("API client not initialized")
		}
		log, err := apiClient.Deployments.Log(cmd.Context(), serverID, siteID)
		if err != nil {
			return fmt.Errorf("failed to fetch deployment log: %w", err)
		}
		fmt.Print(log)
		return nil
	},
}

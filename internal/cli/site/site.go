package site

import (
	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/forge"
)

var apiClient *forge.Client

func SetAPIClient(client *forge.Client) {
	apiClient = client
}

var SiteCmd = &cobra.Command{
	Use:   "site",
	Short: "Commands for managing sites",
	Long:  `Commands for managing sites on a server.`,
	Example: `forgectl site list --server 123
forgectl site create --server 123 --domain example.com --type php
forgectl site show --server 123 45
forgectl site delete --server 123 45`,
}

var serverID int

func init() {
	SiteCmd.PersistentFlags().IntVarP(&serverID, "server", "s", 0, "Server ID (required)")
	_ = SiteCmd.MarkPersistentFlagRequired("server")

	SiteCmd.AddCommand(ListCmd)
	SiteCmd.AddCommand(CreateCmd)
	SiteCmd.AddCommand(ShowCmd)
	SiteCmd.AddCommand(DeleteCmd)
}

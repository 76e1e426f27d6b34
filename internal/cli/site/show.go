package site

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/printer"
)

var ShowCmd = &cobra.Command{
	Use:   "show <site-id>",
	Short: "Show one site",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	siteID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid site ID %q", args[0])
	}

	site, err := apiClient.Sites.Get(cmd.Context(), serverID, siteID)
	if err != nil {
		return fmt.Errorf("failed to get site: %w", err)
	}

	p := printer.New(printer.OutputTypeJSON, false)
	return p.PrintJSON(site)
}

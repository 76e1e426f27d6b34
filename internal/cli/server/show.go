package server

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/printer"
)

var ShowCmd = &cobra.Command{
	Use:   "show <server-id>",
	Short: "Show one server",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	serverID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid server ID %q", args[0])
	}

	server, err := apiClient.Servers.Get(cmd.Context(), serverID)
	if err != nil {
		return fmt.Errorf("failed to get server: %w", err)
	}

	p := printer.New(printer.OutputTypeJSON, false)
	return p.PrintJSON(server)
}

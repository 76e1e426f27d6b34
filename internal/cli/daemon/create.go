package daemon

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/forge"
	"github.com/gabfr/forge-go/pkg/printer"
)

var (
	createCommand string
	createUser    string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Install a daemon on a server",
	RunE:  runCreate,
}

func init() {
	CreateCmd.Flags().StringVar(&createCommand, "command", "", "Command to supervise (required)")
	CreateCmd.Flags().StringVar(&createUser, "user", "forge", "Unix user to run as")
	_ = CreateCmd.MarkFlagRequired("command")
}

func runCreate(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	daemon, err := apiClient.Daemons.Create(cmd.Context(), serverID, forge.DaemonCreateOpts{
		Command: createCommand,
		User:    createUser,
	})
	if err != nil {
		return fmt.Errorf("failed to create daemon: %w", err)
	}

	printer.PrintSuccess(fmt.Sprintf("Daemon %d installing on server %d", daemon.ID, serverID))
	return nil
}

// Package cli assembles the forgectl command tree.
package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	internalcli "github.com/gabfr/forge-go/internal/cli"
	"github.com/gabfr/forge-go/internal/cli/daemon"
	"github.com/gabfr/forge-go/internal/cli/deploy"
	"github.com/gabfr/forge-go/internal/cli/server"
	"github.com/gabfr/forge-go/internal/cli/site"
	"github.com/gabfr/forge-go/pkg/cli/config"
	"github.com/gabfr/forge-go/pkg/forge"
)

var verbose bool

// Root builds the forgectl command tree. The API client is constructed
// lazily so commands that never touch the API (version, help) work
// without a token.
func Root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forgectl",
		Short: "Manage servers, sites, and daemons on Forge",
		Long: `forgectl provisions and manages cloud servers through the Forge API:
servers across providers, the sites deployed on them, and the daemons
that keep them running.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "version", "help", "completion":
				return nil
			}
			return initAPIClient()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(server.ServerCmd)
	rootCmd.AddCommand(site.SiteCmd)
	rootCmd.AddCommand(daemon.DaemonCmd)
	rootCmd.AddCommand(deploy.DeployCmd)
	rootCmd.AddCommand(internalcli.VersionCmd)

	return rootCmd
}

func initAPIClient() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Token == "" {
		return fmt.Errorf("no API token configured (set FORGE_API_TOKEN or add token to the profile)")
	}

	opts := []forge.ClientOption{
		forge.WithBaseURL(cfg.BaseURL),
		forge.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		opts = append(opts, forge.WithLogger(logger))
	}

	client := forge.NewClient(cfg.Token, opts...)
	server.SetAPIClient(client)
	site.SetAPIClient(client)
	daemon.SetAPIClient(client)
	deploy.SetAPIClient(client)
	return nil
}

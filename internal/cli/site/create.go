package site

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/forge"
	"github.com/gabfr/forge-go/pkg/printer"
)

var (
	createDomain    string
	createType      string
	createDirectory string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a site on a server",
	RunE:  runCreate,
}

func init() {
	CreateCmd.Flags().StringVar(&createDomain, "domain", "", "Site domain (required)")
	CreateCmd.Flags().StringVar(&createType, "type", "", "Project type (php, html)")
	CreateCmd.Flags().StringVar(&createDirectory, "directory", "", "Web directory (e.g. /public)")
	_ = CreateCmd.MarkFlagRequired("domain")
}

func runCreate(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	site, err := apiClient.Sites.Create(cmd.Context(), serverID, forge.SiteCreateOpts{
		Domain:      createDomain,
		ProjectType: createType,
		Directory:   createDirectory,
	})
	if err != nil {
		return fmt.Errorf("failed to create site: %w", err)
	}

	printer.PrintSuccess(fmt.Sprintf("Site %q created with ID %d", site.Name, site.ID))
	return nil
}

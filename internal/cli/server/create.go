package server

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/printer"
)

var (
	createProvider     string
	createCredential   int
	createName         string
	createRegion       string
	createSize         string
	createPHP          string
	createMariaDB      string
	createMySQL        string
	createNodeBalancer bool
	createRecipe       int
	createPublicIP     string
	createPrivateIP    string
	createNetwork      []int
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Provision a new server",
	Long: `Provision a new server on a cloud provider. Validation happens
locally before any request is sent: unknown regions, sizes, and PHP
versions are rejected against the provider's catalog.`,
	RunE: runCreate,
}

func init() {
	CreateCmd.Flags().StringVar(&createProvider, "provider", "ocean2", "Cloud provider (ocean2, linode, aws, custom)")
	CreateCmd.Flags().IntVar(&createCredential, "credential", 0, "Provider credential ID")
	CreateCmd.Flags().StringVar(&createName, "name", "", "Server name")
	CreateCmd.Flags().StringVar(&createRegion, "region", "", "Provider region")
	CreateCmd.Flags().StringVar(&createSize, "size", "", "Memory size tier (e.g. 1GB)")
	CreateCmd.Flags().StringVar(&createPHP, "php", "", "PHP version (e.g. 7.1)")
	CreateCmd.Flags().StringVar(&createMariaDB, "maria", "", "Install MariaDB with this database name")
	CreateCmd.Flags().StringVar(&createMySQL, "mysql", "", "Install MySQL with this database name")
	CreateCmd.Flags().BoolVar(&createNodeBalancer, "node-balancer", false, "Provision as a load balancer")
	CreateCmd.Flags().IntVar(&createRecipe, "recipe", 0, "Recipe ID to run after provisioning")
	CreateCmd.Flags().StringVar(&createPublicIP, "public-ip", "", "Public IP (custom provider)")
	CreateCmd.Flags().StringVar(&createPrivateIP, "private-ip", "", "Private IP (custom provider)")
	CreateCmd.Flags().IntSliceVar(&createNetwork, "network", nil, "Server IDs to join over the private network")
}

func runCreate(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	provider, err := providerByName(createProvider)
	if err != nil {
		return err
	}

	b := apiClient.NewServer(provider)
	if createCredential != 0 {
		b.UsingCredential(createCredential)
	}
	if createName != "" {
		b.IdentifiedAs(createName)
	}
	if createRegion != "" {
		b.At(createRegion)
	}
	if createSize != "" {
		b.WithMemoryOf(createSize)
	}
	if createPHP != "" {
		b.RunningPHP(createPHP)
	}
	if createMariaDB != "" {
		b.WithMariaDB(createMariaDB)
	}
	if createMySQL != "" {
		b.WithMySQL(createMySQL)
	}
	if createNodeBalancer {
		b.AsNodeBalancer(true)
	}
	if createRecipe != 0 {
		b.RunRecipe(createRecipe)
	}
	if createPublicIP != "" {
		b.UsingPublicIP(createPublicIP)
	}
	if createPrivateIP != "" {
		b.UsingPrivateIP(createPrivateIP)
	}
	if len(createNetwork) > 0 {
		b.ConnectedTo(createNetwork)
	}

	server, err := b.Save(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	printer.PrintSuccess(fmt.Sprintf("Server %q created with ID %d (provisioning)", server.Name, server.ID))
	return nil
}

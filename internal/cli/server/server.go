package server

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/forge"
)

var apiClient *forge.Client

func SetAPIClient(client *forge.Client) {
	apiClient = client
}

// providers maps the --provider flag to a catalog. Common aliases are
// accepted alongside the API names.
var providers = map[string]func() forge.Provider{
	"ocean2":       forge.DigitalOcean,
	"digitalocean": forge.DigitalOcean,
	"linode":       forge.Linode,
	"aws":          forge.AWS,
	"custom":       forge.Custom,
}

func providerByName(name string) (forge.Provider, error) {
	ctor, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q (try ocean2, linode, aws, custom)", name)
	}
	return ctor(), nil
}

var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Commands for managing servers",
	Long:  `Commands for provisioning and managing servers.`,
	Example: `forgectl server create --provider ocean2 --credential 1 --name app-1 --region ams2 --size 1GB
forgectl server list
forgectl server show 123
forgectl server reboot 123
forgectl server delete 123`,
}

func init() {
	ServerCmd.AddCommand(ListCmd)
	ServerCmd.AddCommand(CreateCmd)
	ServerCmd.AddCommand(ShowCmd)
	ServerCmd.AddCommand(DeleteCmd)
	ServerCmd.AddCommand(RebootCmd)
}

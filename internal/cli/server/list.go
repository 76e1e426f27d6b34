package server

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/forge"
	"github.com/gabfr/forge-go/pkg/printer"
)

var listOutputFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List servers",
	Long:  `List every server on the account.`,
	RunE:  runList,
}

func init() {
	ListCmd.Flags().StringVarP(&listOutputFormat, "output", "o", "table", "Output format (table, json)")
}

func runList(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	servers, err := apiClient.Servers.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list servers: %w", err)
	}

	if len(servers) == 0 {
		fmt.Println("No servers found")
		return nil
	}

	if listOutputFormat == "json" {
		p := printer.New(printer.OutputTypeJSON, false)
		if err := p.PrintJSON(servers); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
		return nil
	}

	printServersTable(servers)
	return nil
}

func printServersTable(servers []*forge.Server) {
	t := printer.NewTablePrinter(os.Stdout)
	t.SetHeaders("ID", "Name", "Provider", "Region", "Size", "IP", "Ready")

	for _, s := range servers {
		t.AddRow(
			strconv.Itoa(s.ID),
			printer.TruncateString(s.Name, 30),
			s.Provider,
			s.Region,
			s.Size,
			s.IPAddress,
			strconv.FormatBool(s.IsReady),
		)
	}
	t.Render()
}

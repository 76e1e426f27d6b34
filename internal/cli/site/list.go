package site

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/pkg/printer"
)

var listOutputFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sites on a server",
	RunE:  runList,
}

func init() {
	ListCmd.Flags().StringVarP(&listOutputFormat, "output", "o", "table", "Output format (table, json)")
}

func runList(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	sites, err := apiClient.Sites.List(cmd.Context(), serverID)
	if err != nil {
		return fmt.Errorf("failed to list sites: %w", err)
	}

	if len(sites) == 0 {
		fmt.Println("No sites found")
		return nil
	}

	if listOutputFormat == "json" {
		p := printer.New(printer.OutputTypeJSON, false)
		return p.PrintJSON(sites)
	}

	t := printer.NewTablePrinter(os.Stdout)
	t.SetHeaders("ID", "Name", "Type", "Quick Deploy", "Status")
	for _, s := range sites {
		t.AddRow(
			strconv.Itoa(s.ID),
			printer.TruncateString(s.Name, 40),
			s.ProjectType,
			strconv.FormatBool(s.QuickDeploy),
			s.Status,
		)
	}
	t.Render()
	return nil
}

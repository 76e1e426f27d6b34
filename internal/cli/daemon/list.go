package daemon

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
	Short: "List daemons on a server",
	RunE:  runList,
}

func init() {
	ListCmd.Flags().StringVarP(&listOutputFormat, "output", "o", "table", "Output format (table, json)")
}

func runList(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	daemons, err := apiClient.Daemons.List(cmd.Context(), serverID)
	if err != nil {
		return fmt.Errorf("failed to list daemons: %w", err)
	}

	if len(daemons) == 0 {
		fmt.Println("No daemons installed")
		return nil
	}

	if listOutputFormat == "json" {
		p := printer.New(printer.OutputTypeJSON, false)
		return p.PrintJSON(daemons)
	}

	t := printer.NewTablePrinter(os.Stdout)
	t.SetHeaders("ID", "Command", "User", "Status")
	for _, d := range daemons {
		t.AddRow(
			strconv.Itoa(d.ID),
			printer.TruncateString(d.Command, 50),
			d.User,
			d.Status,
		)
	}
	t.Render()
	return nil
}

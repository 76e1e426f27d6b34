package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabfr/forge-go/internal/version"
)

type VersionOutput struct {
	ForgectlVersion string `json:"forgectl_version"`
	GitCommit       string `json:"git_commit"`
	BuildDate       string `json:"build_date"`
}

var jsonOutput bool

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Displays the version of forgectl.`,
	Run: func(cmd *cobra.Command, args []string) {
		output := VersionOutput{
			ForgectlVersion: version.Version,
			GitCommit:       version.GitCommit,
			BuildDate:       version.BuildDate,
		}

		if jsonOutput {
			jsonBytes, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				fmt.Printf("Error marshaling JSON: %v\n", err)
				return
			}
			fmt.Println(string(jsonBytes))
			return
		}

		fmt.Printf("forgectl version %s\n", output.ForgectlVersion)
		fmt.Printf("Git commit: %s\n", output.GitCommit)
		fmt.Printf("Build date: %s\n", output.BuildDate)
	},
}

func init() {
	VersionCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version information as JSON")
}

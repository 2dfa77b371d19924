package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmattsson/arxtools"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), arxtools.BuildInfo())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

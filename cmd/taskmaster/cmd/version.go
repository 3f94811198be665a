package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canvassing/pax-rewards/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print detailed version information about the task master.
This includes version number, build time, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Pax Task Master\n%s\n", version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

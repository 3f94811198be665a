package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/nonce"
)

var nonceCount int

var nonceCmd = &cobra.Command{
	Use:   "nonce",
	Short: "Print fresh 256-bit nonces in decimal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if nonceCount < 1 {
			return fmt.Errorf("--count must be at least 1")
		}
		for i := 0; i < nonceCount; i++ {
			n, err := nonce.Random()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nonceCmd)
	nonceCmd.Flags().IntVarP(&nonceCount, "count", "n", 1, "number of nonces to print")
}

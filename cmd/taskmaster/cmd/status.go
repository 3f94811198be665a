package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/canvassing/pax-rewards/pkg/common/contracts/ethereum"
)

var statusCmd = &cobra.Command{
	Use:   "status [participant]",
	Short: "Show TaskManager counters, or the status of one participant",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSigningChain(cmd, func(ctx context.Context, client ethereum.ChainClient) error {
			if len(args) == 1 {
				participant, err := parseAddressFlag("participant", args[0])
				if err != nil {
					return err
				}
				status, err := client.GetParticipantStatus(ctx, participant)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), status)
			}
			stats, err := client.GetTaskStats(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stats)
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"

	"github.com/canvassing/pax-rewards/cmd/taskmaster/app"
	"github.com/canvassing/pax-rewards/pkg/common/contracts/ethereum"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
)

type ownerTx func(ctx context.Context, client ethereum.ChainClient, args []string) (*types.Receipt, error)

var ownerCmd = &cobra.Command{
	Use:   "owner",
	Short: "Send owner-only transactions to the TaskManager",
	Long: `Administer the TaskManager contract. The configured signer must be the
contract owner and must hold its key locally (keystore or private key).`,
}

func newOwnerTxCmd(use, short string, nargs int, send ownerTx) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSigningChain(cmd, func(ctx context.Context, client ethereum.ChainClient) error {
				receipt, err := send(ctx, client, args)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "tx %s mined in block %s\n",
					receipt.TxHash.Hex(), receipt.BlockNumber)
				return nil
			})
		},
	}
}

func init() {
	ownerCmd.AddCommand(
		newOwnerTxCmd("pause", "Pause screening and claiming", 0,
			func(ctx context.Context, c ethereum.ChainClient, _ []string) (*types.Receipt, error) {
				return c.PauseTask(ctx)
			}),
		newOwnerTxCmd("unpause", "Resume screening and claiming", 0,
			func(ctx context.Context, c ethereum.ChainClient, _ []string) (*types.Receipt, error) {
				return c.UnpauseTask(ctx)
			}),
		newOwnerTxCmd("set-reward-amount <amount>", "Raise the reward paid per claim", 1,
			func(ctx context.Context, c ethereum.ChainClient, args []string) (*types.Receipt, error) {
				amount, err := parseUint256("amount", args[0])
				if err != nil {
					return nil, err
				}
				return c.UpdateRewardAmount(ctx, amount)
			}),
		newOwnerTxCmd("set-target <participants>", "Raise the target participant count", 1,
			func(ctx context.Context, c ethereum.ChainClient, args []string) (*types.Receipt, error) {
				target, err := parseUint256("participants", args[0])
				if err != nil {
					return nil, err
				}
				return c.UpdateTargetParticipants(ctx, target)
			}),
		newOwnerTxCmd("withdraw-reward", "Sweep the reward token balance to the owner", 0,
			func(ctx context.Context, c ethereum.ChainClient, _ []string) (*types.Receipt, error) {
				return c.WithdrawRewardToken(ctx)
			}),
		newOwnerTxCmd("withdraw-token <token>", "Sweep a given token balance to the owner", 1,
			func(ctx context.Context, c ethereum.ChainClient, args []string) (*types.Receipt, error) {
				token, err := parseAddressFlag("token", args[0])
				if err != nil {
					return nil, err
				}
				return c.WithdrawGivenToken(ctx, token)
			}),
	)
	rootCmd.AddCommand(ownerCmd)
}

// withSigningChain connects to the configured signing chain for the duration of fn.
func withSigningChain(cmd *cobra.Command, fn func(ctx context.Context, client ethereum.ChainClient) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := contextOf(cmd)
	authority, err := signer.New(ctx, &cfg.Signer)
	if err != nil {
		return err
	}
	manager, client, err := app.ConnectSigningChain(ctx, cfg, authority)
	if err != nil {
		return err
	}
	defer manager.Close()
	return fn(ctx, client)
}

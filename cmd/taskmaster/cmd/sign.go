package cmd

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
	"github.com/canvassing/pax-rewards/pkg/taskmaster"
	"github.com/canvassing/pax-rewards/pkg/taskmaster/api"
)

type signFlags struct {
	participant string
	requestID   string
	nonce       string
}

func newSignCmd() *cobra.Command {
	signCmd := &cobra.Command{
		Use:   "sign",
		Short: "Issue a signature package without going through the API",
		Long: `Sign a screening or reward claim request with the configured authority.

The package is printed as JSON. Nothing is recorded and no nonce is
reserved, so use this for operations and debugging only.`,
	}
	signCmd.AddCommand(
		newSignKindCmd(taskmaster.KindScreening, "screening", "task-id"),
		newSignKindCmd(taskmaster.KindRewardClaim, "reward-claim", "reward-id"),
	)
	return signCmd
}

func newSignKindCmd(kind taskmaster.Kind, use, idFlag string) *cobra.Command {
	var f signFlags
	c := &cobra.Command{
		Use:   use,
		Short: "Sign a " + use + " request",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSign(cmd, kind, &f)
		},
	}
	c.Flags().StringVar(&f.participant, "participant", "", "participant proxy address")
	c.Flags().StringVar(&f.requestID, idFlag, "", "request id bound into the signature")
	c.Flags().StringVar(&f.nonce, "nonce", "", "nonce to sign (default: fresh random nonce)")
	_ = c.MarkFlagRequired("participant")
	_ = c.MarkFlagRequired(idFlag)
	return c
}

func runSign(cmd *cobra.Command, kind taskmaster.Kind, f *signFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	participant, err := parseAddressFlag("participant", f.participant)
	if err != nil {
		return err
	}
	var n *big.Int
	if f.nonce != "" {
		if n, err = parseUint256("nonce", f.nonce); err != nil {
			return err
		}
	}

	ctx := contextOf(cmd)
	authority, err := signer.New(ctx, &cfg.Signer)
	if err != nil {
		return err
	}
	assembler, err := taskmaster.NewAssembler(&taskmaster.Config{
		Authority: authority,
		Domain:    configuredDomain(cfg),
	})
	if err != nil {
		return err
	}

	var pkg *taskmaster.SignaturePackage
	switch {
	case kind == taskmaster.KindScreening && n == nil:
		pkg, err = assembler.ScreeningPackage(ctx, participant, f.requestID)
	case kind == taskmaster.KindScreening:
		pkg, err = assembler.ScreeningPackageWithNonce(ctx, participant, f.requestID, n)
	case n == nil:
		pkg, err = assembler.RewardClaimPackage(ctx, participant, f.requestID)
	default:
		pkg, err = assembler.RewardClaimPackageWithNonce(ctx, participant, f.requestID, n)
	}
	if err != nil && !errors.Is(err, taskmaster.ErrSelfVerification) {
		return err
	}

	domain := assembler.Domain()
	if perr := printJSON(cmd.OutOrStdout(), api.PackageResponse{
		Kind:              string(pkg.Kind),
		Participant:       pkg.Participant.Hex(),
		RequestID:         pkg.RequestID,
		Nonce:             pkg.Nonce.String(),
		Signature:         hexutil.Encode(pkg.Signature),
		IsValid:           pkg.IsValid,
		TaskMaster:        assembler.TaskMaster().Hex(),
		ChainID:           domain.ChainID.String(),
		VerifyingContract: domain.VerifyingContract.Hex(),
	}); perr != nil {
		return perr
	}
	return err
}

func init() {
	rootCmd.AddCommand(newSignCmd())
}

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
	"github.com/canvassing/pax-rewards/pkg/taskmaster"
	"github.com/canvassing/pax-rewards/pkg/taskmaster/api"
)

type verifyFlags struct {
	signFlags
	signature  string
	taskMaster string
}

func newVerifyCmd() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a signature against the task master",
		Long: `Recover the signer of a screening or reward claim signature under the
configured domain and compare it with the task master address.

Exits non-zero when the signature is not valid.`,
	}
	verifyCmd.AddCommand(
		newVerifyKindCmd(taskmaster.KindScreening, "screening", "task-id"),
		newVerifyKindCmd(taskmaster.KindRewardClaim, "reward-claim", "reward-id"),
	)
	return verifyCmd
}

func newVerifyKindCmd(kind taskmaster.Kind, use, idFlag string) *cobra.Command {
	var f verifyFlags
	c := &cobra.Command{
		Use:   use,
		Short: "Verify a " + use + " signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, kind, &f)
		},
	}
	c.Flags().StringVar(&f.participant, "participant", "", "participant proxy address")
	c.Flags().StringVar(&f.requestID, idFlag, "", "request id bound into the signature")
	c.Flags().StringVar(&f.nonce, "nonce", "", "signed nonce")
	c.Flags().StringVar(&f.signature, "signature", "", "65 byte hex signature")
	c.Flags().StringVar(&f.taskMaster, "task-master", "",
		"expected signer (default: address of the configured signer)")
	for _, name := range []string{"participant", idFlag, "nonce", "signature"} {
		_ = c.MarkFlagRequired(name)
	}
	return c
}

func runVerify(cmd *cobra.Command, kind taskmaster.Kind, f *verifyFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	participant, err := parseAddressFlag("participant", f.participant)
	if err != nil {
		return err
	}
	n, err := parseUint256("nonce", f.nonce)
	if err != nil {
		return err
	}
	sig, err := hexutil.Decode(f.signature)
	if err != nil || len(sig) != signer.SignatureLength {
		return fmt.Errorf("--signature must be %d hex encoded bytes", signer.SignatureLength)
	}

	var expected = cfg.Signer.Address
	if f.taskMaster != "" {
		expected = f.taskMaster
	}
	if expected == "" {
		authority, err := signer.New(contextOf(cmd), &cfg.Signer)
		if err != nil {
			return err
		}
		expected = authority.Address().Hex()
	}
	taskMaster, err := parseAddressFlag("task-master", expected)
	if err != nil {
		return err
	}

	domain := configuredDomain(cfg)
	var valid bool
	if kind == taskmaster.KindScreening {
		valid = signer.VerifyScreening(domain, eip712.ScreeningRequest{
			Participant: participant, TaskID: f.requestID, Nonce: n,
		}, sig, taskMaster)
	} else {
		valid = signer.VerifyRewardClaim(domain, eip712.RewardClaimRequest{
			Participant: participant, RewardID: f.requestID, Nonce: n,
		}, sig, taskMaster)
	}

	if err := printJSON(cmd.OutOrStdout(), api.VerifyResponse{Valid: valid}); err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("signature is not valid for task master %s", taskMaster.Hex())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

package app

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/rs/zerolog/log"

	"github.com/canvassing/pax-rewards/pkg/common/contracts/ethereum"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
	"github.com/canvassing/pax-rewards/pkg/config"
)

// txSigner is implemented by authorities that hold their key in process.
type txSigner interface {
	TransactionSigner(chainID *big.Int) (bind.SignerFn, error)
}

// ConnectSigningChain dials every configured chain and returns the client for
// the chain the task master signs for. When the authority can sign
// transactions the client is set up to send owner transactions from it.
func ConnectSigningChain(ctx context.Context, cfg *config.Config, authority signer.Authority) (*ethereum.Manager, ethereum.ChainClient, error) {
	manager, err := ethereum.NewManager(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	client, err := manager.GetClientByChainId(cfg.ChainID)
	if err != nil {
		manager.Close()
		return nil, nil, err
	}

	tmc, ok := client.(*ethereum.TaskManagerClient)
	ts, canSign := authority.(txSigner)
	if !ok || !canSign {
		log.Warn().Msg("[Main] Signing authority is remote, owner transactions disabled")
		return manager, client, nil
	}
	signFn, err := ts.TransactionSigner(tmc.ChainID())
	if err != nil {
		manager.Close()
		return nil, nil, fmt.Errorf("failed to create transaction signer: %w", err)
	}
	tmc.WithSigner(authority.Address(), signFn)
	return manager, tmc, nil
}

package signer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/Layr-Labs/eigensdk-go/signerv2"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
)

var ErrSigningUnavailable = errors.New("signing authority unavailable")

// LocalAuthority implements Authority with a key held in process
type LocalAuthority struct {
	key     *ecdsa.PrivateKey
	address ethcommon.Address
}

// NewLocalAuthority creates a local authority from a keystore file
func NewLocalAuthority(keystorePath string, password string) (*LocalAuthority, error) {
	keyJson, err := os.ReadFile(keystorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	key, err := keystore.DecryptKey(keyJson, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt key: %w", err)
	}
	return NewLocalAuthorityFromKey(key.PrivateKey), nil
}

// NewLocalAuthorityFromHex creates a local authority from a hex private key
func NewLocalAuthorityFromHex(hexKey string) (*LocalAuthority, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return NewLocalAuthorityFromKey(key), nil
}

func NewLocalAuthorityFromKey(key *ecdsa.PrivateKey) *LocalAuthority {
	return &LocalAuthority{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// Address implements Authority
func (s *LocalAuthority) Address() ethcommon.Address {
	return s.address
}

// SignTypedData implements Authority
func (s *LocalAuthority) SignTypedData(_ context.Context, payload *eip712.Payload) ([]byte, error) {
	if payload == nil {
		return nil, errors.New("nil payload")
	}
	sig, err := crypto.Sign(payload.Digest.Bytes(), s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign digest: %v", ErrSigningUnavailable, err)
	}
	return Canonicalize(sig)
}

// TransactionSigner returns a transaction signer for the same key, used to
// submit owner transactions to the contract.
func (s *LocalAuthority) TransactionSigner(chainID *big.Int) (bind.SignerFn, error) {
	return signerv2.PrivateKeySignerFn(s.key, chainID)
}

// New builds the Authority described by cfg.
func New(ctx context.Context, cfg *Config) (Authority, error) {
	if cfg == nil || !cfg.IsValid() {
		return nil, errors.New("invalid signer config")
	}
	switch {
	case cfg.RemoteURL != "":
		return DialRemoteAuthority(ctx, cfg.RemoteURL, ethcommon.HexToAddress(cfg.Address))
	case cfg.KeystorePath != "":
		return NewLocalAuthority(cfg.KeystorePath, cfg.Password)
	default:
		return NewLocalAuthorityFromHex(cfg.PrivateKey)
	}
}

// SignScreening signs a screening request under domain.
func SignScreening(ctx context.Context, authority Authority, domain eip712.Domain, req eip712.ScreeningRequest) ([]byte, error) {
	return sign(ctx, authority, domain, req)
}

// SignRewardClaim signs a reward claim request under domain.
func SignRewardClaim(ctx context.Context, authority Authority, domain eip712.Domain, req eip712.RewardClaimRequest) ([]byte, error) {
	return sign(ctx, authority, domain, req)
}

func sign(ctx context.Context, authority Authority, domain eip712.Domain, msg eip712.Message) ([]byte, error) {
	payload, err := eip712.Encode(domain, msg)
	if err != nil {
		return nil, err
	}
	return authority.SignTypedData(ctx, payload)
}

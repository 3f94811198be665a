package taskmaster

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/canvassing/pax-rewards/internal/metric"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/nonce"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
)

// Kind names the authorization a package carries.
type Kind string

const (
	KindScreening   Kind = "screening"
	KindRewardClaim Kind = "reward_claim"
)

var (
	// ErrSelfVerification is returned together with a package whose signature
	// does not recover to the task master.
	ErrSelfVerification = errors.New("signature failed self verification")
	ErrEmptyRequestID   = errors.New("request id is empty")
	ErrZeroParticipant  = errors.New("participant address is zero")
)

// SignaturePackage is what the task master hands to a participant so the
// participant can submit it to the TaskManager contract.
type SignaturePackage struct {
	Kind        Kind
	Participant ethcommon.Address
	RequestID   string
	Nonce       *big.Int
	Signature   []byte
	IsValid     bool
}

type Config struct {
	Authority signer.Authority
	Domain    eip712.Domain
	// Guard is optional; without it nonces are not reserved.
	Guard Guard
	// Nonces defaults to crypto/rand.
	Nonces *nonce.Generator
}

// Assembler issues signature packages on behalf of the task master.
type Assembler struct {
	authority signer.Authority
	domain    eip712.Domain
	guard     Guard
	nonces    *nonce.Generator
}

func NewAssembler(cfg *Config) (*Assembler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if cfg.Authority == nil {
		return nil, fmt.Errorf("signing authority not initialized")
	}
	if cfg.Domain.ChainID == nil {
		return nil, fmt.Errorf("domain chain id not set")
	}
	nonces := cfg.Nonces
	if nonces == nil {
		nonces = nonce.NewGenerator(nil)
	}
	return &Assembler{
		authority: cfg.Authority,
		domain:    cfg.Domain,
		guard:     cfg.Guard,
		nonces:    nonces,
	}, nil
}

func (a *Assembler) Domain() eip712.Domain { return a.domain }

// TaskMaster returns the address every package is signed by.
func (a *Assembler) TaskMaster() ethcommon.Address { return a.authority.Address() }

// ScreeningPackage signs a screening request under a fresh nonce.
func (a *Assembler) ScreeningPackage(ctx context.Context, participant ethcommon.Address, taskID string) (*SignaturePackage, error) {
	n, err := a.nonces.Next()
	if err != nil {
		return nil, fmt.Errorf("[Assembler] failed to generate nonce: %w", err)
	}
	return a.ScreeningPackageWithNonce(ctx, participant, taskID, n)
}

// ScreeningPackageWithNonce signs a screening request under a caller supplied nonce.
func (a *Assembler) ScreeningPackageWithNonce(ctx context.Context, participant ethcommon.Address, taskID string, n *big.Int) (*SignaturePackage, error) {
	req := eip712.ScreeningRequest{Participant: participant, TaskID: taskID, Nonce: n}
	return a.assemble(ctx, KindScreening, participant, taskID, n, req)
}

// RewardClaimPackage signs a reward claim under a fresh nonce.
func (a *Assembler) RewardClaimPackage(ctx context.Context, participant ethcommon.Address, rewardID string) (*SignaturePackage, error) {
	n, err := a.nonces.Next()
	if err != nil {
		return nil, fmt.Errorf("[Assembler] failed to generate nonce: %w", err)
	}
	return a.RewardClaimPackageWithNonce(ctx, participant, rewardID, n)
}

// RewardClaimPackageWithNonce signs a reward claim under a caller supplied nonce.
func (a *Assembler) RewardClaimPackageWithNonce(ctx context.Context, participant ethcommon.Address, rewardID string, n *big.Int) (*SignaturePackage, error) {
	req := eip712.RewardClaimRequest{Participant: participant, RewardID: rewardID, Nonce: n}
	return a.assemble(ctx, KindRewardClaim, participant, rewardID, n, req)
}

func (a *Assembler) assemble(ctx context.Context, kind Kind, participant ethcommon.Address, requestID string, n *big.Int, msg eip712.Message) (*SignaturePackage, error) {
	if participant == (ethcommon.Address{}) {
		return nil, ErrZeroParticipant
	}
	if requestID == "" {
		return nil, ErrEmptyRequestID
	}
	payload, err := eip712.Encode(a.domain, msg)
	if err != nil {
		return nil, fmt.Errorf("[Assembler] failed to encode %s request: %w", kind, err)
	}

	if a.guard != nil {
		if err := a.guard.Reserve(ctx, kind, participant, n); err != nil {
			return nil, fmt.Errorf("[Assembler] failed to reserve nonce: %w", err)
		}
	}

	sig, err := a.authority.SignTypedData(ctx, payload)
	if err != nil {
		metric.RecordError("sign_" + string(kind))
		return nil, fmt.Errorf("[Assembler] failed to sign %s request: %w", kind, err)
	}

	pkg := &SignaturePackage{
		Kind:        kind,
		Participant: participant,
		RequestID:   requestID,
		Nonce:       new(big.Int).Set(n),
		Signature:   sig,
		IsValid:     signer.Verify(a.domain, msg, sig, a.authority.Address()),
	}
	metric.RecordPackage(string(kind), pkg.IsValid)
	if !pkg.IsValid {
		log.Ctx(ctx).Error().
			Str("kind", string(kind)).
			Str("participant", participant.Hex()).
			Str("request_id", requestID).
			Msg("issued signature does not recover to the task master")
		return pkg, ErrSelfVerification
	}

	log.Ctx(ctx).Info().
		Str("kind", string(kind)).
		Str("participant", participant.Hex()).
		Str("request_id", requestID).
		Msg("signature package issued")
	return pkg, nil
}

// VerifyPackage checks a package against this assembler's domain and task
// master. It never errors; malformed packages are simply invalid.
func (a *Assembler) VerifyPackage(p *SignaturePackage) bool {
	if p == nil {
		return false
	}
	var msg eip712.Message
	switch p.Kind {
	case KindScreening:
		msg = eip712.ScreeningRequest{Participant: p.Participant, TaskID: p.RequestID, Nonce: p.Nonce}
	case KindRewardClaim:
		msg = eip712.RewardClaimRequest{Participant: p.Participant, RewardID: p.RequestID, Nonce: p.Nonce}
	default:
		return false
	}
	ok := signer.Verify(a.domain, msg, p.Signature, a.authority.Address())
	if !ok {
		metric.RecordVerificationFailure(string(p.Kind))
	}
	return ok
}

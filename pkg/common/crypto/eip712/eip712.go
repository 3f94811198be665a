// Package eip712 builds the typed-data structures the TaskManager contract
// verifies. Field order and type strings are part of the signing contract:
// changing either changes every digest and invalidates issued signatures.
package eip712

import (
	"errors"
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const (
	DomainName    = "TaskManager"
	DomainVersion = "1"

	DomainType             = "EIP712Domain"
	ScreeningRequestType   = "ScreeningRequest"
	RewardClaimRequestType = "RewardClaimRequest"
)

var (
	ErrNilNonce       = errors.New("nonce is required")
	ErrNonceOverflow  = errors.New("nonce does not fit in uint256")
	ErrNilChainID     = errors.New("chain id is required")
	ErrUnknownMessage = errors.New("unknown message type")
	ErrNilMessage     = errors.New("message is nil")
)

var domainFields = []apitypes.Type{
	{Name: "name", Type: "string"},
	{Name: "version", Type: "string"},
	{Name: "chainId", Type: "uint256"},
	{Name: "verifyingContract", Type: "address"},
}

var screeningFields = []apitypes.Type{
	{Name: "participant", Type: "address"},
	{Name: "taskId", Type: "string"},
	{Name: "nonce", Type: "uint256"},
}

var rewardClaimFields = []apitypes.Type{
	{Name: "participant", Type: "address"},
	{Name: "rewardId", Type: "string"},
	{Name: "nonce", Type: "uint256"},
}

// Domain binds a signature to one deployed contract on one chain.
type Domain struct {
	Name              string
	Version           string
	ChainID           *big.Int
	VerifyingContract ethcommon.Address
}

// BuildDomain returns the TaskManager domain for a deployed contract.
func BuildDomain(verifyingContract ethcommon.Address, chainID *big.Int) Domain {
	var id *big.Int
	if chainID != nil {
		id = new(big.Int).Set(chainID)
	}
	return Domain{
		Name:              DomainName,
		Version:           DomainVersion,
		ChainID:           id,
		VerifyingContract: verifyingContract,
	}
}

func (d Domain) typed() apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              d.Name,
		Version:           d.Version,
		ChainId:           (*math.HexOrDecimal256)(d.ChainID),
		VerifyingContract: d.VerifyingContract.Hex(),
	}
}

// Message is one of the typed records the contract accepts.
type Message interface {
	PrimaryType() string
	Fields() []apitypes.Type
	Values() apitypes.TypedDataMessage
	nonce() *big.Int
}

// ScreeningRequest asks to admit Participant to TaskID.
type ScreeningRequest struct {
	Participant ethcommon.Address
	TaskID      string
	Nonce       *big.Int
}

func (ScreeningRequest) PrimaryType() string { return ScreeningRequestType }
func (ScreeningRequest) Fields() []apitypes.Type { return screeningFields }
func (m ScreeningRequest) nonce() *big.Int { return m.Nonce }
func (m ScreeningRequest) Values() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"participant": m.Participant.Hex(),
		"taskId":      m.TaskID,
		"nonce":       nonceValue(m.Nonce),
	}
}

// RewardClaimRequest asks to pay Participant for RewardID.
type RewardClaimRequest struct {
	Participant ethcommon.Address
	RewardID    string
	Nonce       *big.Int
}

func (RewardClaimRequest) PrimaryType() string { return RewardClaimRequestType }
func (RewardClaimRequest) Fields() []apitypes.Type { return rewardClaimFields }
func (m RewardClaimRequest) nonce() *big.Int { return m.Nonce }
func (m RewardClaimRequest) Values() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"participant": m.Participant.Hex(),
		"rewardId":    m.RewardID,
		"nonce":       nonceValue(m.Nonce),
	}
}

// Payload is a fully described typed-data request together with its digest.
// Signing authorities may use either form.
type Payload struct {
	TypedData apitypes.TypedData
	Digest    ethcommon.Hash
}

// TypedData returns the structured description of msg under domain.
// Only the primary type of msg is declared, so a screening description can
// never be hashed as a reward claim.
func TypedData(domain Domain, msg Message) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			DomainType:        domainFields,
			msg.PrimaryType(): msg.Fields(),
		},
		PrimaryType: msg.PrimaryType(),
		Domain:      domain.typed(),
		Message:     msg.Values(),
	}
}

func validate(domain Domain, msg Message) error {
	if domain.ChainID == nil {
		return ErrNilChainID
	}
	switch m := msg.(type) {
	case ScreeningRequest, RewardClaimRequest:
	case *ScreeningRequest:
		if m == nil {
			return ErrNilMessage
		}
	case *RewardClaimRequest:
		if m == nil {
			return ErrNilMessage
		}
	default:
		return fmt.Errorf("%w: %T", ErrUnknownMessage, msg)
	}
	n := msg.nonce()
	if n == nil {
		return ErrNilNonce
	}
	if n.Sign() < 0 || n.BitLen() > 256 {
		return ErrNonceOverflow
	}
	return nil
}

// Encode builds the payload for msg under domain.
func Encode(domain Domain, msg Message) (*Payload, error) {
	if err := validate(domain, msg); err != nil {
		return nil, err
	}
	td := TypedData(domain, msg)
	digest, _, err := apitypes.TypedDataAndHash(td)
	if err != nil {
		return nil, fmt.Errorf("failed to hash %s: %w", msg.PrimaryType(), err)
	}
	return &Payload{TypedData: td, Digest: ethcommon.BytesToHash(digest)}, nil
}

// Hash returns keccak256("\x19\x01" || domainSeparator || hashStruct(msg)).
func Hash(domain Domain, msg Message) (ethcommon.Hash, error) {
	p, err := Encode(domain, msg)
	if err != nil {
		return ethcommon.Hash{}, err
	}
	return p.Digest, nil
}

// DomainSeparator returns hashStruct(EIP712Domain).
func DomainSeparator(domain Domain) (ethcommon.Hash, error) {
	if domain.ChainID == nil {
		return ethcommon.Hash{}, ErrNilChainID
	}
	td := apitypes.TypedData{
		Types:  apitypes.Types{DomainType: domainFields},
		Domain: domain.typed(),
	}
	sep, err := td.HashStruct(DomainType, td.Domain.Map())
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("failed to hash domain: %w", err)
	}
	return ethcommon.BytesToHash(sep), nil
}

// TypeHash returns keccak256 of the canonical type string of a message kind.
func TypeHash(msg Message) ethcommon.Hash {
	td := apitypes.TypedData{Types: apitypes.Types{msg.PrimaryType(): msg.Fields()}}
	return crypto.Keccak256Hash(td.EncodeType(msg.PrimaryType()))
}

// nonceValue renders n as a decimal string so the message survives a JSON
// round trip to a remote signer without float truncation.
func nonceValue(n *big.Int) string {
	if n == nil {
		return ""
	}
	return n.String()
}

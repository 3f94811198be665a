package signer

import (
	"context"
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
)

const signTypedDataMethod = "account_signTypedData"

// Caller is the subset of *rpc.Client the remote authority needs
type Caller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// RemoteAuthority asks an external custody service to sign. The key never
// enters this process.
type RemoteAuthority struct {
	client  Caller
	address ethcommon.Address
}

// DialRemoteAuthority connects to a Clef compatible signer
func DialRemoteAuthority(ctx context.Context, url string, address ethcommon.Address) (*RemoteAuthority, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to dial %s: %v", ErrSigningUnavailable, url, err)
	}
	return NewRemoteAuthority(client, address), nil
}

func NewRemoteAuthority(client Caller, address ethcommon.Address) *RemoteAuthority {
	return &RemoteAuthority{client: client, address: address}
}

// Address implements Authority
func (s *RemoteAuthority) Address() ethcommon.Address {
	return s.address
}

// SignTypedData implements Authority. Transport failures and refusals are
// surfaced as ErrSigningUnavailable without retrying.
func (s *RemoteAuthority) SignTypedData(ctx context.Context, payload *eip712.Payload) ([]byte, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: nil payload", ErrSigningUnavailable)
	}
	var sig hexutil.Bytes
	err := s.client.CallContext(ctx, &sig, signTypedDataMethod, s.address.Hex(), payload.TypedData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSigningUnavailable, err)
	}
	canonical, err := Canonicalize(sig)
	if err != nil {
		return nil, fmt.Errorf("%w: remote returned bad signature: %v", ErrSigningUnavailable, err)
	}
	return canonical, nil
}

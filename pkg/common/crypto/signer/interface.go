package signer

import (
	"context"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
)

// Authority is the task master's signing capability. Implementations may
// keep the key in process or behind a custody service; callers only see the
// address and the signatures.
type Authority interface {
	// Address returns the account whose signatures the contract expects
	Address() ethcommon.Address
	// SignTypedData returns a canonical 65-byte r||s||v signature with
	// v in {27, 28} and low s.
	SignTypedData(ctx context.Context, payload *eip712.Payload) ([]byte, error)
}

package signer

import (
	"errors"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
)

// SignatureLength is the size of an r||s||v signature
const SignatureLength = crypto.SignatureLength

var (
	ErrMalformedSignature = errors.New("malformed signature")

	secp256k1N     = crypto.S256().Params().N
	secp256k1HalfN = new(big.Int).Rsh(secp256k1N, 1)
)

// Canonicalize returns a copy of sig in the only form Recover accepts:
// v in {27, 28} and s in the lower half of the curve order. Signatures with
// v in {0, 1} or a high s are rewritten; anything else is rejected.
func Canonicalize(sig []byte) ([]byte, error) {
	if len(sig) != SignatureLength {
		return nil, ErrMalformedSignature
	}
	out := make([]byte, SignatureLength)
	copy(out, sig)

	v := out[64]
	if v < 27 {
		v += 27
	}
	if v != 27 && v != 28 {
		return nil, ErrMalformedSignature
	}

	s := new(big.Int).SetBytes(out[32:64])
	if s.Cmp(secp256k1HalfN) > 0 {
		s.Sub(secp256k1N, s)
		s.FillBytes(out[32:64])
		v = 55 - v // 27 <-> 28
	}
	out[64] = v
	return out, nil
}

// Recover returns the address that produced sig over digest.
// Only canonical signatures are accepted.
func Recover(digest ethcommon.Hash, sig []byte) (ethcommon.Address, error) {
	if len(sig) != SignatureLength {
		return ethcommon.Address{}, ErrMalformedSignature
	}
	v := sig[64]
	if v != 27 && v != 28 {
		return ethcommon.Address{}, ErrMalformedSignature
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(v-27, r, s, true) {
		return ethcommon.Address{}, ErrMalformedSignature
	}

	raw := make([]byte, SignatureLength)
	copy(raw, sig)
	raw[64] = v - 27
	pub, err := crypto.SigToPub(digest.Bytes(), raw)
	if err != nil {
		return ethcommon.Address{}, ErrMalformedSignature
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Verify reports whether sig is expected's signature over msg under domain.
// Malformed input yields false, never an error.
func Verify(domain eip712.Domain, msg eip712.Message, sig []byte, expected ethcommon.Address) bool {
	digest, err := eip712.Hash(domain, msg)
	if err != nil {
		return false
	}
	got, err := Recover(digest, sig)
	if err != nil {
		return false
	}
	return got == expected
}

func VerifyScreening(domain eip712.Domain, req eip712.ScreeningRequest, sig []byte, expected ethcommon.Address) bool {
	return Verify(domain, req, sig, expected)
}

func VerifyRewardClaim(domain eip712.Domain, req eip712.RewardClaimRequest, sig []byte, expected ethcommon.Address) bool {
	return Verify(domain, req, sig, expected)
}

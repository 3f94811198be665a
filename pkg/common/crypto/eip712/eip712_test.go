package eip712_test

import (
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
)

var (
	contract    = ethcommon.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	participant = ethcommon.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	celo        = big.NewInt(42220)
)

func TestTypeHashes(t *testing.T) {
	assert.Equal(t,
		"0xc958cebfb917aa7aa9b5d073a4e8b83f87d39a1fde1ba815e837aabb6b76bdbf",
		eip712.TypeHash(eip712.ScreeningRequest{}).Hex())
	assert.Equal(t,
		"0x15a9c282b59af22cd7da132ac3ed3fab888494c705c7313cc87cdc3c2f9ec086",
		eip712.TypeHash(eip712.RewardClaimRequest{}).Hex())
}

func TestDomainSeparator(t *testing.T) {
	sep, err := eip712.DomainSeparator(eip712.BuildDomain(contract, celo))
	require.NoError(t, err)
	assert.Equal(t, "0xbf89fba1e08e8d3e2f2f10a6d1052b85481402d45053e81b8df8ebc2beb7fdd0", sep.Hex())
}

func TestHashGoldenVectors(t *testing.T) {
	domain := eip712.BuildDomain(contract, celo)

	tests := []struct {
		name string
		msg  eip712.Message
		want string
	}{
		{
			name: "screening",
			msg:  eip712.ScreeningRequest{Participant: participant, TaskID: "task-42", Nonce: big.NewInt(42)},
			want: "0x88e6e325eb099355c13c1aeb7216acde5c8c4cb6279a31e7063678d94cc94a1d",
		},
		{
			name: "reward claim",
			msg:  eip712.RewardClaimRequest{Participant: participant, RewardID: "reward-7", Nonce: big.NewInt(42)},
			want: "0x53cdd0b083159c323320598500b558538e5e2f79806cf2a2275d155df63e5d17",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := eip712.Hash(domain, tt.msg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, digest.Hex())
		})
	}
}

func TestHashSeparation(t *testing.T) {
	domain := eip712.BuildDomain(contract, celo)
	screening := eip712.ScreeningRequest{Participant: participant, TaskID: "same", Nonce: big.NewInt(1)}
	claim := eip712.RewardClaimRequest{Participant: participant, RewardID: "same", Nonce: big.NewInt(1)}

	base, err := eip712.Hash(domain, screening)
	require.NoError(t, err)

	t.Run("message kind", func(t *testing.T) {
		other, err := eip712.Hash(domain, claim)
		require.NoError(t, err)
		assert.NotEqual(t, base, other)
	})

	t.Run("chain id", func(t *testing.T) {
		other, err := eip712.Hash(eip712.BuildDomain(contract, big.NewInt(44787)), screening)
		require.NoError(t, err)
		assert.NotEqual(t, base, other)
	})

	t.Run("verifying contract", func(t *testing.T) {
		other, err := eip712.Hash(eip712.BuildDomain(participant, celo), screening)
		require.NoError(t, err)
		assert.NotEqual(t, base, other)
	})

	t.Run("nonce", func(t *testing.T) {
		m := screening
		m.Nonce = big.NewInt(2)
		other, err := eip712.Hash(domain, m)
		require.NoError(t, err)
		assert.NotEqual(t, base, other)
	})
}

func TestHashRejectsBadInput(t *testing.T) {
	domain := eip712.BuildDomain(contract, celo)

	_, err := eip712.Hash(domain, eip712.ScreeningRequest{Participant: participant, TaskID: "t"})
	assert.ErrorIs(t, err, eip712.ErrNilNonce)

	tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = eip712.Hash(domain, eip712.ScreeningRequest{Participant: participant, TaskID: "t", Nonce: tooBig})
	assert.ErrorIs(t, err, eip712.ErrNonceOverflow)

	_, err = eip712.Hash(domain, eip712.ScreeningRequest{Participant: participant, TaskID: "t", Nonce: big.NewInt(-1)})
	assert.ErrorIs(t, err, eip712.ErrNonceOverflow)

	_, err = eip712.Hash(eip712.BuildDomain(contract, nil), eip712.ScreeningRequest{Participant: participant, TaskID: "t", Nonce: big.NewInt(1)})
	assert.ErrorIs(t, err, eip712.ErrNilChainID)

	_, err = eip712.Hash(domain, (*eip712.ScreeningRequest)(nil))
	assert.ErrorIs(t, err, eip712.ErrNilMessage)
	_, err = eip712.Hash(domain, (*eip712.RewardClaimRequest)(nil))
	assert.ErrorIs(t, err, eip712.ErrNilMessage)

	_, err = eip712.Hash(domain, &eip712.ScreeningRequest{Participant: participant, TaskID: "t", Nonce: big.NewInt(1)})
	assert.NoError(t, err)
}

func TestMaxNonceAccepted(t *testing.T) {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	_, err := eip712.Hash(eip712.BuildDomain(contract, celo),
		eip712.RewardClaimRequest{Participant: participant, RewardID: "r", Nonce: max})
	require.NoError(t, err)
}

func TestPayloadCarriesTypedData(t *testing.T) {
	p, err := eip712.Encode(eip712.BuildDomain(contract, celo),
		eip712.ScreeningRequest{Participant: participant, TaskID: "task-42", Nonce: big.NewInt(42)})
	require.NoError(t, err)
	assert.Equal(t, eip712.ScreeningRequestType, p.TypedData.PrimaryType)
	assert.Equal(t, "TaskManager", p.TypedData.Domain.Name)
	assert.Equal(t, "task-42", p.TypedData.Message["taskId"])
	_, hasClaim := p.TypedData.Types[eip712.RewardClaimRequestType]
	assert.False(t, hasClaim)
}

package app

import (
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
)

func TestOnlyLocalAuthoritiesSendTransactions(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	var local signer.Authority = signer.NewLocalAuthorityFromKey(key)
	ts, ok := local.(txSigner)
	require.True(t, ok)
	_, err = ts.TransactionSigner(big.NewInt(44787))
	assert.NoError(t, err)

	var remote signer.Authority = signer.NewRemoteAuthority(nil, ethcommon.HexToAddress("0x01"))
	_, ok = remote.(txSigner)
	assert.False(t, ok)
}

package signer_test

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
)

const (
	taskMasterKey  = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	taskMasterAddr = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	screeningSig = "0x147846f94de412f03f2c84a931e0ae4b96c04f12e842d6bdde9fe4e5d185ae911e0b214255fa290532ae09934ab242b0fa872ea1847817beb40d9fd1fef4130d1b"
	rewardSig    = "0xc3afb856fb119557965000068310fb91d8af1658fe976baf3cad731a2d210d0c1f1839d20a09815f892fa2eac21a4e5319419faa39ca2eb6de5d562b1f80ae8f1c"
	// screeningSig with s replaced by N-s and v flipped
	malleatedSig = "0x147846f94de412f03f2c84a931e0ae4b96c04f12e842d6bdde9fe4e5d185ae91e1f4debdaa05d6facd51f66cb54dbd4dc027ae452ad0887d0bc4bebad1422e341c"
)

var (
	contract    = ethcommon.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	participant = ethcommon.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	domain      = eip712.BuildDomain(contract, big.NewInt(42220))

	screening = eip712.ScreeningRequest{Participant: participant, TaskID: "task-42", Nonce: big.NewInt(42)}
	claim     = eip712.RewardClaimRequest{Participant: participant, RewardID: "reward-7", Nonce: big.NewInt(42)}
)

func newTaskMaster(t *testing.T) *signer.LocalAuthority {
	a, err := signer.NewLocalAuthorityFromHex(taskMasterKey)
	require.NoError(t, err)
	require.Equal(t, ethcommon.HexToAddress(taskMasterAddr), a.Address())
	return a
}

func TestGoldenSignaturesVerify(t *testing.T) {
	expected := ethcommon.HexToAddress(taskMasterAddr)
	assert.True(t, signer.VerifyScreening(domain, screening, hexutil.MustDecode(screeningSig), expected))
	assert.True(t, signer.VerifyRewardClaim(domain, claim, hexutil.MustDecode(rewardSig), expected))

	// a screening signature is not a reward claim signature and vice versa
	assert.False(t, signer.VerifyRewardClaim(domain, claim, hexutil.MustDecode(screeningSig), expected))
	assert.False(t, signer.VerifyScreening(domain, screening, hexutil.MustDecode(rewardSig), expected))
}

func TestSignVerifyRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := newTaskMaster(t)

	sig, err := signer.SignScreening(ctx, a, domain, screening)
	require.NoError(t, err)
	require.Len(t, sig, signer.SignatureLength)
	assert.Contains(t, []byte{27, 28}, sig[64])
	assert.True(t, signer.VerifyScreening(domain, screening, sig, a.Address()))

	sig, err = signer.SignRewardClaim(ctx, a, domain, claim)
	require.NoError(t, err)
	assert.True(t, signer.VerifyRewardClaim(domain, claim, sig, a.Address()))
}

func TestVerifyRejections(t *testing.T) {
	ctx := context.Background()
	a := newTaskMaster(t)
	sig, err := signer.SignScreening(ctx, a, domain, screening)
	require.NoError(t, err)

	t.Run("other signer", func(t *testing.T) {
		assert.False(t, signer.VerifyScreening(domain, screening, sig, participant))
	})

	t.Run("other chain", func(t *testing.T) {
		other := eip712.BuildDomain(contract, big.NewInt(44787))
		assert.False(t, signer.VerifyScreening(other, screening, sig, a.Address()))
	})

	t.Run("other contract", func(t *testing.T) {
		other := eip712.BuildDomain(participant, big.NewInt(42220))
		assert.False(t, signer.VerifyScreening(other, screening, sig, a.Address()))
	})

	t.Run("altered field", func(t *testing.T) {
		m := screening
		m.TaskID = "task-43"
		assert.False(t, signer.VerifyScreening(domain, m, sig, a.Address()))
	})

	t.Run("malleated high s", func(t *testing.T) {
		assert.False(t, signer.VerifyScreening(domain, screening, hexutil.MustDecode(malleatedSig), a.Address()))
	})

	t.Run("raw recovery id", func(t *testing.T) {
		raw := append([]byte{}, sig...)
		raw[64] -= 27
		assert.False(t, signer.VerifyScreening(domain, screening, raw, a.Address()))
	})

	t.Run("malformed", func(t *testing.T) {
		assert.False(t, signer.VerifyScreening(domain, screening, nil, a.Address()))
		assert.False(t, signer.VerifyScreening(domain, screening, sig[:64], a.Address()))
		assert.False(t, signer.VerifyScreening(domain, screening, make([]byte, 65), a.Address()))
		assert.False(t, signer.VerifyScreening(domain, eip712.ScreeningRequest{Participant: participant}, sig, a.Address()))
	})

	t.Run("nil message", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.False(t, signer.Verify(domain, (*eip712.ScreeningRequest)(nil), sig, a.Address()))
			assert.False(t, signer.Verify(domain, (*eip712.RewardClaimRequest)(nil), sig, a.Address()))
		})
	})
}

func TestCanonicalize(t *testing.T) {
	out, err := signer.Canonicalize(hexutil.MustDecode(malleatedSig))
	require.NoError(t, err)
	assert.Equal(t, screeningSig, hexutil.Encode(out))

	raw := hexutil.MustDecode(screeningSig)
	raw[64] = 0
	out, err = signer.Canonicalize(raw)
	require.NoError(t, err)
	assert.Equal(t, screeningSig, hexutil.Encode(out))

	raw[64] = 5
	_, err = signer.Canonicalize(raw)
	assert.ErrorIs(t, err, signer.ErrMalformedSignature)

	_, err = signer.Canonicalize(raw[:10])
	assert.ErrorIs(t, err, signer.ErrMalformedSignature)
}

func TestKeystoreAuthority(t *testing.T) {
	tmpDir := t.TempDir()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	password := "testpass"
	ks := keystore.NewKeyStore(tmpDir, keystore.LightScryptN, keystore.LightScryptP)
	_, err = ks.ImportECDSA(key, password)
	require.NoError(t, err)

	files, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	path := filepath.Join(tmpDir, files[0].Name())

	a, err := signer.New(context.Background(), &signer.Config{KeystorePath: path, Password: password})
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), a.Address())

	_, err = signer.NewLocalAuthority(path, "wrong")
	assert.Error(t, err)
}

func TestTransactionSigner(t *testing.T) {
	a := newTaskMaster(t)
	chainID := big.NewInt(42220)

	signFn, err := a.TransactionSigner(chainID)
	require.NoError(t, err)

	tx := types.NewTx(&types.DynamicFeeTx{
		Nonce:   0,
		Value:   big.NewInt(0),
		ChainID: chainID,
		Data:    ethcommon.Hex2Bytes("2bcda6c7"),
	})
	signedTx, err := signFn(a.Address(), tx)
	require.NoError(t, err)

	// Verify the sender address of the signed transaction
	from, err := types.Sender(types.LatestSignerForChainID(chainID), signedTx)
	require.NoError(t, err)
	require.Equal(t, a.Address(), from)
}

func TestConfigIsValid(t *testing.T) {
	assert.False(t, (&signer.Config{}).IsValid())
	assert.True(t, (&signer.Config{PrivateKey: taskMasterKey}).IsValid())
	assert.False(t, (&signer.Config{KeystorePath: "k.json"}).IsValid())
	assert.True(t, (&signer.Config{KeystorePath: "k.json", Password: "p"}).IsValid())
	assert.False(t, (&signer.Config{RemoteURL: "http://clef:8550"}).IsValid())
	assert.True(t, (&signer.Config{RemoteURL: "http://clef:8550", Address: taskMasterAddr}).IsValid())
}

// clefService answers account_signTypedData the way an external signer does.
type clefService struct {
	key    string
	refuse bool
}

func (c *clefService) SignTypedData(_ context.Context, _ ethcommon.MixedcaseAddress, data apitypes.TypedData) (hexutil.Bytes, error) {
	if c.refuse {
		return nil, errors.New("request denied")
	}
	digest, _, err := apitypes.TypedDataAndHash(data)
	if err != nil {
		return nil, err
	}
	key, err := crypto.HexToECDSA(c.key)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(digest, key)
	if err != nil {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}

func newRemote(t *testing.T, svc *clefService) *signer.RemoteAuthority {
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("account", svc))
	client := rpc.DialInProc(srv)
	t.Cleanup(func() {
		client.Close()
		srv.Stop()
	})
	return signer.NewRemoteAuthority(client, ethcommon.HexToAddress(taskMasterAddr))
}

func TestRemoteAuthority(t *testing.T) {
	ctx := context.Background()

	t.Run("signs over json-rpc", func(t *testing.T) {
		a := newRemote(t, &clefService{key: taskMasterKey})
		sig, err := signer.SignScreening(ctx, a, domain, screening)
		require.NoError(t, err)
		assert.True(t, signer.VerifyScreening(domain, screening, sig, a.Address()))

		wide := screening
		wide.Nonce, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
		sig, err = signer.SignScreening(ctx, a, domain, wide)
		require.NoError(t, err)
		assert.True(t, signer.VerifyScreening(domain, wide, sig, a.Address()))
	})

	t.Run("refusal is unavailable", func(t *testing.T) {
		a := newRemote(t, &clefService{key: taskMasterKey, refuse: true})
		_, err := signer.SignRewardClaim(ctx, a, domain, claim)
		assert.ErrorIs(t, err, signer.ErrSigningUnavailable)
	})
}

func TestLocalAuthoritySignFailureIsUnavailable(t *testing.T) {
	good := newTaskMaster(t)
	key, err := crypto.HexToECDSA(taskMasterKey)
	require.NoError(t, err)
	broken := &ecdsa.PrivateKey{PublicKey: key.PublicKey, D: big.NewInt(0)}

	a := signer.NewLocalAuthorityFromKey(broken)
	require.Equal(t, good.Address(), a.Address())
	_, err = signer.SignScreening(context.Background(), a, domain, screening)
	assert.ErrorIs(t, err, signer.ErrSigningUnavailable)
}

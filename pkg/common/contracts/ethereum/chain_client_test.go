package ethereum

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
	"github.com/canvassing/pax-rewards/pkg/taskmanager"
)

var (
	testContract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	testToken    = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	testChainID  = big.NewInt(44787)
	testReward   = big.NewInt(1_000)
)

type fixture struct {
	client      *TaskManagerClient
	backend     *taskmanager.Backend
	owner       *signer.LocalAuthority
	token       *taskmanager.MemoryToken
	participant common.Address
	opts        *bind.TransactOpts
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ownerKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	owner := signer.NewLocalAuthorityFromKey(ownerKey)

	token := taskmanager.NewMemoryToken(testToken)
	token.Mint(testContract, big.NewInt(10_000))

	m, err := taskmanager.New(taskmanager.Config{
		Address:            testContract,
		ChainID:            testChainID,
		Owner:              owner.Address(),
		RewardAmount:       testReward,
		TargetParticipants: big.NewInt(5),
		RewardToken:        token,
	})
	require.NoError(t, err)
	backend := taskmanager.NewBackend(m)

	client, err := NewChainClientWithBackend(context.Background(), backend, &Config{
		ChainID:            testChainID.Uint64(),
		TaskManagerAddress: testContract,
		PollInterval:       10 * time.Millisecond,
	})
	require.NoError(t, err)

	signFn, err := owner.TransactionSigner(testChainID)
	require.NoError(t, err)
	client.WithSigner(owner.Address(), signFn)

	participantKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	return &fixture{
		client:      client,
		backend:     backend,
		owner:       owner,
		token:       token,
		participant: crypto.PubkeyToAddress(participantKey.PublicKey),
		opts:        transactor(t, participantKey),
	}
}

func transactor(t *testing.T, key *ecdsa.PrivateKey) *bind.TransactOpts {
	opts, err := bind.NewKeyedTransactorWithChainID(key, testChainID)
	require.NoError(t, err)
	return opts
}

func (f *fixture) screen(t *testing.T, ctx context.Context, nonce int64) []byte {
	t.Helper()
	n := big.NewInt(nonce)
	sig, err := signer.SignScreening(ctx, f.owner, f.client.Domain(),
		eip712.ScreeningRequest{Participant: f.participant, TaskID: "task-42", Nonce: n})
	require.NoError(t, err)
	receipt, err := f.client.SubmitScreening(ctx, f.opts, f.participant, "task-42", n, sig)
	require.NoError(t, err)
	require.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	return sig
}

func (f *fixture) claim(t *testing.T, ctx context.Context, pax common.Address, nonce int64) []byte {
	t.Helper()
	n := big.NewInt(nonce)
	sig, err := signer.SignRewardClaim(ctx, f.owner, f.client.Domain(),
		eip712.RewardClaimRequest{Participant: f.participant, RewardID: "reward-7", Nonce: n})
	require.NoError(t, err)
	receipt, err := f.client.SubmitRewardClaim(ctx, f.opts, f.participant, pax, "reward-7", n, sig)
	require.NoError(t, err)
	require.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	return sig
}

func TestNewChainClientChainIDMismatch(t *testing.T) {
	f := newFixture(t)
	_, err := NewChainClientWithBackend(context.Background(), f.backend, &Config{
		ChainID:            CeloMainnetChainID,
		TaskManagerAddress: testContract,
	})
	assert.ErrorContains(t, err, "chain id mismatch")
}

func TestDomainMatchesContract(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, f.backend.Manager().Domain(), f.client.Domain())
	assert.Equal(t, testContract, f.client.Address())
	assert.Equal(t, testChainID.Uint64(), f.client.ChainID().Uint64())
}

func TestScreenAndClaimFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	f := newFixture(t)

	status, err := f.client.GetParticipantStatus(ctx, f.participant)
	require.NoError(t, err)
	assert.False(t, status.Screened)
	assert.False(t, status.Rewarded)

	screenSig := f.screen(t, ctx, 1)
	used, err := f.client.IsScreeningSignatureUsed(ctx, screenSig)
	require.NoError(t, err)
	assert.True(t, used)

	// the same signature is refused before it is sent
	_, err = f.client.SubmitScreening(ctx, f.opts, f.participant, "task-42", big.NewInt(1), screenSig)
	assert.ErrorContains(t, err, "signature already used")

	pax := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	claimSig := f.claim(t, ctx, pax, 2)
	used, err = f.client.IsClaimingSignatureUsed(ctx, claimSig)
	require.NoError(t, err)
	assert.True(t, used)
	assert.Equal(t, testReward.String(), f.token.BalanceOf(pax).String())

	status, err = f.client.GetParticipantStatus(ctx, f.participant)
	require.NoError(t, err)
	assert.True(t, status.Screened)
	assert.True(t, status.Rewarded)

	stats, err := f.client.GetTaskStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, f.owner.Address(), stats.Owner)
	assert.False(t, stats.Paused)
	assert.Equal(t, testToken, stats.RewardToken)
	assert.Equal(t, "9000", stats.RewardTokenBalance.String())
	assert.Equal(t, "1", stats.ScreenedParticipants.String())
	assert.Equal(t, "1", stats.RewardedParticipants.String())
	assert.Equal(t, "1", stats.ClaimedRewards.String())
	assert.Equal(t, "1", stats.UsedScreeningSignatures.String())
	assert.Equal(t, "1", stats.UsedClaimingSignatures.String())
}

func TestSubmitNeedsTransactOpts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.NotPanics(t, func() {
		_, err := f.client.SubmitScreening(ctx, nil, f.participant, "task-42", big.NewInt(1), make([]byte, 65))
		assert.ErrorContains(t, err, "transact opts are required")
		_, err = f.client.SubmitRewardClaim(ctx, nil, f.participant, f.participant, "reward-7", big.NewInt(1), make([]byte, 65))
		assert.ErrorContains(t, err, "transact opts are required")
	})
}

func TestSortByLogPosition(t *testing.T) {
	// screening logs are filtered before claiming logs
	events := []*SignatureUsedEvent{
		{Kind: SignatureKindScreening, BlockNumber: 7, LogIndex: 3},
		{Kind: SignatureKindScreening, BlockNumber: 8, LogIndex: 0},
		{Kind: SignatureKindClaiming, BlockNumber: 7, LogIndex: 1},
		{Kind: SignatureKindClaiming, BlockNumber: 6, LogIndex: 5},
	}
	sortByLogPosition(events)

	var got [][2]uint64
	for _, e := range events {
		got = append(got, [2]uint64{e.BlockNumber, uint64(e.LogIndex)})
	}
	assert.Equal(t, [][2]uint64{{6, 5}, {7, 1}, {7, 3}, {8, 0}}, got)
	assert.Equal(t, SignatureKindClaiming, events[1].Kind)
	assert.Equal(t, SignatureKindScreening, events[2].Kind)
}

func TestOwnerWrites(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	f := newFixture(t)

	_, err := f.client.PauseTask(ctx)
	require.NoError(t, err)
	paused, err := f.client.IsPaused(ctx)
	require.NoError(t, err)
	assert.True(t, paused)

	n := big.NewInt(3)
	sig, err := signer.SignScreening(ctx, f.owner, f.client.Domain(),
		eip712.ScreeningRequest{Participant: f.participant, TaskID: "task-42", Nonce: n})
	require.NoError(t, err)
	_, err = f.client.SubmitScreening(ctx, f.opts, f.participant, "task-42", n, sig)
	assert.ErrorContains(t, err, "paused")

	_, err = f.client.UnpauseTask(ctx)
	require.NoError(t, err)

	_, err = f.client.UpdateRewardAmount(ctx, big.NewInt(2_000))
	require.NoError(t, err)
	_, err = f.client.UpdateTargetParticipants(ctx, big.NewInt(10))
	require.NoError(t, err)

	// decreases are configuration violations
	_, err = f.client.UpdateRewardAmount(ctx, big.NewInt(1))
	assert.Error(t, err)

	_, err = f.client.WithdrawRewardToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10000", f.token.BalanceOf(f.owner.Address()).String())

	stats, err := f.client.GetTaskStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2000", stats.RewardAmount.String())
	assert.Equal(t, "10", stats.TargetParticipants.String())
	assert.Equal(t, "0", stats.RewardTokenBalance.String())
}

func TestOwnerWritesNeedSigner(t *testing.T) {
	f := newFixture(t)
	client, err := NewChainClientWithBackend(context.Background(), f.backend, &Config{TaskManagerAddress: testContract})
	require.NoError(t, err)

	_, err = client.PauseTask(context.Background())
	assert.ErrorContains(t, err, "no transaction signer")
}

func TestWatchSignatureUsed(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	f := newFixture(t)

	sink := make(chan *SignatureUsedEvent, 4)
	sub, err := f.client.WatchSignatureUsed(&bind.FilterOpts{Start: 0, Context: ctx}, sink)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	screenSig := f.screen(t, ctx, 1)
	pax := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	claimSig := f.claim(t, ctx, pax, 2)

	var got []*SignatureUsedEvent
	for len(got) < 2 {
		select {
		case e := <-sink:
			got = append(got, e)
		case <-ctx.Done():
			t.Fatalf("received %d events", len(got))
		}
	}

	assert.Equal(t, SignatureKindScreening, got[0].Kind)
	assert.Equal(t, screenSig, got[0].Signature)
	assert.Equal(t, f.participant, got[0].Participant)
	assert.Equal(t, SignatureKindClaiming, got[1].Kind)
	assert.Equal(t, claimSig, got[1].Signature)
	assert.Less(t, got[0].BlockNumber, got[1].BlockNumber)
	assert.NotEqual(t, common.Hash{}, got[1].TxHash)

	// nothing is delivered twice
	select {
	case e := <-sink:
		t.Fatalf("unexpected event %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestManagerRegistry(t *testing.T) {
	f := newFixture(t)
	m := &Manager{chains: make(map[uint64]ChainClient)}

	require.NoError(t, m.AddChain(f.client))
	assert.Error(t, m.AddChain(f.client))

	got, err := m.GetClientByChainId(testChainID.Uint64())
	require.NoError(t, err)
	assert.Equal(t, testContract, got.Address())

	_, err = m.GetMainnetClient()
	assert.Error(t, err)
	assert.Equal(t, []uint64{testChainID.Uint64()}, m.ListChains())

	require.NoError(t, m.RemoveChain(testChainID.Uint64()))
	assert.Error(t, m.RemoveChain(testChainID.Uint64()))
	assert.Empty(t, m.ListChains())
	assert.NoError(t, m.Close())
}

package taskmanager_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvassing/pax-rewards/pkg/common/contracts/bindings"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
	"github.com/canvassing/pax-rewards/pkg/taskmanager"
)

func newBackend(t *testing.T) (*taskmanager.Backend, *signer.LocalAuthority, *taskmanager.MemoryToken) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	owner := signer.NewLocalAuthorityFromKey(key)

	token := taskmanager.NewMemoryToken(tokenAddr)
	token.Mint(contractAddr, big.NewInt(10_000_000))

	m, err := taskmanager.New(taskmanager.Config{
		Address:            contractAddr,
		ChainID:            chainID,
		Owner:              owner.Address(),
		RewardAmount:       reward,
		TargetParticipants: big.NewInt(10),
		RewardToken:        token,
	})
	require.NoError(t, err)
	return taskmanager.NewBackend(m), owner, token
}

func TestBackendServesBinding(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	backend, owner, token := newBackend(t)
	contract, err := bindings.NewTaskManager(contractAddr, backend)
	require.NoError(t, err)

	participantKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	participant := crypto.PubkeyToAddress(participantKey.PublicKey)
	opts, err := bind.NewKeyedTransactorWithChainID(participantKey, chainID)
	require.NoError(t, err)
	opts.Context = ctx

	callOpts := &bind.CallOpts{Context: ctx}
	gotOwner, err := contract.GetOwner(callOpts)
	require.NoError(t, err)
	assert.Equal(t, owner.Address(), gotOwner)

	amount, err := contract.GetRewardAmountPerParticipantProxyInWei(callOpts)
	require.NoError(t, err)
	assert.Equal(t, reward.String(), amount.String())

	sink := make(chan *bindings.TaskManagerParticipantProxyScreened, 1)
	sub, err := contract.WatchParticipantProxyScreened(&bind.WatchOpts{Context: ctx}, sink)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	domain := eip712.BuildDomain(contractAddr, chainID)
	screenNonce := big.NewInt(1)
	sig, err := signer.SignScreening(ctx, owner, domain,
		eip712.ScreeningRequest{Participant: participant, TaskID: "task-42", Nonce: screenNonce})
	require.NoError(t, err)

	tx, err := contract.ScreenParticipantProxy(opts, participant, "task-42", screenNonce, sig)
	require.NoError(t, err)
	receipt, err := bind.WaitMined(ctx, backend, tx)
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	select {
	case ev := <-sink:
		assert.Equal(t, participant, ev.ParticipantProxy)
		assert.Equal(t, tx.Hash(), ev.Raw.TxHash)
	case <-ctx.Done():
		t.Fatal("no ParticipantProxyScreened event")
	}

	screened, err := contract.CheckIfParticipantProxyIsScreened(callOpts, participant)
	require.NoError(t, err)
	assert.True(t, screened)

	// replaying is refused at estimation time, before anything is sent
	_, err = contract.ScreenParticipantProxy(opts, participant, "task-42", screenNonce, sig)
	require.Error(t, err)

	claimNonce := big.NewInt(2)
	pax := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	claimSig, err := signer.SignRewardClaim(ctx, owner, domain,
		eip712.RewardClaimRequest{Participant: participant, RewardID: "reward-7", Nonce: claimNonce})
	require.NoError(t, err)
	tx, err = contract.ProcessRewardClaimByParticipantProxy(opts, participant, pax, "reward-7", claimNonce, claimSig)
	require.NoError(t, err)
	receipt, err = bind.WaitMined(ctx, backend, tx)
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	assert.Equal(t, reward.String(), token.BalanceOf(pax).String())

	it, err := contract.FilterPaxAccountRewarded(&bind.FilterOpts{Start: 0, Context: ctx})
	require.NoError(t, err)
	defer it.Close()
	require.True(t, it.Next())
	assert.Equal(t, pax, it.Event.PaxAccountContractAddress)
	assert.False(t, it.Next())
	require.NoError(t, it.Error())
}

func TestBackendRecordsFailedTransactions(t *testing.T) {
	ctx := context.Background()
	backend, owner, _ := newBackend(t)

	strangerKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	stranger := crypto.PubkeyToAddress(strangerKey.PublicKey)

	contract, err := bindings.NewTaskManager(contractAddr, backend)
	require.NoError(t, err)
	opts, err := bind.NewKeyedTransactorWithChainID(strangerKey, chainID)
	require.NoError(t, err)
	// a fixed gas limit skips estimation, so the revert is only seen in the receipt
	opts.GasLimit = 200_000

	tx, err := contract.Pausetask(opts)
	require.NoError(t, err)
	receipt, err := bind.WaitMined(ctx, backend, tx)
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusFailed, receipt.Status)
	assert.Empty(t, receipt.Logs)

	paused, err := contract.CheckIfContractIsPaused(&bind.CallOpts{Context: ctx})
	require.NoError(t, err)
	assert.False(t, paused)

	nonce, err := backend.PendingNonceAt(ctx, stranger)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), nonce)

	// the owner can still pause afterwards
	_, err = backend.Manager().PauseTask(owner.Address())
	require.NoError(t, err)
}

func TestBackendRejectsBadTransactions(t *testing.T) {
	ctx := context.Background()
	backend, _, _ := newBackend(t)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signerFn := types.LatestSignerForChainID(chainID)

	to := contractAddr
	tx, err := types.SignNewTx(key, signerFn, &types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     5,
		To:        &to,
		Gas:       100_000,
		GasFeeCap: big.NewInt(2),
		GasTipCap: big.NewInt(1),
		Data:      common.Hex2Bytes("2bcda6c7"),
	})
	require.NoError(t, err)
	assert.ErrorIs(t, backend.SendTransaction(ctx, tx), taskmanager.ErrNonceMismatch)

	elsewhere := common.HexToAddress("0x01")
	tx, err = types.SignNewTx(key, signerFn, &types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     0,
		To:        &elsewhere,
		Gas:       100_000,
		GasFeeCap: big.NewInt(2),
		GasTipCap: big.NewInt(1),
	})
	require.NoError(t, err)
	assert.ErrorIs(t, backend.SendTransaction(ctx, tx), taskmanager.ErrUnknownRecipient)
}

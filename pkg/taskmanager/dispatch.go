package taskmanager

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
)

// Transact executes ABI encoded calldata sent by from as one transaction.
// A reverted transaction returns the *Revert and changes nothing.
func (m *Manager) Transact(from common.Address, calldata []byte) (*types.Receipt, error) {
	m.mu.Lock()
	receipt, logs, err := m.execute(common.Hash{}, from, calldata, false)
	m.mu.Unlock()
	m.publish(logs)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Simulate runs calldata against the current state without committing it.
func (m *Manager) Simulate(from common.Address, calldata []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, _, err := m.execute(common.Hash{}, from, calldata, true)
	return err
}

// execute decodes and applies one transaction. With a non-zero hash, a
// revert is still recorded as a failed receipt, as a mined transaction would be.
// Callers hold m.mu.
func (m *Manager) execute(hash common.Hash, from common.Address, calldata []byte, dryRun bool) (*types.Receipt, []types.Log, error) {
	recordFailure := hash != (common.Hash{})
	if hash == (common.Hash{}) {
		hash = m.txHash(from, calldata)
	}
	fail := func(err error) (*types.Receipt, []types.Log, error) {
		if recordFailure && !dryRun {
			m.commit(hash, nil, err)
		}
		return nil, nil, err
	}

	if len(calldata) < 4 {
		return fail(fmt.Errorf("%w: calldata too short", ErrUnknownMethod))
	}
	method, err := m.abi.MethodById(calldata[:4])
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrUnknownMethod, err))
	}
	if method.IsConstant() {
		return fail(fmt.Errorf("%w: %s is a view", ErrUnknownMethod, method.Name))
	}
	args, err := method.Inputs.Unpack(calldata[4:])
	if err != nil {
		return fail(fmt.Errorf("[TaskManager] failed to decode %s: %w", method.Name, err))
	}

	tx := &txContext{from: from, dryRun: dryRun}
	switch method.Name {
	case "screenParticipantProxy":
		err = m.screen(tx, args[0].(common.Address), args[1].(string), args[2].(*big.Int), args[3].([]byte))
	case "processRewardClaimByParticipantProxy":
		err = m.claim(tx, args[0].(common.Address), args[1].(common.Address), args[2].(string), args[3].(*big.Int), args[4].([]byte))
	case "updateRewardAmountPerParticipantProxy":
		err = m.updateRewardAmount(tx, args[0].(*big.Int))
	case "updateTargetNumberOfParticipantProxies":
		err = m.updateTarget(tx, args[0].(*big.Int))
	case "pausetask":
		err = m.pause(tx)
	case "unpausetask":
		err = m.unpause(tx)
	case "withdrawAllRewardTokenToTaskManager":
		err = m.withdrawRewardToken(tx)
	case "withdrawAllGivenTokenTotaskManager":
		err = m.withdrawGivenToken(tx, args[0].(common.Address))
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownMethod, method.Name)
	}
	if err != nil {
		log.Debug().
			Str("method", method.Name).
			Str("from", from.Hex()).
			Err(err).
			Msg("[TaskManager] transaction reverted")
		return fail(err)
	}
	if dryRun {
		return nil, nil, nil
	}

	receipt := m.commit(hash, tx, nil)
	logs := make([]types.Log, len(receipt.Logs))
	for i, l := range receipt.Logs {
		logs[i] = *l
	}
	log.Debug().
		Str("method", method.Name).
		Str("from", from.Hex()).
		Uint64("block", receipt.BlockNumber.Uint64()).
		Msg("[TaskManager] transaction applied")
	return receipt, logs, nil
}

// publish delivers committed logs to subscribers. It must run without m.mu
// held since subscribers may read state while handling a log.
func (m *Manager) publish(logs []types.Log) {
	for _, l := range logs {
		m.logFeed.Send(l)
	}
}

// Call executes a view method and returns its ABI encoded result.
func (m *Manager) Call(calldata []byte) ([]byte, error) {
	if len(calldata) < 4 {
		return nil, fmt.Errorf("%w: calldata too short", ErrUnknownMethod)
	}
	method, err := m.abi.MethodById(calldata[:4])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, err)
	}
	if !method.IsConstant() {
		return nil, fmt.Errorf("%w: %s is not a view", ErrUnknownMethod, method.Name)
	}
	args, err := method.Inputs.Unpack(calldata[4:])
	if err != nil {
		return nil, fmt.Errorf("[TaskManager] failed to decode %s: %w", method.Name, err)
	}

	var out interface{}
	switch method.Name {
	case "checkIfParticipantProxyIsScreened":
		out = m.IsScreened(args[0].(common.Address))
	case "checkIfParticipantProxyIsRewarded":
		out = m.IsRewarded(args[0].(common.Address))
	case "checkIfScreeningSignatureIsUsed":
		out = m.IsScreeningSignatureUsed(args[0].([]byte))
	case "checkIfClaimingSignatureIsUsed":
		out = m.IsClaimingSignatureUsed(args[0].([]byte))
	case "checkIfContractIsPaused":
		out = m.IsPaused()
	case "getNumberOfScreenedParticipantProxies":
		out = m.counter(&m.screenedCount)
	case "getNumberOfRewardedParticipantProxies":
		out = m.counter(&m.rewardedCount)
	case "getNumberOfClaimedRewards":
		out = m.counter(&m.claimedCount)
	case "getNumberOfUsedScreeningSignatures":
		out = m.NumberOfUsedScreeningSignatures()
	case "getNumberOfUsedClaimingSignatures":
		out = m.NumberOfUsedClaimingSignatures()
	case "getOwner", "owner":
		out = m.Owner()
	case "getRewardAmountPerParticipantProxyInWei":
		out = m.RewardAmount()
	case "getTargetNumberOfParticipantProxies":
		out = m.TargetParticipants()
	case "getRewardTokenContractAddress":
		out = m.RewardTokenAddress()
	case "getRewardTokenContractBalanceAmount":
		out = m.RewardTokenBalance()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method.Name)
	}
	return method.Outputs.Pack(out)
}

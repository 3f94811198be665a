// Package taskmanager implements the TaskManager contract state machine:
// signed screening admits a participant proxy, a later signed reward claim
// pays it once. Every transaction is applied atomically and in a single
// total order, the guarantees a ledger gives the deployed contract.
package taskmanager

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
	"github.com/rs/zerolog/log"

	"github.com/canvassing/pax-rewards/pkg/common/contracts/bindings"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
)

// gasPerTransaction is reported in receipts; execution is not metered.
const gasPerTransaction = 100_000

// Config describes one deployment.
type Config struct {
	// Address is where the contract lives; it is the EIP-712 verifying contract
	Address common.Address
	ChainID *big.Int
	// Owner is the task master. It manages the task and is the only
	// accepted signer of screening and reward claim requests.
	Owner              common.Address
	RewardAmount       *big.Int
	TargetParticipants *big.Int
	RewardToken        Token
	// GivenTokens are other tokens the owner may sweep out of the contract
	GivenTokens []Token
}

// ParticipantStatus is the per proxy state. Flags are only ever set.
type ParticipantStatus struct {
	Screened bool
	Rewarded bool
}

// Manager holds the contract state.
type Manager struct {
	address common.Address
	chainID *big.Int
	owner   common.Address
	domain  eip712.Domain
	abi     *abi.ABI

	mu           sync.Mutex
	rewardAmount *big.Int
	target       *big.Int
	rewardToken  Token
	tokens       map[common.Address]Token
	paused       bool

	participants  map[common.Address]*ParticipantStatus
	usedScreening map[string]struct{}
	usedClaiming  map[string]struct{}

	screenedCount uint64
	rewardedCount uint64
	claimedCount  uint64

	// ledger bookkeeping
	blockNumber uint64
	txCount     uint64
	logs        []types.Log
	receipts    map[common.Hash]*types.Receipt
	logFeed     event.Feed
}

// New deploys a manager. The deployment itself is recorded as the first block
// and emits TaskManagerCreated.
func New(cfg Config) (*Manager, error) {
	switch {
	case cfg.ChainID == nil || cfg.ChainID.Sign() <= 0:
		return nil, revert(ErrConfigurationViolation, "chain id must be positive")
	case cfg.Owner == (common.Address{}):
		return nil, revert(ErrConfigurationViolation, "owner is required")
	case cfg.RewardAmount == nil || cfg.RewardAmount.Sign() <= 0:
		return nil, revert(ErrConfigurationViolation, "reward amount must be positive")
	case cfg.TargetParticipants == nil || cfg.TargetParticipants.Sign() <= 0:
		return nil, revert(ErrConfigurationViolation, "target must be positive")
	case cfg.RewardToken == nil || cfg.RewardToken.Address() == (common.Address{}):
		return nil, revert(ErrConfigurationViolation, "reward token is required")
	}

	parsed, err := bindings.TaskManagerMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("[TaskManager] failed to parse abi: %w", err)
	}

	m := &Manager{
		address:       cfg.Address,
		chainID:       new(big.Int).Set(cfg.ChainID),
		owner:         cfg.Owner,
		domain:        eip712.BuildDomain(cfg.Address, cfg.ChainID),
		abi:           parsed,
		rewardAmount:  new(big.Int).Set(cfg.RewardAmount),
		target:        new(big.Int).Set(cfg.TargetParticipants),
		rewardToken:   cfg.RewardToken,
		tokens:        make(map[common.Address]Token),
		participants:  make(map[common.Address]*ParticipantStatus),
		usedScreening: make(map[string]struct{}),
		usedClaiming:  make(map[string]struct{}),
		receipts:      make(map[common.Hash]*types.Receipt),
	}
	m.tokens[cfg.RewardToken.Address()] = cfg.RewardToken
	for _, t := range cfg.GivenTokens {
		m.tokens[t.Address()] = t
	}

	tx := &txContext{from: cfg.Owner}
	if err := tx.emit(m.abi, "TaskManagerCreated", cfg.Owner); err != nil {
		return nil, err
	}
	m.commit(m.txHash(tx.from, nil), tx, nil)

	log.Info().
		Str("address", cfg.Address.Hex()).
		Str("owner", cfg.Owner.Hex()).
		Str("reward_amount", cfg.RewardAmount.String()).
		Msg("[TaskManager] deployed")
	return m, nil
}

// Address returns the contract address.
func (m *Manager) Address() common.Address { return m.address }

// ChainID returns the chain the contract is bound to.
func (m *Manager) ChainID() *big.Int { return new(big.Int).Set(m.chainID) }

// Domain returns the EIP-712 domain signatures must be produced under.
func (m *Manager) Domain() eip712.Domain { return m.domain }

// txContext collects the effects of a transaction until it commits.
type txContext struct {
	from    common.Address
	dryRun  bool
	logs    []types.Log
	effects []func()
}

func (tx *txContext) emit(contractABI *abi.ABI, name string, args ...interface{}) error {
	ev, ok := contractABI.Events[name]
	if !ok {
		return fmt.Errorf("[TaskManager] unknown event %s", name)
	}
	topics := []common.Hash{ev.ID}
	var data []interface{}
	for i, input := range ev.Inputs {
		if input.Indexed {
			// only address topics are declared by this contract
			addr, ok := args[i].(common.Address)
			if !ok {
				return fmt.Errorf("[TaskManager] unsupported indexed argument %s", input.Name)
			}
			topics = append(topics, common.BytesToHash(addr.Bytes()))
			continue
		}
		data = append(data, args[i])
	}
	packed, err := ev.Inputs.NonIndexed().Pack(data...)
	if err != nil {
		return fmt.Errorf("[TaskManager] failed to pack %s: %w", name, err)
	}
	tx.logs = append(tx.logs, types.Log{Topics: topics, Data: packed})
	return nil
}

// apply registers a state mutation. Mutations only run when every check of
// the transaction has passed.
func (tx *txContext) apply(fn func()) {
	tx.effects = append(tx.effects, fn)
}

func (m *Manager) txHash(from common.Address, calldata []byte) common.Hash {
	var seq [8]byte
	binary.BigEndian.PutUint64(seq[:], m.txCount)
	return crypto.Keccak256Hash(from.Bytes(), calldata, seq[:])
}

// commit runs the effects of tx in a new block and records its receipt.
// Callers hold m.mu, except New.
func (m *Manager) commit(hash common.Hash, tx *txContext, failure error) *types.Receipt {
	m.blockNumber++
	m.txCount++

	receipt := &types.Receipt{
		Type:              types.DynamicFeeTxType,
		Status:            types.ReceiptStatusSuccessful,
		TxHash:            hash,
		BlockNumber:       new(big.Int).SetUint64(m.blockNumber),
		BlockHash:         m.blockHash(m.blockNumber),
		GasUsed:           gasPerTransaction,
		CumulativeGasUsed: gasPerTransaction,
		ContractAddress:   common.Address{},
	}
	if failure != nil {
		receipt.Status = types.ReceiptStatusFailed
		m.receipts[hash] = receipt
		return receipt
	}

	for _, fn := range tx.effects {
		fn()
	}
	for i := range tx.logs {
		l := tx.logs[i]
		l.Address = m.address
		l.BlockNumber = m.blockNumber
		l.BlockHash = receipt.BlockHash
		l.TxHash = hash
		l.Index = uint(len(m.logs))
		l.TxIndex = 0
		m.logs = append(m.logs, l)
		receipt.Logs = append(receipt.Logs, &l)
	}
	receipt.Bloom = types.CreateBloom(types.Receipts{receipt})
	m.receipts[hash] = receipt
	return receipt
}

func (m *Manager) blockHash(number uint64) common.Hash {
	return crypto.Keccak256Hash(m.address.Bytes(), new(big.Int).SetUint64(number).Bytes())
}

func (m *Manager) status(participant common.Address) ParticipantStatus {
	if s, ok := m.participants[participant]; ok {
		return *s
	}
	return ParticipantStatus{}
}

func (m *Manager) markStatus(participant common.Address, fn func(*ParticipantStatus)) {
	s, ok := m.participants[participant]
	if !ok {
		s = &ParticipantStatus{}
		m.participants[participant] = s
	}
	fn(s)
}

func (m *Manager) onlyOwner(tx *txContext) error {
	if tx.from != m.owner {
		return revert(ErrUnauthorizedSender, "caller is not the owner")
	}
	return nil
}

func (m *Manager) whenNotPaused() error {
	if m.paused {
		return revert(ErrPreconditionViolation, ReasonPaused)
	}
	return nil
}

func (m *Manager) screen(tx *txContext, participant common.Address, taskID string, nonce *big.Int, sig []byte) error {
	if err := m.whenNotPaused(); err != nil {
		return err
	}
	if tx.from != participant {
		return revert(ErrUnauthorizedSender, "sender is not the participant proxy")
	}
	key := string(sig)
	if _, used := m.usedScreening[key]; used {
		return revert(ErrSignatureReplay, "screening signature already used")
	}
	req := eip712.ScreeningRequest{Participant: participant, TaskID: taskID, Nonce: nonce}
	if !signer.VerifyScreening(m.domain, req, sig, m.owner) {
		return revert(ErrInvalidSignature, "screening signature not from task master")
	}
	if m.status(participant).Screened {
		return revert(ErrPreconditionViolation, ReasonAlreadyScreened)
	}

	stored := append([]byte(nil), sig...)
	if err := tx.emit(m.abi, "ScreeningSignatureUsed", stored, participant); err != nil {
		return err
	}
	if err := tx.emit(m.abi, "ParticipantProxyScreened", participant); err != nil {
		return err
	}
	tx.apply(func() {
		m.usedScreening[key] = struct{}{}
		m.markStatus(participant, func(s *ParticipantStatus) { s.Screened = true })
		m.screenedCount++
	})
	return nil
}

func (m *Manager) claim(tx *txContext, participant, paxAccount common.Address, rewardID string, nonce *big.Int, sig []byte) error {
	if err := m.whenNotPaused(); err != nil {
		return err
	}
	if tx.from != participant {
		return revert(ErrUnauthorizedSender, "sender is not the participant proxy")
	}
	st := m.status(participant)
	if !st.Screened {
		return revert(ErrPreconditionViolation, ReasonNotScreened)
	}
	if st.Rewarded {
		return revert(ErrPreconditionViolation, ReasonAlreadyRewarded)
	}
	key := string(sig)
	if _, used := m.usedClaiming[key]; used {
		return revert(ErrSignatureReplay, "claiming signature already used")
	}
	req := eip712.RewardClaimRequest{Participant: participant, RewardID: rewardID, Nonce: nonce}
	if !signer.VerifyRewardClaim(m.domain, req, sig, m.owner) {
		return revert(ErrInvalidSignature, "claiming signature not from task master")
	}
	if paxAccount == (common.Address{}) {
		return revert(ErrPreconditionViolation, "pax account is required")
	}

	amount := new(big.Int).Set(m.rewardAmount)
	if m.rewardToken.BalanceOf(m.address).Cmp(amount) < 0 {
		return revert(ErrTransferFailed, "insufficient reward token balance")
	}

	stored := append([]byte(nil), sig...)
	if err := tx.emit(m.abi, "ClaimingSignatureUsed", stored, participant); err != nil {
		return err
	}
	if err := tx.emit(m.abi, "ParticipantProxyMarkedAsRewarded", participant, paxAccount); err != nil {
		return err
	}
	if err := tx.emit(m.abi, "PaxAccountRewarded", paxAccount, amount); err != nil {
		return err
	}
	if tx.dryRun {
		return nil
	}
	// The transfer is the only effect that can fail after the checks. It runs
	// before anything else is applied so a failure leaves no trace.
	if err := m.rewardToken.Transfer(m.address, paxAccount, amount); err != nil {
		return &Revert{Kind: ErrTransferFailed, Reason: err.Error()}
	}
	tx.apply(func() {
		m.usedClaiming[key] = struct{}{}
		m.markStatus(participant, func(s *ParticipantStatus) { s.Rewarded = true })
		m.rewardedCount++
		m.claimedCount++
	})
	return nil
}

func (m *Manager) updateRewardAmount(tx *txContext, amount *big.Int) error {
	if err := m.onlyOwner(tx); err != nil {
		return err
	}
	if err := checkMonotonic(m.rewardAmount, amount); err != nil {
		return err
	}
	old := new(big.Int).Set(m.rewardAmount)
	next := new(big.Int).Set(amount)
	if err := tx.emit(m.abi, "RewardAmountUpdated", old, next); err != nil {
		return err
	}
	tx.apply(func() { m.rewardAmount = next })
	return nil
}

func (m *Manager) updateTarget(tx *txContext, target *big.Int) error {
	if err := m.onlyOwner(tx); err != nil {
		return err
	}
	if err := checkMonotonic(m.target, target); err != nil {
		return err
	}
	old := new(big.Int).Set(m.target)
	next := new(big.Int).Set(target)
	if err := tx.emit(m.abi, "TargetNumberOfParticipantProxiesUpdated", old, next); err != nil {
		return err
	}
	tx.apply(func() { m.target = next })
	return nil
}

func checkMonotonic(current, next *big.Int) error {
	if next == nil || next.Sign() <= 0 {
		return revert(ErrConfigurationViolation, "value must be greater than zero")
	}
	if next.Cmp(current) < 0 {
		return revert(ErrConfigurationViolation, "value must not decrease")
	}
	return nil
}

func (m *Manager) pause(tx *txContext) error {
	if err := m.onlyOwner(tx); err != nil {
		return err
	}
	if err := m.whenNotPaused(); err != nil {
		return err
	}
	if err := tx.emit(m.abi, "Paused", tx.from); err != nil {
		return err
	}
	tx.apply(func() { m.paused = true })
	return nil
}

func (m *Manager) unpause(tx *txContext) error {
	if err := m.onlyOwner(tx); err != nil {
		return err
	}
	if !m.paused {
		return revert(ErrPreconditionViolation, ReasonNotPaused)
	}
	if err := tx.emit(m.abi, "Unpaused", tx.from); err != nil {
		return err
	}
	tx.apply(func() { m.paused = false })
	return nil
}

func (m *Manager) withdrawRewardToken(tx *txContext) error {
	if err := m.onlyOwner(tx); err != nil {
		return err
	}
	amount, err := m.sweep(tx, m.rewardToken)
	if err != nil {
		return err
	}
	return tx.emit(m.abi, "RewardTokenWithdrawn", m.owner, amount)
}

func (m *Manager) withdrawGivenToken(tx *txContext, tokenAddress common.Address) error {
	if err := m.onlyOwner(tx); err != nil {
		return err
	}
	token, ok := m.tokens[tokenAddress]
	if !ok {
		return revert(ErrConfigurationViolation, "unknown token "+tokenAddress.Hex())
	}
	amount, err := m.sweep(tx, token)
	if err != nil {
		return err
	}
	return tx.emit(m.abi, "GivenTokenWithdrawn", m.owner, tokenAddress, amount)
}

// sweep moves the whole balance of token held by the contract to the owner.
func (m *Manager) sweep(tx *txContext, token Token) (*big.Int, error) {
	amount := token.BalanceOf(m.address)
	if amount.Sign() == 0 {
		return nil, revert(ErrPreconditionViolation, "nothing to withdraw")
	}
	if tx.dryRun {
		return amount, nil
	}
	if err := token.Transfer(m.address, m.owner, amount); err != nil {
		return nil, &Revert{Kind: ErrTransferFailed, Reason: err.Error()}
	}
	return amount, nil
}

// IsRevert reports whether err is a contract revert rather than a decoding
// or infrastructure failure.
func IsRevert(err error) bool {
	var r *Revert
	return errors.As(err, &r)
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/canvassing/pax-rewards/internal/database/cache"
	"github.com/canvassing/pax-rewards/pkg/common/contracts/ethereum"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
	"github.com/canvassing/pax-rewards/pkg/repos/records"
	"github.com/canvassing/pax-rewards/pkg/taskmaster"
)

const statusCacheTTL = 30 * time.Second

type Assembler interface {
	Domain() eip712.Domain
	TaskMaster() ethcommon.Address
	ScreeningPackage(ctx context.Context, participant ethcommon.Address, taskID string) (*taskmaster.SignaturePackage, error)
	RewardClaimPackage(ctx context.Context, participant ethcommon.Address, rewardID string) (*taskmaster.SignaturePackage, error)
	VerifyPackage(p *taskmaster.SignaturePackage) bool
}

type ChainClient interface {
	GetParticipantStatus(ctx context.Context, participant ethcommon.Address) (*ethereum.ParticipantStatus, error)
}

type RecordsRepo interface {
	Create(ctx context.Context, arg records.CreateParams) (*records.Records, error)
	GetByID(ctx context.Context, id uuid.UUID) (*records.Records, error)
	ListByParticipant(ctx context.Context, participant string) ([]records.Records, error)
	UpdateTxnHash(ctx context.Context, id uuid.UUID, txnHash string) (*records.Records, error)
}

// StatusCache is optional; without it participant status is read from chain
// on every request.
type StatusCache interface {
	Get(ctx context.Context, key string, target interface{}, ttl time.Duration, load cache.LoadFunc) error
}

type NonceSource interface {
	Next() (*big.Int, error)
}

type Config struct {
	Assembler   Assembler
	ChainClient ChainClient
	RecordsRepo RecordsRepo
	StatusCache StatusCache
	Nonces      NonceSource
}

// Handler handles HTTP requests
type Handler struct {
	assembler   Assembler
	chainClient ChainClient
	recordsRepo RecordsRepo
	statusCache StatusCache
	nonces      NonceSource
}

// NewHandler creates a new handler
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("[API] config is nil")
	}
	if cfg.Assembler == nil {
		return nil, fmt.Errorf("[API] Assembler not initialized")
	}
	if cfg.ChainClient == nil {
		return nil, fmt.Errorf("[API] Chain client not initialized")
	}
	if cfg.RecordsRepo == nil {
		return nil, fmt.Errorf("[API] Records repo not initialized")
	}
	if cfg.Nonces == nil {
		return nil, fmt.Errorf("[API] Nonce source not initialized")
	}
	return &Handler{
		assembler:   cfg.Assembler,
		chainClient: cfg.ChainClient,
		recordsRepo: cfg.RecordsRepo,
		statusCache: cfg.StatusCache,
		nonces:      cfg.Nonces,
	}, nil
}

type NonceResponse struct {
	Nonce string `json:"nonce"`
}

type ScreeningRequest struct {
	Participant string `json:"participant"`
	TaskID      string `json:"task_id"`
}

type RewardClaimRequest struct {
	Participant string `json:"participant"`
	RewardID    string `json:"reward_id"`
	PaxAccount  string `json:"pax_account"`
}

// PackageResponse carries everything a participant needs to submit the
// authorization. Nonce is a decimal string since it exceeds 2^53.
type PackageResponse struct {
	ID                string `json:"id,omitempty"`
	Kind              string `json:"kind"`
	Participant       string `json:"participant"`
	RequestID         string `json:"request_id"`
	Nonce             string `json:"nonce"`
	Signature         string `json:"signature"`
	IsValid           bool   `json:"is_valid"`
	TaskMaster        string `json:"task_master"`
	ChainID           string `json:"chain_id"`
	VerifyingContract string `json:"verifying_contract"`
}

type VerifyRequest struct {
	Participant string `json:"participant"`
	RequestID   string `json:"request_id"`
	Nonce       string `json:"nonce"`
	Signature   string `json:"signature"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}

type StatusResponse struct {
	Participant string            `json:"participant"`
	Screened    bool              `json:"screened"`
	Rewarded    bool              `json:"rewarded"`
	Records     []records.Records `json:"records"`
}

type UpdateRecordRequest struct {
	TxnHash string `json:"txn_hash"`
}

// GetNonce returns a fresh random nonce.
func (h *Handler) GetNonce(w http.ResponseWriter, r *http.Request) {
	n, err := h.nonces.Next()
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, NonceResponse{Nonce: n.String()})
}

// CreateScreening issues a screening package and records it.
func (h *Handler) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var req ScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	participant, err := parseAddress("participant", req.Participant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.TaskID == "" {
		writeError(w, http.StatusBadRequest, "task_id is required")
		return
	}

	status, err := h.participantStatus(r.Context(), participant)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("failed to read participant status: %v", err))
		return
	}
	if status.Screened {
		writeError(w, http.StatusConflict, "participant already screened")
		return
	}

	pkg, err := h.assembler.ScreeningPackage(r.Context(), participant, req.TaskID)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	h.respondWithPackage(w, r, pkg, "")
}

// CreateRewardClaim issues a reward claim package and records it. The
// participant must already be screened and not yet rewarded.
func (h *Handler) CreateRewardClaim(w http.ResponseWriter, r *http.Request) {
	var req RewardClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	participant, err := parseAddress("participant", req.Participant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	paxAccount, err := parseAddress("pax_account", req.PaxAccount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.RewardID == "" {
		writeError(w, http.StatusBadRequest, "reward_id is required")
		return
	}

	status, err := h.participantStatus(r.Context(), participant)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("failed to read participant status: %v", err))
		return
	}
	switch {
	case !status.Screened:
		writeError(w, http.StatusConflict, "participant not screened")
		return
	case status.Rewarded:
		writeError(w, http.StatusConflict, "participant already rewarded")
		return
	}

	pkg, err := h.assembler.RewardClaimPackage(r.Context(), participant, req.RewardID)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	h.respondWithPackage(w, r, pkg, paxAccount.Hex())
}

func (h *Handler) respondWithPackage(w http.ResponseWriter, r *http.Request, pkg *taskmaster.SignaturePackage, paxAccount string) {
	rec, err := h.recordsRepo.Create(r.Context(), records.CreateParams{
		Kind:             string(pkg.Kind),
		RequestID:        pkg.RequestID,
		ParticipantProxy: pkg.Participant.Hex(),
		PaxAccount:       paxAccount,
		Signature:        pkg.Signature,
		Nonce:            pkg.Nonce,
	})
	if err != nil {
		writeErr(w, r, fmt.Errorf("failed to store record: %w", err))
		return
	}

	domain := h.assembler.Domain()
	writeJSON(w, http.StatusCreated, PackageResponse{
		ID:                rec.ID.String(),
		Kind:              string(pkg.Kind),
		Participant:       pkg.Participant.Hex(),
		RequestID:         pkg.RequestID,
		Nonce:             pkg.Nonce.String(),
		Signature:         hexutil.Encode(pkg.Signature),
		IsValid:           pkg.IsValid,
		TaskMaster:        h.assembler.TaskMaster().Hex(),
		ChainID:           domain.ChainID.String(),
		VerifyingContract: domain.VerifyingContract.Hex(),
	})
}

// VerifyScreening checks a screening signature against the task master.
func (h *Handler) VerifyScreening(w http.ResponseWriter, r *http.Request) {
	h.verify(w, r, taskmaster.KindScreening)
}

// VerifyRewardClaim checks a reward claim signature against the task master.
func (h *Handler) VerifyRewardClaim(w http.ResponseWriter, r *http.Request) {
	h.verify(w, r, taskmaster.KindRewardClaim)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request, kind taskmaster.Kind) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	participant, err := parseAddress("participant", req.Participant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, ok := new(big.Int).SetString(req.Nonce, 10)
	if !ok || n.Sign() < 0 {
		writeError(w, http.StatusBadRequest, "nonce must be a non-negative decimal integer")
		return
	}
	sig, err := hexutil.Decode(req.Signature)
	if err != nil || len(sig) != signer.SignatureLength {
		writeError(w, http.StatusBadRequest, "signature must be 65 hex encoded bytes")
		return
	}

	valid := h.assembler.VerifyPackage(&taskmaster.SignaturePackage{
		Kind:        kind,
		Participant: participant,
		RequestID:   req.RequestID,
		Nonce:       n,
		Signature:   sig,
	})
	writeJSON(w, http.StatusOK, VerifyResponse{Valid: valid})
}

// GetParticipant returns on-chain status and the records issued to a participant.
func (h *Handler) GetParticipant(w http.ResponseWriter, r *http.Request) {
	participant, err := parseAddress("address", chi.URLParam(r, "address"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	status, err := h.participantStatus(r.Context(), participant)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("failed to read participant status: %v", err))
		return
	}
	items, err := h.recordsRepo.ListByParticipant(r.Context(), participant.Hex())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if items == nil {
		items = []records.Records{}
	}
	writeJSON(w, http.StatusOK, StatusResponse{
		Participant: participant.Hex(),
		Screened:    status.Screened,
		Rewarded:    status.Rewarded,
		Records:     items,
	})
}

// UpdateRecord attaches the submitting transaction hash to a record.
func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}
	var req UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	hash, err := hexutil.Decode(req.TxnHash)
	if err != nil || len(hash) != ethcommon.HashLength {
		writeError(w, http.StatusBadRequest, "txn_hash must be a 32 byte hex string")
		return
	}

	rec, err := h.recordsRepo.UpdateTxnHash(r.Context(), id, ethcommon.BytesToHash(hash).Hex())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// GetRecord returns a single record by id.
func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}
	rec, err := h.recordsRepo.GetByID(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) participantStatus(ctx context.Context, participant ethcommon.Address) (*ethereum.ParticipantStatus, error) {
	if h.statusCache == nil {
		return h.chainClient.GetParticipantStatus(ctx, participant)
	}
	var status ethereum.ParticipantStatus
	err := h.statusCache.Get(ctx, ethereum.StatusCacheKey(participant), &status, statusCacheTTL, func() (interface{}, error) {
		return h.chainClient.GetParticipantStatus(ctx, participant)
	})
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("participant", participant.Hex()).Msg("[API] status cache failed, reading chain")
		return h.chainClient.GetParticipantStatus(ctx, participant)
	}
	return &status, nil
}

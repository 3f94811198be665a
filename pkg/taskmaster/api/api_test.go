package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/canvassing/pax-rewards/pkg/common/contracts/ethereum"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/nonce"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
	"github.com/canvassing/pax-rewards/pkg/repos/records"
	"github.com/canvassing/pax-rewards/pkg/taskmaster"
)

var (
	contractAddr = ethcommon.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	chainID      = big.NewInt(42220)
	participant  = ethcommon.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	paxAccount   = ethcommon.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

type mockChainClient struct {
	mock.Mock
}

func (m *mockChainClient) GetParticipantStatus(ctx context.Context, p ethcommon.Address) (*ethereum.ParticipantStatus, error) {
	args := m.Called(ctx, p)
	if s := args.Get(0); s != nil {
		return s.(*ethereum.ParticipantStatus), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRecordsRepo struct {
	mock.Mock
}

func (m *mockRecordsRepo) Create(ctx context.Context, arg records.CreateParams) (*records.Records, error) {
	args := m.Called(ctx, arg)
	if r := args.Get(0); r != nil {
		return r.(*records.Records), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordsRepo) GetByID(ctx context.Context, id uuid.UUID) (*records.Records, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*records.Records), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordsRepo) ListByParticipant(ctx context.Context, p string) ([]records.Records, error) {
	args := m.Called(ctx, p)
	if r := args.Get(0); r != nil {
		return r.([]records.Records), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordsRepo) UpdateTxnHash(ctx context.Context, id uuid.UUID, txnHash string) (*records.Records, error) {
	args := m.Called(ctx, id, txnHash)
	if r := args.Get(0); r != nil {
		return r.(*records.Records), args.Error(1)
	}
	return nil, args.Error(1)
}

type APITestSuite struct {
	suite.Suite

	authority *signer.LocalAuthority
	assembler *taskmaster.Assembler
	chain     *mockChainClient
	repo      *mockRecordsRepo
	server    *httptest.Server
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	s.authority = signer.NewLocalAuthorityFromKey(key)

	s.assembler, err = taskmaster.NewAssembler(&taskmaster.Config{
		Authority: s.authority,
		Domain:    eip712.BuildDomain(contractAddr, chainID),
		Guard:     taskmaster.NewMemoryGuard(),
	})
	s.Require().NoError(err)

	s.chain = new(mockChainClient)
	s.repo = new(mockRecordsRepo)
	handler, err := NewHandler(&Config{
		Assembler:   s.assembler,
		ChainClient: s.chain,
		RecordsRepo: s.repo,
		Nonces:      nonce.NewGenerator(nil),
	})
	s.Require().NoError(err)
	s.server = httptest.NewServer(NewServer(handler, ServerConfig{}).Handler())
}

func (s *APITestSuite) TearDownTest() {
	s.server.Close()
	s.chain.AssertExpectations(s.T())
	s.repo.AssertExpectations(s.T())
}

func (s *APITestSuite) do(method, path string, body interface{}, out interface{}) int {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.server.URL+path, &buf)
	s.Require().NoError(err)
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *APITestSuite) status(screened, rewarded bool) {
	s.chain.On("GetParticipantStatus", mock.Anything, participant).
		Return(&ethereum.ParticipantStatus{Participant: participant, Screened: screened, Rewarded: rewarded}, nil)
}

func (s *APITestSuite) expectCreate(kind string, pax string) uuid.UUID {
	id := uuid.New()
	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(p records.CreateParams) bool {
		return p.Kind == kind && p.ParticipantProxy == participant.Hex() && p.PaxAccount == pax &&
			len(p.Signature) == signer.SignatureLength && p.Nonce != nil
	})).Return(&records.Records{ID: id}, nil).Once()
	return id
}

func (s *APITestSuite) TestHealth() {
	var out map[string]string
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/healthz", nil, &out))
	s.Equal("ok", out["status"])
}

func (s *APITestSuite) TestNonce() {
	var a, b NonceResponse
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/nonce", nil, &a))
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/nonce", nil, &b))

	n, ok := new(big.Int).SetString(a.Nonce, 10)
	s.Require().True(ok)
	s.True(n.BitLen() <= 256)
	s.NotEqual(a.Nonce, b.Nonce)
}

func (s *APITestSuite) TestCreateScreening() {
	s.status(false, false)
	id := s.expectCreate(records.KindScreening, "")

	var out PackageResponse
	code := s.do(http.MethodPost, "/api/v1/screenings", ScreeningRequest{Participant: participant.Hex(), TaskID: "task-42"}, &out)
	s.Require().Equal(http.StatusCreated, code)

	s.Equal(id.String(), out.ID)
	s.Equal(string(taskmaster.KindScreening), out.Kind)
	s.True(out.IsValid)
	s.Equal(s.authority.Address().Hex(), out.TaskMaster)
	s.Equal("42220", out.ChainID)
	s.Equal(contractAddr.Hex(), out.VerifyingContract)

	n, ok := new(big.Int).SetString(out.Nonce, 10)
	s.Require().True(ok)
	sig, err := hexutil.Decode(out.Signature)
	s.Require().NoError(err)
	s.True(signer.VerifyScreening(s.assembler.Domain(),
		eip712.ScreeningRequest{Participant: participant, TaskID: "task-42", Nonce: n}, sig, s.authority.Address()))
}

func (s *APITestSuite) TestCreateScreeningAlreadyScreened() {
	s.status(true, false)
	var out ErrorResponse
	code := s.do(http.MethodPost, "/api/v1/screenings", ScreeningRequest{Participant: participant.Hex(), TaskID: "task-42"}, &out)
	s.Equal(http.StatusConflict, code)
	s.Equal("participant already screened", out.Error)
}

func (s *APITestSuite) TestCreateScreeningBadInput() {
	tests := []ScreeningRequest{
		{Participant: "0x1234", TaskID: "task-42"},
		{Participant: ethcommon.Address{}.Hex(), TaskID: "task-42"},
		{Participant: participant.Hex()},
	}
	for _, tt := range tests {
		s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/screenings", tt, nil), tt)
	}
}

func (s *APITestSuite) TestCreateRewardClaim() {
	s.status(true, false)
	s.expectCreate(records.KindRewardClaim, paxAccount.Hex())

	var out PackageResponse
	code := s.do(http.MethodPost, "/api/v1/reward-claims", RewardClaimRequest{
		Participant: participant.Hex(),
		RewardID:    "reward-7",
		PaxAccount:  paxAccount.Hex(),
	}, &out)
	s.Require().Equal(http.StatusCreated, code)
	s.Equal(string(taskmaster.KindRewardClaim), out.Kind)
	s.Equal("reward-7", out.RequestID)

	// the package verifies through the API as well
	var verified VerifyResponse
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/reward-claims/verify", VerifyRequest{
		Participant: out.Participant,
		RequestID:   out.RequestID,
		Nonce:       out.Nonce,
		Signature:   out.Signature,
	}, &verified))
	s.True(verified.Valid)

	// but not as a screening
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/screenings/verify", VerifyRequest{
		Participant: out.Participant,
		RequestID:   out.RequestID,
		Nonce:       out.Nonce,
		Signature:   out.Signature,
	}, &verified))
	s.False(verified.Valid)
}

func (s *APITestSuite) TestCreateRewardClaimOrdering() {
	tests := []struct {
		screened, rewarded bool
		reason             string
	}{
		{false, false, "participant not screened"},
		{true, true, "participant already rewarded"},
	}
	for _, tt := range tests {
		s.chain.ExpectedCalls = nil
		s.status(tt.screened, tt.rewarded)
		var out ErrorResponse
		code := s.do(http.MethodPost, "/api/v1/reward-claims", RewardClaimRequest{
			Participant: participant.Hex(),
			RewardID:    "reward-7",
			PaxAccount:  paxAccount.Hex(),
		}, &out)
		s.Equal(http.StatusConflict, code)
		s.Equal(tt.reason, out.Error)
	}
}

func (s *APITestSuite) TestChainUnavailable() {
	s.chain.On("GetParticipantStatus", mock.Anything, participant).Return(nil, errors.New("rpc down"))
	code := s.do(http.MethodPost, "/api/v1/screenings", ScreeningRequest{Participant: participant.Hex(), TaskID: "task-42"}, nil)
	s.Equal(http.StatusBadGateway, code)
}

func (s *APITestSuite) TestVerifyRejectsMalformed() {
	sig := hexutil.Encode(make([]byte, signer.SignatureLength))
	tests := []VerifyRequest{
		{Participant: "nope", RequestID: "task-42", Nonce: "1", Signature: sig},
		{Participant: participant.Hex(), RequestID: "task-42", Nonce: "0x01", Signature: sig},
		{Participant: participant.Hex(), RequestID: "task-42", Nonce: "-1", Signature: sig},
		{Participant: participant.Hex(), RequestID: "task-42", Nonce: "1", Signature: "0x1234"},
	}
	for _, tt := range tests {
		s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/screenings/verify", tt, nil), tt)
	}

	// well formed but not from the task master
	var out VerifyResponse
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/screenings/verify", VerifyRequest{
		Participant: participant.Hex(), RequestID: "task-42", Nonce: "1", Signature: sig,
	}, &out))
	s.False(out.Valid)
}

func (s *APITestSuite) TestGetParticipant() {
	s.status(true, false)
	s.repo.On("ListByParticipant", mock.Anything, participant.Hex()).
		Return([]records.Records{{ID: uuid.New(), Kind: records.KindScreening}}, nil)

	var out StatusResponse
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/participants/"+participant.Hex(), nil, &out))
	s.True(out.Screened)
	s.False(out.Rewarded)
	s.Len(out.Records, 1)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/participants/0xzz", nil, nil))
}

func (s *APITestSuite) TestUpdateRecord() {
	id := uuid.New()
	hash := "0xab00000000000000000000000000000000000000000000000000000000000001"
	s.repo.On("UpdateTxnHash", mock.Anything, id, hash).Return(&records.Records{ID: id, TxnHash: &hash}, nil)

	var out records.Records
	s.Equal(http.StatusOK, s.do(http.MethodPatch, "/api/v1/records/"+id.String(), UpdateRecordRequest{TxnHash: hash}, &out))
	s.Require().NotNil(out.TxnHash)
	s.Equal(hash, *out.TxnHash)

	missing := uuid.New()
	s.repo.On("UpdateTxnHash", mock.Anything, missing, hash).Return(nil, records.ErrNotFound)
	s.Equal(http.StatusNotFound, s.do(http.MethodPatch, "/api/v1/records/"+missing.String(), UpdateRecordRequest{TxnHash: hash}, nil))

	s.Equal(http.StatusBadRequest, s.do(http.MethodPatch, "/api/v1/records/"+id.String(), UpdateRecordRequest{TxnHash: "0x12"}, nil))
	s.Equal(http.StatusBadRequest, s.do(http.MethodPatch, "/api/v1/records/not-a-uuid", UpdateRecordRequest{TxnHash: hash}, nil))
}

func (s *APITestSuite) TestGetRecord() {
	id := uuid.New()
	s.repo.On("GetByID", mock.Anything, id).Return(&records.Records{ID: id, Kind: records.KindRewardClaim}, nil)

	var out records.Records
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/records/"+id.String(), nil, &out))
	s.Equal(id, out.ID)
}

func (s *APITestSuite) TestRateLimit() {
	handler, err := NewHandler(&Config{
		Assembler:   s.assembler,
		ChainClient: s.chain,
		RecordsRepo: s.repo,
		Nonces:      nonce.NewGenerator(nil),
	})
	s.Require().NoError(err)
	limited := NewServer(handler, ServerConfig{RateLimit: 0.001, Burst: 1})
	defer limited.Stop(context.Background())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/nonce", nil)
		limited.Handler().ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	s.Equal([]int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)

	// health checks are never limited
	rec := httptest.NewRecorder()
	limited.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	s.Equal(http.StatusOK, rec.Code)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{taskmaster.ErrZeroParticipant, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", eip712.ErrNilNonce), http.StatusBadRequest},
		{records.ErrNotFound, http.StatusNotFound},
		{taskmaster.ErrNonceReserved, http.StatusConflict},
		{signer.ErrSigningUnavailable, http.StatusServiceUnavailable},
		{nonce.ErrEntropyUnavailable, http.StatusServiceUnavailable},
		{taskmaster.ErrSelfVerification, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusOf(tt.err); got != tt.want {
			t.Errorf("statusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

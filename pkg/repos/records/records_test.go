package records_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/stumble/dcache"
	"github.com/stumble/wpgx/testsuite"

	"github.com/canvassing/pax-rewards/pkg/repos/records"
)

const (
	participant = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	paxAccount  = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
	txnHash     = "0xAB00000000000000000000000000000000000000000000000000000000000001"
)

type RecordsTestSuite struct {
	*testsuite.WPgxTestSuite
	ctx context.Context

	RedisConn redis.UniversalClient
	FreeCache *freecache.Cache
	DCache    *dcache.DCache
	repo      *records.Queries
}

func TestRecordsSuite(t *testing.T) {
	suite.Run(t, newRecordsTestSuite())
}

func newRecordsTestSuite() *RecordsTestSuite {
	redisClient := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:6379",
		ReadTimeout: 3 * time.Second,
		PoolSize:    50,
	})
	memCache := freecache.NewCache(10 * 1024 * 1024)
	dCache, err := dcache.NewDCache("test", redisClient, memCache, 100*time.Millisecond, true, true)
	if err != nil {
		panic(err)
	}
	return &RecordsTestSuite{
		WPgxTestSuite: testsuite.NewWPgxTestSuiteFromEnv("records_test", []string{records.Schema}),
		RedisConn:     redisClient,
		FreeCache:     memCache,
		DCache:        dCache,
	}
}

func (s *RecordsTestSuite) SetupTest() {
	s.WPgxTestSuite.SetupTest()
	s.ctx = context.Background()
	s.Require().NoError(s.RedisConn.FlushAll(s.ctx).Err())
	s.FreeCache.Clear()
	s.repo = records.New(s.GetPool().WConn(), s.DCache)
}

func (s *RecordsTestSuite) create(kind string, sig []byte, nonce *big.Int) *records.Records {
	params := records.CreateParams{
		Kind:             kind,
		RequestID:        "task-42",
		ParticipantProxy: participant,
		Signature:        sig,
		Nonce:            nonce,
	}
	if kind == records.KindRewardClaim {
		params.RequestID = "reward-7"
		params.PaxAccount = paxAccount
	}
	r, err := s.repo.Create(s.ctx, params)
	s.Require().NoError(err)
	return r
}

func (s *RecordsTestSuite) TestCreateAndGet() {
	maxNonce := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	created := s.create(records.KindScreening, []byte("sig-1"), maxNonce)

	s.NotEqual(uuid.Nil, created.ID)
	s.Equal("0x70997970c51812dc3a010c7d01b50e0d17dc79c8", created.ParticipantProxy)
	s.Nil(created.PaxAccount)
	s.Nil(created.TxnHash)

	n, ok := created.NonceInt()
	s.Require().True(ok)
	s.Equal(0, maxNonce.Cmp(n))

	got, err := s.repo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)
	s.Equal(created.Signature, got.Signature)

	// served from cache the second time around
	got, err = s.repo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.Nonce, got.Nonce)

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, records.ErrNotFound)
}

func (s *RecordsTestSuite) TestDuplicateSignatureRejected() {
	s.create(records.KindScreening, []byte("sig-1"), big.NewInt(1))
	_, err := s.repo.Create(s.ctx, records.CreateParams{
		Kind:             records.KindScreening,
		RequestID:        "task-43",
		ParticipantProxy: participant,
		Signature:        []byte("sig-1"),
		Nonce:            big.NewInt(2),
	})
	s.Error(err)
}

func (s *RecordsTestSuite) TestUpdateTxnHashInvalidatesCache() {
	created := s.create(records.KindRewardClaim, []byte("sig-2"), big.NewInt(42))
	s.Require().NotNil(created.PaxAccount)

	_, err := s.repo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)

	updated, err := s.repo.UpdateTxnHash(s.ctx, created.ID, txnHash)
	s.Require().NoError(err)
	s.Require().NotNil(updated.TxnHash)
	s.Equal("0xab00000000000000000000000000000000000000000000000000000000000001", *updated.TxnHash)

	got, err := s.repo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.TxnHash)
	s.Equal(*updated.TxnHash, *got.TxnHash)

	_, err = s.repo.UpdateTxnHash(s.ctx, uuid.New(), txnHash)
	s.ErrorIs(err, records.ErrNotFound)
}

func (s *RecordsTestSuite) TestMarkConfirmedAndList() {
	s.create(records.KindScreening, []byte("sig-1"), big.NewInt(1))
	s.create(records.KindRewardClaim, []byte("sig-2"), big.NewInt(2))

	confirmed, err := s.repo.MarkConfirmed(s.ctx, []byte("sig-1"), txnHash, 12)
	s.Require().NoError(err)
	s.Require().NotNil(confirmed.ConfirmedBlock)
	s.Equal(int64(12), *confirmed.ConfirmedBlock)

	_, err = s.repo.MarkConfirmed(s.ctx, []byte("unknown"), txnHash, 13)
	s.ErrorIs(err, records.ErrNotFound)

	items, err := s.repo.ListByParticipant(s.ctx, participant)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal(records.KindScreening, items[0].Kind)
	s.Equal(records.KindRewardClaim, items[1].Kind)

	bySig, err := s.repo.GetBySignature(s.ctx, []byte("sig-2"))
	s.Require().NoError(err)
	s.Equal("reward-7", bySig.RequestID)
}

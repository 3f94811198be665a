package records

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"
)

const Schema = `
CREATE TABLE IF NOT EXISTS authorization_records (
    id                UUID PRIMARY KEY,
    kind              VARCHAR(16) NOT NULL,
    request_id        TEXT NOT NULL,
    participant_proxy VARCHAR(42) NOT NULL,
    pax_account       VARCHAR(42),
    signature         BYTEA NOT NULL UNIQUE,
    nonce             NUMERIC(78, 0) NOT NULL,
    txn_hash          VARCHAR(66),
    confirmed_block   BIGINT,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_authorization_records_participant ON authorization_records (participant_proxy);
`

const (
	KindScreening   = "screening"
	KindRewardClaim = "reward_claim"

	cacheDuration = 10 * time.Minute
)

var ErrNotFound = errors.New("record not found")

// Records is one issued signature package and its submission state.
type Records struct {
	ID               uuid.UUID `json:"id"`
	Kind             string    `json:"kind"`
	RequestID        string    `json:"request_id"`
	ParticipantProxy string    `json:"participant_proxy"`
	PaxAccount       *string   `json:"pax_account,omitempty"`
	Signature        []byte    `json:"signature"`
	// Nonce is the decimal rendering of a uint256.
	Nonce          string    `json:"nonce"`
	TxnHash        *string   `json:"txn_hash,omitempty"`
	ConfirmedBlock *int64    `json:"confirmed_block,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (r *Records) NonceInt() (*big.Int, bool) {
	return new(big.Int).SetString(r.Nonce, 10)
}

const recordColumns = `id, kind, request_id, participant_proxy, pax_account, signature, nonce::text, txn_hash, confirmed_block, created_at, updated_at`

func scanRecord(row pgx.Row) (*Records, error) {
	var (
		r  Records
		id pgtype.UUID
	)
	err := row.Scan(
		&id,
		&r.Kind,
		&r.RequestID,
		&r.ParticipantProxy,
		&r.PaxAccount,
		&r.Signature,
		&r.Nonce,
		&r.TxnHash,
		&r.ConfirmedBlock,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	r.ID = uuid.UUID(id.Bytes)
	return &r, nil
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func optionalText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func normalizeAddress(addr string) string {
	return strings.ToLower(addr)
}

func idKey(id uuid.UUID) string {
	return "authorization_records:GetByID:" + id.String()
}

type CreateParams struct {
	Kind             string
	RequestID        string
	ParticipantProxy string
	PaxAccount       string
	Signature        []byte
	Nonce            *big.Int
}

const createRecord = `INSERT INTO authorization_records
    (id, kind, request_id, participant_proxy, pax_account, signature, nonce)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + recordColumns

func (q *Queries) Create(ctx context.Context, arg CreateParams) (*Records, error) {
	if arg.Nonce == nil {
		return nil, fmt.Errorf("nonce is nil")
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate record id: %w", err)
	}
	row := q.db.WQueryRow(ctx, "authorization_records.Create", createRecord,
		pgUUID(id),
		arg.Kind,
		arg.RequestID,
		normalizeAddress(arg.ParticipantProxy),
		optionalText(normalizeAddress(arg.PaxAccount)),
		arg.Signature,
		pgtype.Numeric{Int: arg.Nonce, Exp: 0, Valid: true},
	)
	r, err := scanRecord(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	return r, nil
}

const getByID = `SELECT ` + recordColumns + ` FROM authorization_records WHERE id = $1`

func (q *Queries) GetByID(ctx context.Context, id uuid.UUID) (*Records, error) {
	dbRead := func() (any, error) {
		return scanRecord(q.db.WQueryRow(ctx, "authorization_records.GetByID", getByID, pgUUID(id)))
	}
	if q.cache == nil {
		r, err := dbRead()
		if err != nil {
			return nil, err
		}
		return r.(*Records), nil
	}

	var rv *Records
	err := q.cache.Get(ctx, idKey(id), &rv, cacheDuration, dbRead, false, false)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

const getBySignature = `SELECT ` + recordColumns + ` FROM authorization_records WHERE signature = $1`

func (q *Queries) GetBySignature(ctx context.Context, signature []byte) (*Records, error) {
	return scanRecord(q.db.WQueryRow(ctx, "authorization_records.GetBySignature", getBySignature, signature))
}

const listByParticipant = `SELECT ` + recordColumns + ` FROM authorization_records
WHERE participant_proxy = $1
ORDER BY created_at ASC`

func (q *Queries) ListByParticipant(ctx context.Context, participant string) ([]Records, error) {
	rows, err := q.db.WQuery(ctx, "authorization_records.ListByParticipant", listByParticipant, normalizeAddress(participant))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Records
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateTxnHash = `UPDATE authorization_records
SET txn_hash = $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + recordColumns

// UpdateTxnHash stores the hash of the transaction a participant submitted
// with the record's signature.
func (q *Queries) UpdateTxnHash(ctx context.Context, id uuid.UUID, txnHash string) (*Records, error) {
	r, err := scanRecord(q.db.WQueryRow(ctx, "authorization_records.UpdateTxnHash", updateTxnHash, pgUUID(id), strings.ToLower(txnHash)))
	if err != nil {
		return nil, err
	}
	q.invalidate(ctx, r.ID)
	return r, nil
}

const markConfirmed = `UPDATE authorization_records
SET txn_hash = $2, confirmed_block = $3, updated_at = NOW()
WHERE signature = $1
RETURNING ` + recordColumns

// MarkConfirmed records that the contract accepted the signature in block.
func (q *Queries) MarkConfirmed(ctx context.Context, signature []byte, txnHash string, block uint64) (*Records, error) {
	r, err := scanRecord(q.db.WQueryRow(ctx, "authorization_records.MarkConfirmed", markConfirmed, signature, strings.ToLower(txnHash), int64(block)))
	if err != nil {
		return nil, err
	}
	q.invalidate(ctx, r.ID)
	return r, nil
}

func (q *Queries) invalidate(ctx context.Context, id uuid.UUID) {
	if q.cache == nil {
		return
	}
	if err := q.cache.Invalidate(ctx, idKey(id)); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msg("failed to invalidate record cache")
	}
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/canvassing/pax-rewards/internal/metric"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/nonce"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
	"github.com/canvassing/pax-rewards/pkg/repos/records"
	"github.com/canvassing/pax-rewards/pkg/taskmaster"
)

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("[API] Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err string) {
	writeJSON(w, status, ErrorResponse{Status: "error", Error: err})
}

// writeErr maps domain errors to status codes. Each failure class keeps its
// own code so callers can tell them apart.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("[API] request failed")
		metric.RecordError("api")
	}
	writeError(w, status, err.Error())
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, taskmaster.ErrZeroParticipant),
		errors.Is(err, taskmaster.ErrEmptyRequestID),
		errors.Is(err, eip712.ErrNilNonce):
		return http.StatusBadRequest
	case errors.Is(err, records.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, taskmaster.ErrNonceReserved):
		return http.StatusConflict
	case errors.Is(err, signer.ErrSigningUnavailable),
		errors.Is(err, nonce.ErrEntropyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func parseAddress(field, s string) (ethcommon.Address, error) {
	if !ethcommon.IsHexAddress(s) {
		return ethcommon.Address{}, fmt.Errorf("%s must be a hex address", field)
	}
	addr := ethcommon.HexToAddress(s)
	if addr == (ethcommon.Address{}) {
		return ethcommon.Address{}, fmt.Errorf("%s must not be the zero address", field)
	}
	return addr, nil
}

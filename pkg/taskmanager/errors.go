package taskmanager

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSignature       = errors.New("invalid signature")
	ErrSignatureReplay        = errors.New("signature already used")
	ErrUnauthorizedSender     = errors.New("unauthorized sender")
	ErrPreconditionViolation  = errors.New("precondition violation")
	ErrConfigurationViolation = errors.New("configuration violation")
	ErrTransferFailed         = errors.New("token transfer failed")
	ErrUnknownMethod          = errors.New("unknown method")
)

// Precondition reasons carried by ErrPreconditionViolation reverts.
const (
	ReasonPaused          = "paused"
	ReasonNotScreened     = "not screened"
	ReasonAlreadyScreened = "already screened"
	ReasonAlreadyRewarded = "already rewarded"
	ReasonNotPaused       = "not paused"
)

// Revert is the failure of a transaction. State is left exactly as it was
// before the transaction started.
type Revert struct {
	Kind   error
	Reason string
}

func (r *Revert) Error() string {
	if r.Reason == "" {
		return r.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", r.Kind, r.Reason)
}

func (r *Revert) Unwrap() error {
	return r.Kind
}

func revert(kind error, reason string) *Revert {
	return &Revert{Kind: kind, Reason: reason}
}

// ReasonOf returns the revert reason of err, or "" when err is not a revert.
func ReasonOf(err error) string {
	var r *Revert
	if errors.As(err, &r) {
		return r.Reason
	}
	return ""
}

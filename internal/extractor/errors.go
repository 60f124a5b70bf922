package extractor

import (
	"errors"
	"fmt"
)

// RejectReason says why a message produced no record.
type RejectReason string

const (
	// ReasonNoCandidate means the message filter found no bank keyword.
	ReasonNoCandidate RejectReason = "no_candidate"
	// ReasonNoAmount means a candidate message had no parseable amount.
	ReasonNoAmount RejectReason = "no_amount"
)

// ErrRejected is the sentinel all rejections match via errors.Is. Rejection
// is a normal, non-exceptional outcome: it is never logged as an error and
// never aborts anything beyond the one message it applies to.
var ErrRejected = errors.New("message rejected")

// Rejection carries the reason a message was declined. It wraps ErrRejected
// so callers can test the class without caring about the reason.
type Rejection struct {
	Reason RejectReason
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("message rejected: %s", r.Reason)
}

func (r *Rejection) Unwrap() error {
	return ErrRejected
}

// ReasonFor extracts the rejection reason from err, with ok false when err
// is not a Rejection.
func ReasonFor(err error) (RejectReason, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return "", false
}

package service

import (
	"errors"
	"fmt"
)

// ErrMissingFields rejects a checkout before any remote call is made.
var ErrMissingFields = errors.New("missing required fields")

// DeclineError means the gateway answered but refused the charge. Status is
// the gateway's own wording and goes back to the client verbatim.
type DeclineError struct {
	Status string
}

func (e *DeclineError) Error() string {
	return e.Status
}

// PersistenceError means the charge settled but the order document could not
// be stored. The transaction id must reach the client so support can
// reconcile the charge by hand; no automatic refund or void is attempted.
type PersistenceError struct {
	TransactionID string
	Err           error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("order creation failed after successful charge %s: %v", e.TransactionID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

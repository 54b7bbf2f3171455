package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrJobCardNotFound  = errors.New("job card not found")
	ErrInvalidJobCardID = errors.New("invalid job card id")
	ErrForbidden        = errors.New("forbidden")
	// ErrInvalidState covers structural precondition failures, e.g. no pending
	// approval when deciding, or a second completion request while one is
	// outstanding.
	ErrInvalidState = errors.New("invalid job card state")
	// ErrInvoiceGatewayUnavailable is the handoff cause when the service runs
	// without a configured invoice gateway.
	ErrInvoiceGatewayUnavailable = errors.New("invoice gateway is not configured")
)

// ValidationError carries one or more human-readable reasons for a failed
// field-level guard. The aggregate is never mutated when it is returned.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

func newValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}

// HandoffError signals that invoice handoff failed after the card already
// committed as COMPLETED. Completion is not rolled back; invoicing is
// best-effort and separately retryable by the caller.
type HandoffError struct {
	JobCardID string
	Err       error
}

func (e *HandoffError) Error() string {
	return fmt.Sprintf("invoice handoff failed for job card %s: %v", e.JobCardID, e.Err)
}

func (e *HandoffError) Unwrap() error {
	return e.Err
}

package entities

import "time"

// ApprovalType classifies what an approval gates. Only completion approvals
// exist today; the type is kept open for future gates.

type ApprovalType string

const ApprovalTypeCompletion ApprovalType = "completion"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Approval is one record of the card's append-only approval ledger. At most
// one approval may be pending per card at any time.
type Approval struct {
	ID           string         `json:"id"`
	Type         ApprovalType   `json:"type"`
	RequestedBy  string         `json:"requested_by"`
	RequestedAt  time.Time      `json:"requested_at"`
	ApproverRole Role           `json:"approver_role"`
	Status       ApprovalStatus `json:"status"`
	Notes        string         `json:"notes,omitempty"`
	ApprovedBy   string         `json:"approved_by,omitempty"`
	ApprovedAt   *time.Time     `json:"approved_at,omitempty"`
}

// Decide closes the approval with the given outcome.
func (a *Approval) Decide(status ApprovalStatus, approverID, notes string, at time.Time) {
	a.Status = status
	a.ApprovedBy = approverID
	a.Notes = notes
	t := at.UTC()
	a.ApprovedAt = &t
}

package entities

import "time"

// JobCardStatus represents the lifecycle state of a job card.
//
// Domain notes:
//   - A card is created externally in PENDING and reaches a terminal state
//     COMPLETED or CANCELLED.
//   - Legal transitions are owned by the lifecycle package; nothing else may
//     write the Status field.

type JobCardStatus string

const (
	JobCardStatusPending         JobCardStatus = "PENDING"
	JobCardStatusInProgress      JobCardStatus = "IN_PROGRESS"
	JobCardStatusOnHold          JobCardStatus = "ON_HOLD"
	JobCardStatusWaitingApproval JobCardStatus = "WAITING_APPROVAL"
	JobCardStatusWaitingParts    JobCardStatus = "WAITING_PARTS"
	JobCardStatusCompleted       JobCardStatus = "COMPLETED"
	JobCardStatusCancelled       JobCardStatus = "CANCELLED"
)

// Terminal reports whether no further transitions may leave this status.
func (s JobCardStatus) Terminal() bool {
	return s == JobCardStatusCompleted || s == JobCardStatusCancelled
}

// JobCardPriority is independent of status and never gates a transition.

type JobCardPriority string

const (
	JobCardPriorityLow    JobCardPriority = "LOW"
	JobCardPriorityNormal JobCardPriority = "NORMAL"
	JobCardPriorityHigh   JobCardPriority = "HIGH"
	JobCardPriorityUrgent JobCardPriority = "URGENT"
)

// CostEstimate is set at card creation and immutable afterwards.
type CostEstimate struct {
	LaborCost       float64 `json:"labor_cost"`
	MaterialsCost   float64 `json:"materials_cost"`
	AdditionalCosts float64 `json:"additional_costs"`
}

func (e CostEstimate) Total() float64 {
	return e.LaborCost + e.MaterialsCost + e.AdditionalCosts
}

// CostActual is the one-time cost snapshot written at approval.
//
// ProfitMargin is a placeholder for a separate costing module and is always
// persisted as zero by this service.
type CostActual struct {
	LaborCost       float64 `json:"labor_cost"`
	MaterialsCost   float64 `json:"materials_cost"`
	AdditionalCosts float64 `json:"additional_costs"`
	Subtotal        float64 `json:"subtotal"`
	Tax             float64 `json:"tax"`
	Total           float64 `json:"total"`
	ProfitMargin    float64 `json:"profit_margin"`
}

// Note is one entry of the card's append-only audit trail. Readers that only
// need audit semantics must treat the notes list as write-once, read-many.
type Note struct {
	At       time.Time `json:"at"`
	AuthorID string    `json:"author_id"`
	Text     string    `json:"text"`
}

// InvoiceRef is what the invoice handoff collaborator returns for a completed card.
type InvoiceRef struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	PaymentLink   string `json:"payment_link,omitempty"`
}

// JobCard is the aggregate root tracking one repair job from assignment to billing.
//
// Append-only ledgers: Tasks, LaborEntries, Approvals, Notes. MaterialsUsed
// allows removal only while IN_PROGRESS and before any approval record exists.
// ActualCost and ActualCompletionDate are nil until the card is COMPLETED and
// never change afterwards. Exactly one InvoiceID is ever assigned.
type JobCard struct {
	ID        string          `json:"id"`
	JobNumber string          `json:"job_number"`
	Status    JobCardStatus   `json:"status"`
	Priority  JobCardPriority `json:"priority"`

	CustomerID             string `json:"customer_id"`
	CustomerName           string `json:"customer_name"`
	AssignedTechnicianID   string `json:"assigned_technician_id"`
	AssignedTechnicianName string `json:"assigned_technician_name"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tasks       []string `json:"tasks"`

	LaborEntries  []LaborEntry    `json:"labor_entries"`
	MaterialsUsed []MaterialEntry `json:"materials_used"`
	Approvals     []Approval      `json:"approvals"`
	Notes         []Note          `json:"notes"`

	EstimatedCost CostEstimate `json:"estimated_cost"`
	ActualCost    *CostActual  `json:"actual_cost,omitempty"`

	InvoiceID string `json:"invoice_id,omitempty"`

	CreatedAt              time.Time  `json:"created_at"`
	ScheduledStartDate     time.Time  `json:"scheduled_start_date"`
	ExpectedCompletionDate time.Time  `json:"expected_completion_date"`
	ActualCompletionDate   *time.Time `json:"actual_completion_date,omitempty"`
	LastUpdatedBy          string     `json:"last_updated_by"`
	LastUpdatedAt          time.Time  `json:"last_updated_at"`
}

// AppendNote adds a timestamped note to the audit trail. Notes are never
// reordered or deleted.
func (c *JobCard) AppendNote(at time.Time, authorID, text string) {
	c.Notes = append(c.Notes, Note{At: at.UTC(), AuthorID: authorID, Text: text})
}

// Touch records the latest mutation author and keeps LastUpdatedAt
// monotonically non-decreasing.
func (c *JobCard) Touch(actorID string, at time.Time) {
	c.LastUpdatedBy = actorID
	if at.After(c.LastUpdatedAt) {
		c.LastUpdatedAt = at.UTC()
	}
}

// PendingApproval returns the single outstanding approval, or nil. The
// engine guarantees at most one pending approval exists per card.
func (c *JobCard) PendingApproval() *Approval {
	for i := range c.Approvals {
		if c.Approvals[i].Status == ApprovalStatusPending {
			return &c.Approvals[i]
		}
	}
	return nil
}

// HasOpenLaborEntry reports whether any labor entry lacks an end time.
func (c *JobCard) HasOpenLaborEntry() bool {
	for i := range c.LaborEntries {
		if c.LaborEntries[i].EndTime == nil {
			return true
		}
	}
	return false
}

// Overdue is a read-only derived property; it never gates a transition.
func (c *JobCard) Overdue(now time.Time) bool {
	if c.Status.Terminal() || c.ExpectedCompletionDate.IsZero() {
		return false
	}
	return now.After(c.ExpectedCompletionDate)
}

// Clone returns a deep copy so callers can mutate freely and commit the copy
// only when the whole operation succeeded.
func (c JobCard) Clone() JobCard {
	out := c
	out.Tasks = append([]string(nil), c.Tasks...)
	out.LaborEntries = append([]LaborEntry(nil), c.LaborEntries...)
	out.MaterialsUsed = append([]MaterialEntry(nil), c.MaterialsUsed...)
	out.Approvals = append([]Approval(nil), c.Approvals...)
	out.Notes = append([]Note(nil), c.Notes...)
	if c.ActualCost != nil {
		ac := *c.ActualCost
		out.ActualCost = &ac
	}
	if c.ActualCompletionDate != nil {
		d := *c.ActualCompletionDate
		out.ActualCompletionDate = &d
	}
	return out
}

package request

import (
	"strings"
	"time"
)

type CostEstimateRequest struct {
	LaborCost       float64 `json:"labor_cost"`
	MaterialsCost   float64 `json:"materials_cost"`
	AdditionalCosts float64 `json:"additional_costs"`
}

// CreateJobCardRequest is the intake payload posted by the front office.
type CreateJobCardRequest struct {
	Title                  string              `json:"title" binding:"required"`
	Description            string              `json:"description"`
	Priority               string              `json:"priority"`
	CustomerID             string              `json:"customer_id" binding:"required"`
	CustomerName           string              `json:"customer_name"`
	AssignedTechnicianID   string              `json:"assigned_technician_id" binding:"required"`
	AssignedTechnicianName string              `json:"assigned_technician_name"`
	Tasks                  []string            `json:"tasks"`
	EstimatedCost          CostEstimateRequest `json:"estimated_cost"`
	ScheduledStartDate     time.Time           `json:"scheduled_start_date"`
	ExpectedCompletionDate time.Time           `json:"expected_completion_date"`
}

// ResolvePriority normalizes the optional priority field; an empty result
// means the caller left the choice to the service.
func (r CreateJobCardRequest) ResolvePriority() string {
	return strings.ToUpper(strings.TrimSpace(r.Priority))
}

type CancelJobCardRequest struct {
	Reason string `json:"reason"`
}

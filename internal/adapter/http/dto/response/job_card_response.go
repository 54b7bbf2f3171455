package response

import (
	"time"

	"jobcard_service/internal/domain/costing"
	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase"
)

type JobCardResponse struct {
	ID        string `json:"id"`
	JobNumber string `json:"job_number"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`

	CustomerID             string `json:"customer_id"`
	CustomerName           string `json:"customer_name,omitempty"`
	AssignedTechnicianID   string `json:"assigned_technician_id"`
	AssignedTechnicianName string `json:"assigned_technician_name,omitempty"`

	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tasks       []string `json:"tasks"`

	LaborEntries  []entities.LaborEntry    `json:"labor_entries"`
	MaterialsUsed []entities.MaterialEntry `json:"materials_used"`
	Approvals     []entities.Approval      `json:"approvals"`
	Notes         []entities.Note          `json:"notes"`

	EstimatedCost entities.CostEstimate `json:"estimated_cost"`
	ActualCost    *entities.CostActual  `json:"actual_cost,omitempty"`

	InvoiceID string `json:"invoice_id,omitempty"`

	CreatedAt              time.Time  `json:"created_at"`
	ScheduledStartDate     time.Time  `json:"scheduled_start_date"`
	ExpectedCompletionDate time.Time  `json:"expected_completion_date"`
	ActualCompletionDate   *time.Time `json:"actual_completion_date,omitempty"`
	Overdue                bool       `json:"overdue"`
	LastUpdatedBy          string     `json:"last_updated_by,omitempty"`
	LastUpdatedAt          time.Time  `json:"last_updated_at"`
}

func FromJobCard(c entities.JobCard) JobCardResponse {
	return JobCardResponse{
		ID:                     c.ID,
		JobNumber:              c.JobNumber,
		Status:                 string(c.Status),
		Priority:               string(c.Priority),
		CustomerID:             c.CustomerID,
		CustomerName:           c.CustomerName,
		AssignedTechnicianID:   c.AssignedTechnicianID,
		AssignedTechnicianName: c.AssignedTechnicianName,
		Title:                  c.Title,
		Description:            c.Description,
		Tasks:                  c.Tasks,
		LaborEntries:           c.LaborEntries,
		MaterialsUsed:          c.MaterialsUsed,
		Approvals:              c.Approvals,
		Notes:                  c.Notes,
		EstimatedCost:          c.EstimatedCost,
		ActualCost:             c.ActualCost,
		InvoiceID:              c.InvoiceID,
		CreatedAt:              c.CreatedAt,
		ScheduledStartDate:     c.ScheduledStartDate,
		ExpectedCompletionDate: c.ExpectedCompletionDate,
		ActualCompletionDate:   c.ActualCompletionDate,
		Overdue:                c.Overdue(time.Now().UTC()),
		LastUpdatedBy:          c.LastUpdatedBy,
		LastUpdatedAt:          c.LastUpdatedAt,
	}
}

func FromJobCards(cards []entities.JobCard) []JobCardResponse {
	out := make([]JobCardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, FromJobCard(c))
	}
	return out
}

type CostSummaryResponse struct {
	TotalLaborHours     float64 `json:"total_labor_hours"`
	ActualLaborCost     float64 `json:"actual_labor_cost"`
	ActualMaterialsCost float64 `json:"actual_materials_cost"`
	AdditionalCosts     float64 `json:"additional_costs"`
	EstimatedTotal      float64 `json:"estimated_total"`
	ActualTotal         float64 `json:"actual_total"`
	Variance            float64 `json:"variance"`
	VariancePercentage  float64 `json:"variance_percentage"`
}

func FromCostSummary(s costing.Summary) CostSummaryResponse {
	return CostSummaryResponse{
		TotalLaborHours:     s.TotalLaborHours,
		ActualLaborCost:     s.ActualLaborCost,
		ActualMaterialsCost: s.ActualMaterialsCost,
		AdditionalCosts:     s.AdditionalCosts,
		EstimatedTotal:      s.EstimatedTotal,
		ActualTotal:         s.ActualTotal,
		Variance:            s.Variance,
		VariancePercentage:  s.VariancePercentage,
	}
}

type ReviewSummaryResponse struct {
	Card            JobCardResponse     `json:"card"`
	Costs           CostSummaryResponse `json:"costs"`
	PendingApproval *entities.Approval  `json:"pending_approval,omitempty"`
}

func FromReviewSummary(s usecase.ReviewSummary) ReviewSummaryResponse {
	return ReviewSummaryResponse{
		Card:            FromJobCard(s.Card),
		Costs:           FromCostSummary(s.Costs),
		PendingApproval: s.PendingApproval,
	}
}

type TimerResponse struct {
	Open         bool      `json:"open"`
	Description  string    `json:"description,omitempty"`
	HourlyRate   float64   `json:"hourly_rate,omitempty"`
	StartedAt    time.Time `json:"started_at,omitempty"`
	ElapsedHours float64   `json:"elapsed_hours,omitempty"`
}

func FromTimerSnapshot(s usecase.TimerSnapshot, open bool) TimerResponse {
	if !open {
		return TimerResponse{}
	}
	return TimerResponse{
		Open:         true,
		Description:  s.Description,
		HourlyRate:   s.HourlyRate,
		StartedAt:    s.StartedAt,
		ElapsedHours: s.ElapsedHours,
	}
}

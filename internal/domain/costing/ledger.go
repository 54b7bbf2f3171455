package costing

import (
	"math"

	"jobcard_service/internal/domain/entities"
)

// TaxRate applies to the adjusted subtotal at approval time. It is local to
// the job card engine and distinct from the VAT used in the sales flows.
const TaxRate = 0.08

// Pure functions over a job card snapshot: idempotent, side-effect free,
// always recomputed from the ledgers. The only cached cost value on a card is
// the one-time ActualCost snapshot written at approval.

// RoundHours rounds a duration expressed in hours to two decimal places.
func RoundHours(h float64) float64 {
	return round2(h)
}

// TotalLaborHours sums hours over all labor entries. A live open timer is a
// presentation concern of the calling session and not included here.
func TotalLaborHours(card entities.JobCard) float64 {
	total := 0.0
	for _, e := range card.LaborEntries {
		total += e.Hours
	}
	return total
}

func ActualLaborCost(card entities.JobCard) float64 {
	total := 0.0
	for _, e := range card.LaborEntries {
		total += e.Cost()
	}
	return total
}

func ActualMaterialsCost(card entities.JobCard) float64 {
	total := 0.0
	for _, m := range card.MaterialsUsed {
		total += m.TotalPrice
	}
	return total
}

func EstimatedTotal(card entities.JobCard) float64 {
	return card.EstimatedCost.Total()
}

// ActualTotal takes additional costs from the estimate unless overridden at
// approval time.
func ActualTotal(card entities.JobCard) float64 {
	return ActualLaborCost(card) + ActualMaterialsCost(card) + card.EstimatedCost.AdditionalCosts
}

// Variance is the signed difference between actual and estimated total.
func Variance(card entities.JobCard) float64 {
	return ActualTotal(card) - EstimatedTotal(card)
}

// VariancePercentage is zero when the estimated total is zero.
func VariancePercentage(card entities.JobCard) float64 {
	est := EstimatedTotal(card)
	if est == 0 {
		return 0
	}
	return Variance(card) / est * 100
}

// Summary aggregates every derived cost figure for read endpoints.
type Summary struct {
	TotalLaborHours     float64 `json:"total_labor_hours"`
	ActualLaborCost     float64 `json:"actual_labor_cost"`
	ActualMaterialsCost float64 `json:"actual_materials_cost"`
	AdditionalCosts     float64 `json:"additional_costs"`
	EstimatedTotal      float64 `json:"estimated_total"`
	ActualTotal         float64 `json:"actual_total"`
	Variance            float64 `json:"variance"`
	VariancePercentage  float64 `json:"variance_percentage"`
}

func Summarize(card entities.JobCard) Summary {
	return Summary{
		TotalLaborHours:     TotalLaborHours(card),
		ActualLaborCost:     ActualLaborCost(card),
		ActualMaterialsCost: ActualMaterialsCost(card),
		AdditionalCosts:     card.EstimatedCost.AdditionalCosts,
		EstimatedTotal:      EstimatedTotal(card),
		ActualTotal:         ActualTotal(card),
		Variance:            Variance(card),
		VariancePercentage:  VariancePercentage(card),
	}
}

// Snapshot builds the one-time actual cost record written at approval.
// ProfitMargin is explicitly left at zero for a separate costing module.
func Snapshot(laborCost, materialsCost, additionalCosts float64) entities.CostActual {
	subtotal := laborCost + materialsCost + additionalCosts
	tax := round2(subtotal * TaxRate)
	return entities.CostActual{
		LaborCost:       laborCost,
		MaterialsCost:   materialsCost,
		AdditionalCosts: additionalCosts,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           subtotal + tax,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

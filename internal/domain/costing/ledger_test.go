package costing

import (
	"math"
	"testing"

	"jobcard_service/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sampleCard() entities.JobCard {
	return entities.JobCard{
		LaborEntries: []entities.LaborEntry{
			{Hours: 2.5, HourlyRate: 50},
		},
		MaterialsUsed: []entities.MaterialEntry{
			{Quantity: 2, UnitPrice: 20, TotalPrice: 40},
		},
		EstimatedCost: entities.CostEstimate{LaborCost: 100, MaterialsCost: 30, AdditionalCosts: 15},
	}
}

func TestLedger_Aggregates(t *testing.T) {
	card := sampleCard()

	if got := TotalLaborHours(card); !almostEqual(got, 2.5) {
		t.Fatalf("total labor hours: %v", got)
	}
	if got := ActualLaborCost(card); !almostEqual(got, 125) {
		t.Fatalf("actual labor cost: %v", got)
	}
	if got := ActualMaterialsCost(card); !almostEqual(got, 40) {
		t.Fatalf("actual materials cost: %v", got)
	}
	if got := EstimatedTotal(card); !almostEqual(got, 145) {
		t.Fatalf("estimated total: %v", got)
	}
	// actual total carries additional costs from the estimate
	if got := ActualTotal(card); !almostEqual(got, 180) {
		t.Fatalf("actual total: %v", got)
	}
	if got := Variance(card); !almostEqual(got, 35) {
		t.Fatalf("variance: %v", got)
	}
}

func TestLedger_VariancePercentageZeroEstimate(t *testing.T) {
	card := sampleCard()
	card.EstimatedCost = entities.CostEstimate{}

	if got := VariancePercentage(card); got != 0 {
		t.Fatalf("expected 0 for zero estimate, got %v", got)
	}
}

func TestLedger_MonotonicHours(t *testing.T) {
	card := entities.JobCard{}
	last := 0.0
	for i := 0; i < 5; i++ {
		card.LaborEntries = append(card.LaborEntries, entities.LaborEntry{Hours: 0.25})
		got := TotalLaborHours(card)
		if got < last {
			t.Fatalf("total labor hours decreased: %v -> %v", last, got)
		}
		last = got
	}
}

func TestRoundHours(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1.005, 1.0}, // float64 1.005 sits just below the midpoint
		{2.499999, 2.5},
		{0.123, 0.12},
		{0.126, 0.13},
	}
	for _, tc := range cases {
		if got := RoundHours(tc.in); !almostEqual(got, tc.want) {
			t.Fatalf("RoundHours(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSnapshot_TaxAndTotal(t *testing.T) {
	ac := Snapshot(125, 40, 15)
	if !almostEqual(ac.Subtotal, 180) {
		t.Fatalf("subtotal: %v", ac.Subtotal)
	}
	if !almostEqual(ac.Tax, 14.4) {
		t.Fatalf("tax: %v", ac.Tax)
	}
	if !almostEqual(ac.Total, 194.4) {
		t.Fatalf("total: %v", ac.Total)
	}
	if ac.ProfitMargin != 0 {
		t.Fatalf("profit margin must stay zero, got %v", ac.ProfitMargin)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleCard())
	if !almostEqual(s.ActualTotal, 180) || !almostEqual(s.Variance, 35) {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if !almostEqual(s.VariancePercentage, 35.0/145.0*100) {
		t.Fatalf("variance percentage: %v", s.VariancePercentage)
	}
}

package entities

import (
	"testing"
	"time"
)

func TestJobCard_Clone(t *testing.T) {
	end := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)
	actual := CostActual{Subtotal: 180, Tax: 14.4, Total: 194.4}
	card := JobCard{
		ID:           "card-1",
		Tasks:        []string{"inspect"},
		LaborEntries: []LaborEntry{{ID: "l-1", Hours: 2.5, EndTime: &end}},
		Approvals:    []Approval{{ID: "a-1", Status: ApprovalStatusPending}},
		Notes:        []Note{{Text: "first"}},
		ActualCost:   &actual,
	}

	clone := card.Clone()
	clone.Tasks[0] = "changed"
	clone.LaborEntries[0].Hours = 99
	clone.Approvals[0].Status = ApprovalStatusApproved
	clone.Notes = append(clone.Notes, Note{Text: "second"})
	clone.ActualCost.Total = 0

	if card.Tasks[0] != "inspect" || card.LaborEntries[0].Hours != 2.5 {
		t.Fatalf("clone shares ledger backing arrays: %+v", card)
	}
	if card.Approvals[0].Status != ApprovalStatusPending {
		t.Fatalf("clone shares approvals: %+v", card.Approvals)
	}
	if len(card.Notes) != 1 {
		t.Fatalf("clone shares notes: %+v", card.Notes)
	}
	if card.ActualCost.Total != 194.4 {
		t.Fatalf("clone shares cost snapshot: %+v", card.ActualCost)
	}
}

func TestJobCard_Touch(t *testing.T) {
	later := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	earlier := later.Add(-time.Hour)

	var card JobCard
	card.Touch("user-1", later)
	if !card.LastUpdatedAt.Equal(later) || card.LastUpdatedBy != "user-1" {
		t.Fatalf("touch not recorded: %+v", card)
	}

	// A stale clock never rolls LastUpdatedAt back.
	card.Touch("user-2", earlier)
	if !card.LastUpdatedAt.Equal(later) {
		t.Fatalf("LastUpdatedAt went backwards: %v", card.LastUpdatedAt)
	}
	if card.LastUpdatedBy != "user-2" {
		t.Fatalf("author must still update: %s", card.LastUpdatedBy)
	}
}

func TestJobCard_PendingApproval(t *testing.T) {
	card := JobCard{Approvals: []Approval{
		{ID: "a-1", Status: ApprovalStatusRejected},
		{ID: "a-2", Status: ApprovalStatusPending},
	}}

	pending := card.PendingApproval()
	if pending == nil || pending.ID != "a-2" {
		t.Fatalf("expected a-2 pending, got %+v", pending)
	}

	// The pointer aliases the ledger entry so deciding through it sticks.
	pending.Status = ApprovalStatusApproved
	if card.Approvals[1].Status != ApprovalStatusApproved {
		t.Fatalf("decision did not reach the ledger: %+v", card.Approvals)
	}
	if card.PendingApproval() != nil {
		t.Fatalf("no approval should remain pending")
	}
}

func TestJobCard_HasOpenLaborEntry(t *testing.T) {
	end := time.Now().UTC()
	card := JobCard{LaborEntries: []LaborEntry{{ID: "l-1", EndTime: &end}}}
	if card.HasOpenLaborEntry() {
		t.Fatalf("closed entries only, expected false")
	}
	card.LaborEntries = append(card.LaborEntries, LaborEntry{ID: "l-2"})
	if !card.HasOpenLaborEntry() {
		t.Fatalf("expected open entry to be detected")
	}
}

func TestJobCard_Overdue(t *testing.T) {
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := due.Add(48 * time.Hour)

	card := JobCard{Status: JobCardStatusInProgress, ExpectedCompletionDate: due}
	if !card.Overdue(now) {
		t.Fatalf("expected overdue")
	}

	card.Status = JobCardStatusCompleted
	if card.Overdue(now) {
		t.Fatalf("terminal cards are never overdue")
	}

	card = JobCard{Status: JobCardStatusInProgress}
	if card.Overdue(now) {
		t.Fatalf("no due date means never overdue")
	}
}

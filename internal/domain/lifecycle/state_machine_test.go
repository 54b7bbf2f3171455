package lifecycle

import (
	"errors"
	"testing"
	"time"

	"jobcard_service/internal/domain/entities"
)

func TestNext_LegalTransitions(t *testing.T) {
	cases := []struct {
		from    entities.JobCardStatus
		trigger Trigger
		want    entities.JobCardStatus
	}{
		{entities.JobCardStatusPending, TriggerStartWork, entities.JobCardStatusInProgress},
		{entities.JobCardStatusInProgress, TriggerHold, entities.JobCardStatusOnHold},
		{entities.JobCardStatusOnHold, TriggerResume, entities.JobCardStatusInProgress},
		{entities.JobCardStatusInProgress, TriggerAwaitParts, entities.JobCardStatusWaitingParts},
		{entities.JobCardStatusWaitingParts, TriggerPartsArrived, entities.JobCardStatusInProgress},
		{entities.JobCardStatusInProgress, TriggerRequestApproval, entities.JobCardStatusWaitingApproval},
		{entities.JobCardStatusWaitingApproval, TriggerApprove, entities.JobCardStatusCompleted},
		{entities.JobCardStatusWaitingApproval, TriggerReject, entities.JobCardStatusInProgress},
		{entities.JobCardStatusPending, TriggerCancel, entities.JobCardStatusCancelled},
		{entities.JobCardStatusWaitingApproval, TriggerCancel, entities.JobCardStatusCancelled},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_"+string(tc.trigger), func(t *testing.T) {
			got, err := Next(tc.from, tc.trigger)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestNext_IllegalTransitions(t *testing.T) {
	cases := []struct {
		from    entities.JobCardStatus
		trigger Trigger
	}{
		{entities.JobCardStatusPending, TriggerHold},
		{entities.JobCardStatusPending, TriggerRequestApproval},
		{entities.JobCardStatusOnHold, TriggerRequestApproval},
		{entities.JobCardStatusWaitingParts, TriggerHold},
		{entities.JobCardStatusWaitingApproval, TriggerStartWork},
		{entities.JobCardStatusCompleted, TriggerStartWork},
		{entities.JobCardStatusCompleted, TriggerCancel},
		{entities.JobCardStatusCancelled, TriggerCancel},
		{entities.JobCardStatusCancelled, TriggerResume},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_"+string(tc.trigger), func(t *testing.T) {
			_, err := Next(tc.from, tc.trigger)
			var ite *InvalidTransitionError
			if !errors.As(err, &ite) {
				t.Fatalf("expected InvalidTransitionError, got %v", err)
			}
			if ite.From != tc.from || ite.Trigger != tc.trigger {
				t.Fatalf("error payload mismatch: %+v", ite)
			}
		})
	}
}

func TestApply_AppendsNoteAndTouches(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	card := entities.JobCard{
		ID:                   "card-1",
		Status:               entities.JobCardStatusPending,
		AssignedTechnicianID: "tech-1",
		LastUpdatedAt:        now.Add(-time.Hour),
	}
	actor := entities.Identity{ID: "user-1", Role: entities.RoleTechnician, TechnicianID: "tech-1"}

	if err := Apply(&card, TriggerStartWork, actor, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Status != entities.JobCardStatusInProgress {
		t.Fatalf("expected IN_PROGRESS, got %s", card.Status)
	}
	if len(card.Notes) != 1 {
		t.Fatalf("expected exactly one note, got %d", len(card.Notes))
	}
	if card.LastUpdatedBy != "user-1" || !card.LastUpdatedAt.Equal(now) {
		t.Fatalf("last-updated fields not written: %s %s", card.LastUpdatedBy, card.LastUpdatedAt)
	}
}

func TestApply_ErrorLeavesCardUntouched(t *testing.T) {
	now := time.Now().UTC()
	card := entities.JobCard{ID: "card-1", Status: entities.JobCardStatusPending, LastUpdatedBy: "creator", LastUpdatedAt: now}
	actor := entities.Identity{ID: "user-1"}

	err := Apply(&card, TriggerApprove, actor, now.Add(time.Minute))
	if err == nil {
		t.Fatalf("expected error")
	}
	if card.Status != entities.JobCardStatusPending || len(card.Notes) != 0 || card.LastUpdatedBy != "creator" {
		t.Fatalf("card mutated on failed transition: %+v", card)
	}
}

func TestApply_LastUpdatedAtMonotonic(t *testing.T) {
	now := time.Now().UTC()
	card := entities.JobCard{Status: entities.JobCardStatusPending, LastUpdatedAt: now.Add(time.Hour)}
	actor := entities.Identity{ID: "user-1"}

	if err := Apply(&card, TriggerStartWork, actor, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.LastUpdatedAt.Before(now.Add(time.Hour)) {
		t.Fatalf("LastUpdatedAt went backwards: %s", card.LastUpdatedAt)
	}
}

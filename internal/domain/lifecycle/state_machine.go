package lifecycle

import (
	"fmt"
	"time"

	"jobcard_service/internal/domain/entities"
)

// Trigger names the action that moves a job card between statuses.

type Trigger string

const (
	TriggerStartWork       Trigger = "start_work"
	TriggerHold            Trigger = "hold"
	TriggerResume          Trigger = "resume"
	TriggerAwaitParts      Trigger = "await_parts"
	TriggerPartsArrived    Trigger = "parts_arrived"
	TriggerRequestApproval Trigger = "request_approval"
	TriggerApprove         Trigger = "approve"
	TriggerReject          Trigger = "reject"
	TriggerCancel          Trigger = "cancel"
)

// InvalidTransitionError reports an attempted (from, trigger) pair not present
// in the transition table. The card is left unmodified.
type InvalidTransitionError struct {
	From    entities.JobCardStatus
	Trigger Trigger
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: trigger %q not allowed from status %s", e.Trigger, e.From)
}

// transitions is the single source of truth for status legality. Role guards
// live with the calling use case; this table only answers reachability.
var transitions = map[entities.JobCardStatus]map[Trigger]entities.JobCardStatus{
	entities.JobCardStatusPending: {
		TriggerStartWork: entities.JobCardStatusInProgress,
	},
	entities.JobCardStatusInProgress: {
		TriggerHold:            entities.JobCardStatusOnHold,
		TriggerAwaitParts:      entities.JobCardStatusWaitingParts,
		TriggerRequestApproval: entities.JobCardStatusWaitingApproval,
	},
	entities.JobCardStatusOnHold: {
		TriggerResume: entities.JobCardStatusInProgress,
	},
	entities.JobCardStatusWaitingParts: {
		TriggerPartsArrived: entities.JobCardStatusInProgress,
	},
	entities.JobCardStatusWaitingApproval: {
		TriggerApprove: entities.JobCardStatusCompleted,
		TriggerReject:  entities.JobCardStatusInProgress,
	},
}

// Next resolves the target status for a trigger fired from a given status.
// TriggerCancel is a pass-through accepted from any non-terminal status.
func Next(from entities.JobCardStatus, trigger Trigger) (entities.JobCardStatus, error) {
	if trigger == TriggerCancel {
		if from.Terminal() {
			return "", &InvalidTransitionError{From: from, Trigger: trigger}
		}
		return entities.JobCardStatusCancelled, nil
	}
	if to, ok := transitions[from][trigger]; ok {
		return to, nil
	}
	return "", &InvalidTransitionError{From: from, Trigger: trigger}
}

// Apply fires a trigger against the card: it writes the new status, appends
// exactly one audit note describing the transition and updates the
// last-updated fields. On error the card is untouched.
func Apply(card *entities.JobCard, trigger Trigger, actor entities.Identity, now time.Time) error {
	to, err := Next(card.Status, trigger)
	if err != nil {
		return err
	}
	from := card.Status
	card.Status = to
	card.AppendNote(now, actor.ID, fmt.Sprintf("status changed from %s to %s (%s)", from, to, trigger))
	card.Touch(actor.ID, now)
	return nil
}

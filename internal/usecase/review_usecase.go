package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobcard_service/internal/domain/costing"
	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/domain/lifecycle"
	"jobcard_service/internal/usecase/interfaces"
)

// FinalAdjustments lets the reviewer override the cost components that form
// the approval subtotal.
type FinalAdjustments struct {
	LaborCost       float64 `json:"labor_cost"`
	MaterialsCost   float64 `json:"materials_cost"`
	AdditionalCosts float64 `json:"additional_costs"`
}

// ReviewSummary is the office-manager read model: the card plus the cost
// ledger recomputed from its entries and the outstanding approval.
type ReviewSummary struct {
	Card            entities.JobCard   `json:"card"`
	Costs           costing.Summary    `json:"costs"`
	PendingApproval *entities.Approval `json:"pending_approval,omitempty"`
}

// IReviewUseCase is the supervisory surface: review aggregated costs and
// decide the pending completion approval.

type IReviewUseCase interface {
	Review(ctx context.Context, actor entities.Identity, cardID string) (ReviewSummary, error)
	Decide(ctx context.Context, actor entities.Identity, cardID string, approved bool, adjustments *FinalAdjustments, notes string) (entities.JobCard, error)
}

type ReviewUseCase struct {
	repo     interfaces.IJobCardRepository
	identity interfaces.IIdentityProvider
	gateway  interfaces.IInvoiceGateway
	events   interfaces.IEventPublisher
	locks    *cardLocks

	now func() time.Time
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IJobCardRepository, identity interfaces.IIdentityProvider, gateway interfaces.IInvoiceGateway, events interfaces.IEventPublisher) *ReviewUseCase {
	return &ReviewUseCase{
		repo:     repo,
		identity: identity,
		gateway:  gateway,
		events:   events,
		locks:    sharedCardLocks,
		now:      time.Now,
	}
}

func (u *ReviewUseCase) Review(ctx context.Context, actor entities.Identity, cardID string) (ReviewSummary, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return ReviewSummary{}, ErrInvalidJobCardID
	}
	if !u.identity.HasPermission(actor, "jobcards", "approve") {
		return ReviewSummary{}, ErrForbidden
	}

	card, err := u.repo.GetByID(ctx, cardID)
	if err != nil {
		return ReviewSummary{}, err
	}
	if card.ID == "" {
		return ReviewSummary{}, ErrJobCardNotFound
	}
	return ReviewSummary{
		Card:            card,
		Costs:           costing.Summarize(card),
		PendingApproval: card.PendingApproval(),
	}, nil
}

// Decide resolves the pending completion approval.
//
// Approval commits the COMPLETED transition and the one-time cost snapshot
// unconditionally, then performs the invoice handoff: only the InvoiceID write
// depends on the handoff succeeding. A handoff failure is recorded as a note
// and surfaced as a HandoffError for manual retry, never swallowed.
func (u *ReviewUseCase) Decide(ctx context.Context, actor entities.Identity, cardID string, approved bool, adjustments *FinalAdjustments, notes string) (entities.JobCard, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	if !u.identity.HasPermission(actor, "jobcards", "approve") {
		return entities.JobCard{}, ErrForbidden
	}
	unlock := u.locks.acquire(cardID)
	defer unlock()

	stored, err := u.repo.GetByID(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if stored.ID == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	card := stored.Clone()

	if card.Status != entities.JobCardStatusWaitingApproval {
		trigger := lifecycle.TriggerReject
		if approved {
			trigger = lifecycle.TriggerApprove
		}
		return entities.JobCard{}, &lifecycle.InvalidTransitionError{From: card.Status, Trigger: trigger}
	}
	pending := card.PendingApproval()
	if pending == nil {
		return entities.JobCard{}, ErrInvalidState
	}

	if !approved {
		return u.reject(ctx, actor, card, pending, notes)
	}
	return u.approve(ctx, actor, card, pending, adjustments, notes)
}

func (u *ReviewUseCase) reject(ctx context.Context, actor entities.Identity, card entities.JobCard, pending *entities.Approval, notes string) (entities.JobCard, error) {
	if strings.TrimSpace(notes) == "" {
		return entities.JobCard{}, newValidationError("rejection notes must not be empty")
	}

	now := u.now().UTC()
	pending.Decide(entities.ApprovalStatusRejected, actor.ID, notes, now)
	if err := lifecycle.Apply(&card, lifecycle.TriggerReject, actor, now); err != nil {
		return entities.JobCard{}, err
	}
	card.AppendNote(now, actor.ID, "completion rejected: "+notes)

	saved, err := u.repo.Save(ctx, card)
	if err != nil {
		return entities.JobCard{}, err
	}
	u.publishEvent(ctx, "jobcard.approval.rejected", saved)
	return saved, nil
}

func (u *ReviewUseCase) approve(ctx context.Context, actor entities.Identity, card entities.JobCard, pending *entities.Approval, adjustments *FinalAdjustments, notes string) (entities.JobCard, error) {
	if reasons := u.completionChecks(card); len(reasons) > 0 {
		return entities.JobCard{}, &ValidationError{Reasons: reasons}
	}

	laborCost := costing.ActualLaborCost(card)
	materialsCost := costing.ActualMaterialsCost(card)
	additionalCosts := card.EstimatedCost.AdditionalCosts
	if adjustments != nil {
		laborCost = adjustments.LaborCost
		materialsCost = adjustments.MaterialsCost
		additionalCosts = adjustments.AdditionalCosts
	}

	now := u.now().UTC()
	actual := costing.Snapshot(laborCost, materialsCost, additionalCosts)
	card.ActualCost = &actual
	pending.Decide(entities.ApprovalStatusApproved, actor.ID, notes, now)
	if err := lifecycle.Apply(&card, lifecycle.TriggerApprove, actor, now); err != nil {
		return entities.JobCard{}, err
	}
	card.ActualCompletionDate = &now

	// Completion commits before the external call: a handoff failure must not
	// leave the aggregate half-updated.
	saved, err := u.repo.Save(ctx, card)
	if err != nil {
		return entities.JobCard{}, err
	}
	u.publishEvent(ctx, "jobcard.completed", saved)

	// An unconfigured gateway is a handoff failure like any other: completion
	// stands and the miss is recorded on the card.
	var ref entities.InvoiceRef
	if u.gateway == nil {
		err = ErrInvoiceGatewayUnavailable
	} else {
		ref, err = u.gateway.GenerateInvoice(ctx, saved)
	}
	if err != nil {
		log.Printf("[review][usecase] invoice handoff failed job_card_id=%s err=%v", saved.ID, err)
		saved.AppendNote(now, actor.ID, fmt.Sprintf("invoice generation failed: %v", err))
		saved.Touch(actor.ID, now)
		if _, saveErr := u.repo.Save(ctx, saved); saveErr != nil {
			log.Printf("[review][usecase] recording handoff failure note failed job_card_id=%s err=%v", saved.ID, saveErr)
		}
		return saved, &HandoffError{JobCardID: saved.ID, Err: err}
	}

	saved.InvoiceID = ref.ID
	saved.AppendNote(now, actor.ID, fmt.Sprintf("invoice %s generated (id %s)", ref.InvoiceNumber, ref.ID))
	saved.Touch(actor.ID, now)
	saved, err = u.repo.Save(ctx, saved)
	if err != nil {
		return entities.JobCard{}, err
	}
	u.publishEvent(ctx, "jobcard.invoice.generated", saved)
	return saved, nil
}

// completionChecks is the validation gate in front of COMPLETED. The engine
// enforces a minimal bar and merges the invoicing collaborator's reasons.
func (u *ReviewUseCase) completionChecks(card entities.JobCard) []string {
	reasons := []string{}
	if len(card.LaborEntries) == 0 {
		reasons = append(reasons, "at least one labor entry is required")
	}
	if card.AssignedTechnicianID == "" {
		reasons = append(reasons, "assigned technician is not set")
	}
	if card.HasOpenLaborEntry() {
		reasons = append(reasons, "an open labor timer exists")
	}
	if len(card.Tasks) == 0 && len(card.Notes) == 0 {
		reasons = append(reasons, "task list is empty and no justification note exists")
	}
	if u.gateway != nil {
		reasons = append(reasons, u.gateway.ValidateForInvoicing(card)...)
	}
	return reasons
}

func (u *ReviewUseCase) publishEvent(ctx context.Context, routingKey string, card entities.JobCard) {
	if u.events == nil {
		return
	}
	payload := map[string]any{
		"event":      routingKey,
		"jobCardId":  card.ID,
		"jobNumber":  card.JobNumber,
		"status":     card.Status,
		"invoiceId":  card.InvoiceID,
		"occurredAt": u.now().UTC().Format(time.RFC3339),
	}
	if err := u.events.Publish(ctx, routingKey, payload); err != nil {
		log.Printf("[review][usecase] publish %s failed job_card_id=%s err=%v", routingKey, card.ID, err)
	}
}

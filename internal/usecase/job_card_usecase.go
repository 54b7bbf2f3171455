package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"jobcard_service/internal/domain/costing"
	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/domain/lifecycle"
	"jobcard_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CreateJobCardInput is the intake command. Cards always start in PENDING;
// the engine itself never creates cards, this is the administrative door that
// feeds it.
type CreateJobCardInput struct {
	Title                  string
	Description            string
	Priority               entities.JobCardPriority
	CustomerID             string
	CustomerName           string
	AssignedTechnicianID   string
	AssignedTechnicianName string
	Tasks                  []string
	EstimatedCost          entities.CostEstimate
	ScheduledStartDate     time.Time
	ExpectedCompletionDate time.Time
}

// IJobCardUseCase covers intake, reads and the external cancellation
// pass-through.

type IJobCardUseCase interface {
	Create(ctx context.Context, actor entities.Identity, in CreateJobCardInput) (entities.JobCard, error)
	GetByID(ctx context.Context, actor entities.Identity, id string) (entities.JobCard, error)
	ListByTechnician(ctx context.Context, actor entities.Identity, technicianID string) ([]entities.JobCard, error)
	CostSummary(ctx context.Context, actor entities.Identity, id string) (costing.Summary, error)
	Cancel(ctx context.Context, actor entities.Identity, id, reason string) (entities.JobCard, error)
}

type JobCardUseCase struct {
	repo     interfaces.IJobCardRepository
	identity interfaces.IIdentityProvider
	events   interfaces.IEventPublisher
	locks    *cardLocks

	now func() time.Time
}

var _ IJobCardUseCase = (*JobCardUseCase)(nil)

func NewJobCardUseCase(repo interfaces.IJobCardRepository, identity interfaces.IIdentityProvider, events interfaces.IEventPublisher) *JobCardUseCase {
	return &JobCardUseCase{
		repo:     repo,
		identity: identity,
		events:   events,
		locks:    sharedCardLocks,
		now:      time.Now,
	}
}

func (u *JobCardUseCase) Create(ctx context.Context, actor entities.Identity, in CreateJobCardInput) (entities.JobCard, error) {
	if !u.identity.HasPermission(actor, "jobcards", "create") {
		return entities.JobCard{}, ErrForbidden
	}
	reasons := []string{}
	if strings.TrimSpace(in.Title) == "" {
		reasons = append(reasons, "title must not be empty")
	}
	if strings.TrimSpace(in.CustomerID) == "" {
		reasons = append(reasons, "customer is required")
	}
	if strings.TrimSpace(in.AssignedTechnicianID) == "" {
		reasons = append(reasons, "assigned technician is required")
	}
	if in.Priority == "" {
		in.Priority = entities.JobCardPriorityNormal
	}
	if len(reasons) > 0 {
		return entities.JobCard{}, newValidationError(reasons...)
	}

	now := u.now().UTC()
	id := uuid.NewString()
	card := entities.JobCard{
		ID:                     id,
		JobNumber:              jobNumber(id, now),
		Status:                 entities.JobCardStatusPending,
		Priority:               in.Priority,
		CustomerID:             in.CustomerID,
		CustomerName:           in.CustomerName,
		AssignedTechnicianID:   in.AssignedTechnicianID,
		AssignedTechnicianName: in.AssignedTechnicianName,
		Title:                  in.Title,
		Description:            in.Description,
		Tasks:                  append([]string(nil), in.Tasks...),
		EstimatedCost:          in.EstimatedCost,
		CreatedAt:              now,
		ScheduledStartDate:     in.ScheduledStartDate,
		ExpectedCompletionDate: in.ExpectedCompletionDate,
		LastUpdatedBy:          actor.ID,
		LastUpdatedAt:          now,
	}
	created, err := u.repo.Create(ctx, card)
	if err != nil {
		return entities.JobCard{}, err
	}
	u.publishEvent(ctx, "jobcard.created", created)
	return created, nil
}

func (u *JobCardUseCase) GetByID(ctx context.Context, actor entities.Identity, id string) (entities.JobCard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	if !u.identity.HasPermission(actor, "jobcards", "read") {
		return entities.JobCard{}, ErrForbidden
	}
	card, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobCard{}, err
	}
	if card.ID == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	return card, nil
}

func (u *JobCardUseCase) ListByTechnician(ctx context.Context, actor entities.Identity, technicianID string) ([]entities.JobCard, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return nil, newValidationError("technician id must not be empty")
	}
	if !u.identity.HasPermission(actor, "jobcards", "read") {
		return nil, ErrForbidden
	}
	return u.repo.ListByTechnician(ctx, technicianID)
}

// CostSummary recomputes every derived cost figure from the ledgers; nothing
// is read from a cache.
func (u *JobCardUseCase) CostSummary(ctx context.Context, actor entities.Identity, id string) (costing.Summary, error) {
	card, err := u.GetByID(ctx, actor, id)
	if err != nil {
		return costing.Summary{}, err
	}
	return costing.Summarize(card), nil
}

// Cancel is the pass-through for externally decided cancellation. The card
// becomes terminal; no further entries are accepted afterwards.
func (u *JobCardUseCase) Cancel(ctx context.Context, actor entities.Identity, id, reason string) (entities.JobCard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	if !u.identity.HasPermission(actor, "jobcards", "cancel") {
		return entities.JobCard{}, ErrForbidden
	}
	unlock := u.locks.acquire(id)
	defer unlock()

	stored, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobCard{}, err
	}
	if stored.ID == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	card := stored.Clone()

	now := u.now().UTC()
	if err := lifecycle.Apply(&card, lifecycle.TriggerCancel, actor, now); err != nil {
		return entities.JobCard{}, err
	}
	if strings.TrimSpace(reason) != "" {
		card.AppendNote(now, actor.ID, "cancelled: "+reason)
	}
	saved, err := u.repo.Save(ctx, card)
	if err != nil {
		return entities.JobCard{}, err
	}
	u.publishEvent(ctx, "jobcard.cancelled", saved)
	return saved, nil
}

// jobNumber derives the human-readable, immutable job number assigned at
// creation, e.g. JC-20260301-1A2B3C.
func jobNumber(id string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return "JC-" + now.Format("20060102") + "-" + suffix
}

func (u *JobCardUseCase) publishEvent(ctx context.Context, routingKey string, card entities.JobCard) {
	if u.events == nil {
		return
	}
	payload := map[string]any{
		"event":      routingKey,
		"jobCardId":  card.ID,
		"jobNumber":  card.JobNumber,
		"status":     card.Status,
		"occurredAt": u.now().UTC().Format(time.RFC3339),
	}
	if err := u.events.Publish(ctx, routingKey, payload); err != nil {
		log.Printf("[jobcard][usecase] publish %s failed job_card_id=%s err=%v", routingKey, card.ID, err)
	}
}

package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"jobcard_service/internal/domain/costing"
	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/domain/lifecycle"
	"jobcard_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MaterialInput is the command payload for adding a material entry.
type MaterialInput struct {
	Name       string
	PartNumber string
	Quantity   int
	UnitPrice  float64
	Category   entities.MaterialCategory
}

// TimerSnapshot exposes the live open timer for presentation. The open-timer
// contribution to total hours is the caller's concern, never persisted state.
type TimerSnapshot struct {
	Description  string    `json:"description"`
	HourlyRate   float64   `json:"hourly_rate"`
	StartedAt    time.Time `json:"started_at"`
	ElapsedHours float64   `json:"elapsed_hours"`
}

// IWorkSessionUseCase mediates a single technician's interaction with one job
// card: status moves, timers, labor and material entries, tasks and notes.

type IWorkSessionUseCase interface {
	StartWork(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error)
	StartTimer(ctx context.Context, actor entities.Identity, cardID, description string, hourlyRate float64) (entities.JobCard, error)
	StopTimer(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error)
	LogTime(ctx context.Context, actor entities.Identity, cardID string, hours, hourlyRate float64, description string) (entities.JobCard, error)
	AddMaterial(ctx context.Context, actor entities.Identity, cardID string, in MaterialInput) (entities.JobCard, error)
	RemoveMaterial(ctx context.Context, actor entities.Identity, cardID, materialID string) (entities.JobCard, error)
	AddTask(ctx context.Context, actor entities.Identity, cardID, description string) (entities.JobCard, error)
	UpdateTaskProgress(ctx context.Context, actor entities.Identity, cardID string, index int, completed bool) (entities.JobCard, error)
	AppendNote(ctx context.Context, actor entities.Identity, cardID, text string) (entities.JobCard, error)
	Hold(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error)
	Resume(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error)
	AwaitParts(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error)
	PartsArrived(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error)
	RequestApproval(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error)
	OpenTimer(actor entities.Identity, cardID string) (TimerSnapshot, bool)
}

type sessionKey struct {
	cardID       string
	technicianID string
}

// openTimer freezes the hourly rate at start so the implicit close during
// RequestApproval needs no extra input.
type openTimer struct {
	startedAt   time.Time
	description string
	hourlyRate  float64
}

type sessionState struct {
	timer    *openTimer
	taskDone map[int]bool
}

type WorkSessionUseCase struct {
	repo     interfaces.IJobCardRepository
	identity interfaces.IIdentityProvider
	events   interfaces.IEventPublisher
	locks    *cardLocks

	sessMu   sync.Mutex
	sessions map[sessionKey]*sessionState

	now func() time.Time
}

var _ IWorkSessionUseCase = (*WorkSessionUseCase)(nil)

func NewWorkSessionUseCase(repo interfaces.IJobCardRepository, identity interfaces.IIdentityProvider, events interfaces.IEventPublisher) *WorkSessionUseCase {
	return &WorkSessionUseCase{
		repo:     repo,
		identity: identity,
		events:   events,
		locks:    sharedCardLocks,
		sessions: make(map[sessionKey]*sessionState),
		now:      time.Now,
	}
}

func (u *WorkSessionUseCase) StartWork(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	unlock := u.locks.acquire(cardID)
	defer unlock()

	card, err := u.load(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if !actor.IsAssignedTo(card) {
		return entities.JobCard{}, ErrForbidden
	}
	if err := lifecycle.Apply(&card, lifecycle.TriggerStartWork, actor, u.now()); err != nil {
		return entities.JobCard{}, err
	}
	saved, err := u.repo.Save(ctx, card)
	if err != nil {
		return entities.JobCard{}, err
	}
	u.publishEvent(ctx, "jobcard.started", saved)
	return saved, nil
}

// StartTimer opens the session's implicit time window. It is a no-op when a
// timer is already open for this session; the card itself is untouched.
func (u *WorkSessionUseCase) StartTimer(ctx context.Context, actor entities.Identity, cardID, description string, hourlyRate float64) (entities.JobCard, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	if hourlyRate < 0 {
		return entities.JobCard{}, newValidationError("hourly rate must not be negative")
	}
	unlock := u.locks.acquire(cardID)
	defer unlock()

	card, err := u.load(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if !actor.IsAssignedTo(card) {
		return entities.JobCard{}, ErrForbidden
	}
	if card.Status != entities.JobCardStatusInProgress {
		return entities.JobCard{}, ErrInvalidState
	}

	sess := u.session(cardID, actor.TechnicianID)
	u.sessMu.Lock()
	if sess.timer == nil {
		sess.timer = &openTimer{startedAt: u.now().UTC(), description: description, hourlyRate: hourlyRate}
	}
	u.sessMu.Unlock()
	return card, nil
}

// StopTimer closes the open timer and appends a labor entry with the rate
// frozen at start. A missing timer is a deliberate idempotence guard: the call
// is a silent no-op, not an error.
func (u *WorkSessionUseCase) StopTimer(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	unlock := u.locks.acquire(cardID)
	defer unlock()

	card, err := u.load(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if !actor.IsAssignedTo(card) {
		return entities.JobCard{}, ErrForbidden
	}

	sess := u.session(cardID, actor.TechnicianID)
	u.sessMu.Lock()
	timer := sess.timer
	u.sessMu.Unlock()
	if timer == nil {
		return card, nil
	}
	// Terminal cards accept no further entries: a timer left open across a
	// cancellation is discarded, not billed.
	if card.Status.Terminal() {
		u.sessMu.Lock()
		sess.timer = nil
		u.sessMu.Unlock()
		log.Printf("[worksession][usecase] open timer discarded job_card_id=%s status=%s", cardID, card.Status)
		return card, nil
	}

	now := u.now().UTC()
	u.appendTimerEntry(&card, actor, timer, now)
	saved, err := u.repo.Save(ctx, card)
	if err != nil {
		return entities.JobCard{}, err
	}

	u.sessMu.Lock()
	sess.timer = nil
	u.sessMu.Unlock()

	u.publishEvent(ctx, "jobcard.labor.logged", saved)
	return saved, nil
}

func (u *WorkSessionUseCase) LogTime(ctx context.Context, actor entities.Identity, cardID string, hours, hourlyRate float64, description string) (entities.JobCard, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	reasons := []string{}
	if hours <= 0 {
		reasons = append(reasons, "hours must be greater than zero")
	}
	if strings.TrimSpace(description) == "" {
		reasons = append(reasons, "description must not be empty")
	}
	if hourlyRate < 0 {
		reasons = append(reasons, "hourly rate must not be negative")
	}
	if len(reasons) > 0 {
		return entities.JobCard{}, newValidationError(reasons...)
	}
	unlock := u.locks.acquire(cardID)
	defer unlock()

	card, err := u.load(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if !actor.IsAssignedTo(card) {
		return entities.JobCard{}, ErrForbidden
	}
	if card.Status != entities.JobCardStatusInProgress {
		return entities.JobCard{}, ErrInvalidState
	}

	now := u.now().UTC()
	card.LaborEntries = append(card.LaborEntries, entities.LaborEntry{
		ID:             uuid.NewString(),
		TechnicianID:   actor.TechnicianID,
		TechnicianName: actor.Name,
		StartTime:      now,
		EndTime:        &now,
		Hours:          costing.RoundHours(hours),
		HourlyRate:     hourlyRate,
		Description:    description,
	})
	card.Touch(actor.ID, now)
	saved, err := u.repo.Save(ctx, card)
	if err != nil {
		return entities.JobCard{}, err
	}
	u.publishEvent(ctx, "jobcard.labor.logged", saved)
	return saved, nil
}

func (u *WorkSessionUseCase) AddMaterial(ctx context.Context, actor entities.Identity, cardID string, in MaterialInput) (entities.JobCard, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	reasons := []string{}
	if strings.TrimSpace(in.Name) == "" {
		reasons = append(reasons, "material name must not be empty")
	}
	if in.Quantity <= 0 {
		reasons = append(reasons, "quantity must be greater than zero")
	}
	if in.UnitPrice < 0 {
		reasons = append(reasons, "unit price must not be negative")
	}
	if in.Category == "" {
		in.Category = entities.MaterialCategoryOther
	} else if !in.Category.Valid() {
		reasons = append(reasons, "unknown material category")
	}
	if len(reasons) > 0 {
		return entities.JobCard{}, newValidationError(reasons...)
	}
	unlock := u.locks.acquire(cardID)
	defer unlock()

	card, err := u.load(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if !actor.IsAssignedTo(card) {
		return entities.JobCard{}, ErrForbidden
	}
	if card.Status != entities.JobCardStatusInProgress {
		return entities.JobCard{}, ErrInvalidState
	}

	entry := entities.MaterialEntry{
		ID:         uuid.NewString(),
		Name:       in.Name,
		PartNumber: in.PartNumber,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		Category:   in.Category,
	}
	entry.Reprice()
	card.MaterialsUsed = append(card.MaterialsUsed, entry)
	card.Touch(actor.ID, u.now())
	return u.repo.Save(ctx, card)
}

// RemoveMaterial is only legal while the card is IN_PROGRESS and before any
// approval record exists. An unknown material id is an idempotent no-op.
func (u *WorkSessionUseCase) RemoveMaterial(ctx context.Context, actor entities.Identity, cardID, materialID string) (entities.JobCard, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	unlock := u.locks.acquire(cardID)
	defer unlock()

	card, err := u.load(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if !actor.IsAssignedTo(card) && !u.identity.HasPermission(actor, "jobcards", "update") {
		return entities.JobCard{}, ErrForbidden
	}
	if card.Status != entities.JobCardStatusInProgress || len(card.Approvals) > 0 {
		return entities.JobCard{}, ErrInvalidState
	}

	idx := -1
	for i := range card.MaterialsUsed {
		if card.MaterialsUsed[i].ID == materialID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return card, nil
	}
	card.MaterialsUsed = append(card.MaterialsUsed[:idx], card.MaterialsUsed[idx+1:]...)
	card.Touch(actor.ID, u.now())
	return u.repo.Save(ctx, card)
}

func (u *WorkSessionUseCase) AddTask(ctx context.Context, actor entities.Identity, cardID, description string) (entities.JobCard, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	if strings.TrimSpace(description) == "" {
		return entities.JobCard{}, newValidationError("task description must not be empty")
	}
	unlock := u.locks.acquire(cardID)
	defer unlock()

	card, err := u.load(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if !actor.IsAssignedTo(card) && !u.identity.HasPermission(actor, "jobcards", "update") {
		return entities.JobCard{}, ErrForbidden
	}
	if card.Status.Terminal() {
		return entities.JobCard{}, ErrInvalidState
	}

	card.Tasks = append(card.Tasks, description)
	card.Touch(actor.ID, u.now())
	return u.repo.Save(ctx, card)
}

// UpdateTaskProgress tracks task completion as advisory session state. It is
// never persisted on the card and gates no transition.
func (u *WorkSessionUseCase) UpdateTaskProgress(ctx context.Context, actor entities.Identity, cardID string, index int, completed bool) (entities.JobCard, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	unlock := u.locks.acquire(cardID)
	defer unlock()

	card, err := u.load(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if !actor.IsAssignedTo(card) {
		return entities.JobCard{}, ErrForbidden
	}
	if index < 0 || index >= len(card.Tasks) {
		return entities.JobCard{}, newValidationError("task index out of range")
	}

	sess := u.session(cardID, actor.TechnicianID)
	u.sessMu.Lock()
	sess.taskDone[index] = completed
	u.sessMu.Unlock()
	return card, nil
}

func (u *WorkSessionUseCase) AppendNote(ctx context.Context, actor entities.Identity, cardID, text string) (entities.JobCard, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	if strings.TrimSpace(text) == "" {
		return entities.JobCard{}, newValidationError("note text must not be empty")
	}
	unlock := u.locks.acquire(cardID)
	defer unlock()

	card, err := u.load(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if !actor.IsAssignedTo(card) && !u.identity.HasPermission(actor, "jobcards", "update") {
		return entities.JobCard{}, ErrForbidden
	}
	if card.Status.Terminal() {
		return entities.JobCard{}, ErrInvalidState
	}

	now := u.now()
	card.AppendNote(now, actor.ID, text)
	card.Touch(actor.ID, now)
	return u.repo.Save(ctx, card)
}

func (u *WorkSessionUseCase) Hold(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error) {
	return u.fireStatusTrigger(ctx, actor, cardID, lifecycle.TriggerHold)
}

func (u *WorkSessionUseCase) Resume(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error) {
	return u.fireStatusTrigger(ctx, actor, cardID, lifecycle.TriggerResume)
}

func (u *WorkSessionUseCase) AwaitParts(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error) {
	return u.fireStatusTrigger(ctx, actor, cardID, lifecycle.TriggerAwaitParts)
}

func (u *WorkSessionUseCase) PartsArrived(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error) {
	return u.fireStatusTrigger(ctx, actor, cardID, lifecycle.TriggerPartsArrived)
}

func (u *WorkSessionUseCase) fireStatusTrigger(ctx context.Context, actor entities.Identity, cardID string, trigger lifecycle.Trigger) (entities.JobCard, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	unlock := u.locks.acquire(cardID)
	defer unlock()

	card, err := u.load(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if !actor.IsAssignedTo(card) && !u.identity.HasPermission(actor, "jobcards", "update") {
		return entities.JobCard{}, ErrForbidden
	}
	if err := lifecycle.Apply(&card, trigger, actor, u.now()); err != nil {
		return entities.JobCard{}, err
	}
	saved, err := u.repo.Save(ctx, card)
	if err != nil {
		return entities.JobCard{}, err
	}
	u.publishEvent(ctx, "jobcard.status", saved)
	return saved, nil
}

// RequestApproval closes any open timer first, moves the card to
// WAITING_APPROVAL and appends the pending completion approval. A second
// request while one is outstanding is rejected.
func (u *WorkSessionUseCase) RequestApproval(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.JobCard{}, ErrInvalidJobCardID
	}
	unlock := u.locks.acquire(cardID)
	defer unlock()

	card, err := u.load(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if !actor.IsAssignedTo(card) {
		return entities.JobCard{}, ErrForbidden
	}
	if card.PendingApproval() != nil {
		return entities.JobCard{}, ErrInvalidState
	}

	now := u.now().UTC()
	sess := u.session(cardID, actor.TechnicianID)
	u.sessMu.Lock()
	timer := sess.timer
	u.sessMu.Unlock()
	if timer != nil {
		u.appendTimerEntry(&card, actor, timer, now)
	}

	if err := lifecycle.Apply(&card, lifecycle.TriggerRequestApproval, actor, now); err != nil {
		return entities.JobCard{}, err
	}
	card.Approvals = append(card.Approvals, entities.Approval{
		ID:           uuid.NewString(),
		Type:         entities.ApprovalTypeCompletion,
		RequestedBy:  actor.TechnicianID,
		RequestedAt:  now,
		ApproverRole: entities.RoleOfficeManager,
		Status:       entities.ApprovalStatusPending,
	})
	saved, err := u.repo.Save(ctx, card)
	if err != nil {
		return entities.JobCard{}, err
	}

	u.sessMu.Lock()
	sess.timer = nil
	u.sessMu.Unlock()

	u.publishEvent(ctx, "jobcard.approval.requested", saved)
	return saved, nil
}

// OpenTimer reports the live open timer for this session, if any.
func (u *WorkSessionUseCase) OpenTimer(actor entities.Identity, cardID string) (TimerSnapshot, bool) {
	u.sessMu.Lock()
	defer u.sessMu.Unlock()
	sess, ok := u.sessions[sessionKey{cardID: strings.TrimSpace(cardID), technicianID: actor.TechnicianID}]
	if !ok || sess.timer == nil {
		return TimerSnapshot{}, false
	}
	t := sess.timer
	return TimerSnapshot{
		Description:  t.description,
		HourlyRate:   t.hourlyRate,
		StartedAt:    t.startedAt,
		ElapsedHours: costing.RoundHours(u.now().Sub(t.startedAt).Hours()),
	}, true
}

func (u *WorkSessionUseCase) appendTimerEntry(card *entities.JobCard, actor entities.Identity, timer *openTimer, now time.Time) {
	card.LaborEntries = append(card.LaborEntries, entities.LaborEntry{
		ID:             uuid.NewString(),
		TechnicianID:   actor.TechnicianID,
		TechnicianName: actor.Name,
		StartTime:      timer.startedAt,
		EndTime:        &now,
		Hours:          costing.RoundHours(now.Sub(timer.startedAt).Hours()),
		HourlyRate:     timer.hourlyRate,
		Description:    timer.description,
	})
	card.Touch(actor.ID, now)
}

func (u *WorkSessionUseCase) session(cardID, technicianID string) *sessionState {
	u.sessMu.Lock()
	defer u.sessMu.Unlock()
	key := sessionKey{cardID: cardID, technicianID: technicianID}
	sess, ok := u.sessions[key]
	if !ok {
		sess = &sessionState{taskDone: make(map[int]bool)}
		u.sessions[key] = sess
	}
	return sess
}

func (u *WorkSessionUseCase) load(ctx context.Context, cardID string) (entities.JobCard, error) {
	card, err := u.repo.GetByID(ctx, cardID)
	if err != nil {
		return entities.JobCard{}, err
	}
	if card.ID == "" {
		return entities.JobCard{}, ErrJobCardNotFound
	}
	return card.Clone(), nil
}

func (u *WorkSessionUseCase) publishEvent(ctx context.Context, routingKey string, card entities.JobCard) {
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
		log.Printf("[worksession][usecase] publish %s failed job_card_id=%s err=%v", routingKey, card.ID, err)
	}
}

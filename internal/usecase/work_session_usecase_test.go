package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/domain/lifecycle"
	mock_interfaces "jobcard_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	techActor  = entities.Identity{ID: "user-t1", Name: "Ana", Role: entities.RoleTechnician, TechnicianID: "tech-1"}
	otherActor = entities.Identity{ID: "user-t2", Name: "Bruno", Role: entities.RoleTechnician, TechnicianID: "tech-2"}
)

func pendingCard() entities.JobCard {
	return entities.JobCard{
		ID:                   "card-1",
		JobNumber:            "JC-20260301-AAAAAA",
		Status:               entities.JobCardStatusPending,
		AssignedTechnicianID: "tech-1",
		CustomerID:           "cust-1",
	}
}

func inProgressCard() entities.JobCard {
	c := pendingCard()
	c.Status = entities.JobCardStatusInProgress
	return c
}

func TestWorkSessionUseCase_StartWork(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewWorkSessionUseCase(nil, nil, nil)
		_, err := uc.StartWork(context.Background(), techActor, "   ")
		if !errors.Is(err, ErrInvalidJobCardID) {
			t.Fatalf("expected ErrInvalidJobCardID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.JobCard{}, nil)

		_, err := uc.StartWork(context.Background(), techActor, "card-1")
		if !errors.Is(err, ErrJobCardNotFound) {
			t.Fatalf("expected ErrJobCardNotFound, got %v", err)
		}
	})

	t.Run("forbidden for non-assigned technician", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(pendingCard(), nil)

		_, err := uc.StartWork(context.Background(), otherActor, "card-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("success transitions to in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(pendingCard(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.JobCard{})).DoAndReturn(
			func(_ context.Context, c entities.JobCard) (entities.JobCard, error) {
				if c.Status != entities.JobCardStatusInProgress {
					t.Fatalf("expected IN_PROGRESS, got %s", c.Status)
				}
				if len(c.Notes) != 1 {
					t.Fatalf("expected one transition note, got %d", len(c.Notes))
				}
				if c.LastUpdatedBy != techActor.ID {
					t.Fatalf("expected last updated by actor, got %s", c.LastUpdatedBy)
				}
				return c, nil
			},
		)

		res, err := uc.StartWork(context.Background(), techActor, "card-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.JobCardStatusInProgress {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("invalid from in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(inProgressCard(), nil)

		_, err := uc.StartWork(context.Background(), techActor, "card-1")
		var ite *lifecycle.InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})
}

func TestWorkSessionUseCase_TimerFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
	uc := NewWorkSessionUseCase(repo, nil, nil)

	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	current := start
	uc.now = func() time.Time { return current }

	repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(inProgressCard(), nil).Times(2)

	if _, err := uc.StartTimer(context.Background(), techActor, "card-1", "brake diagnostics", 50); err != nil {
		t.Fatalf("start timer: %v", err)
	}

	// a second start while the timer is open must not reset the window
	current = start.Add(30 * time.Minute)
	repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(inProgressCard(), nil)
	if _, err := uc.StartTimer(context.Background(), techActor, "card-1", "something else", 80); err != nil {
		t.Fatalf("second start timer: %v", err)
	}
	if snap, ok := uc.OpenTimer(techActor, "card-1"); !ok || snap.Description != "brake diagnostics" || snap.HourlyRate != 50 {
		t.Fatalf("open timer was reset: %+v", snap)
	}

	current = start.Add(90 * time.Minute)
	repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.JobCard{})).DoAndReturn(
		func(_ context.Context, c entities.JobCard) (entities.JobCard, error) {
			if len(c.LaborEntries) != 1 {
				t.Fatalf("expected one labor entry, got %d", len(c.LaborEntries))
			}
			e := c.LaborEntries[0]
			if e.Hours != 1.5 {
				t.Fatalf("expected 1.5 hours, got %v", e.Hours)
			}
			if e.HourlyRate != 50 {
				t.Fatalf("rate must be frozen at start, got %v", e.HourlyRate)
			}
			if e.EndTime == nil || !e.EndTime.Equal(current) {
				t.Fatalf("end time not set: %+v", e.EndTime)
			}
			if e.IsApproved {
				t.Fatalf("labor entries default to unapproved")
			}
			return c, nil
		},
	)

	if _, err := uc.StopTimer(context.Background(), techActor, "card-1"); err != nil {
		t.Fatalf("stop timer: %v", err)
	}
	if _, ok := uc.OpenTimer(techActor, "card-1"); ok {
		t.Fatalf("timer still open after stop")
	}
}

func TestWorkSessionUseCase_StopTimerWithoutOpenTimerIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
	uc := NewWorkSessionUseCase(repo, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(inProgressCard(), nil)
	// no Save expected

	res, err := uc.StopTimer(context.Background(), techActor, "card-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.LaborEntries) != 0 {
		t.Fatalf("no entry expected on idempotent stop")
	}
}

func TestWorkSessionUseCase_StopTimerDiscardsOnCancelledCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
	uc := NewWorkSessionUseCase(repo, nil, nil)

	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	current := start
	uc.now = func() time.Time { return current }

	repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(inProgressCard(), nil)
	if _, err := uc.StartTimer(context.Background(), techActor, "card-1", "brake diagnostics", 50); err != nil {
		t.Fatalf("start timer: %v", err)
	}

	// the office cancels the card while the timer is still running
	cancelled := inProgressCard()
	cancelled.Status = entities.JobCardStatusCancelled
	current = start.Add(2 * time.Hour)
	repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(cancelled, nil)
	// no Save expected

	res, err := uc.StopTimer(context.Background(), techActor, "card-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.LaborEntries) != 0 {
		t.Fatalf("no labor entry may be added to a cancelled card: %+v", res.LaborEntries)
	}
	if _, ok := uc.OpenTimer(techActor, "card-1"); ok {
		t.Fatalf("discarded timer still reported open")
	}
}

func TestWorkSessionUseCase_LogTime(t *testing.T) {
	t.Run("collects all validation reasons", func(t *testing.T) {
		uc := NewWorkSessionUseCase(nil, nil, nil)
		_, err := uc.LogTime(context.Background(), techActor, "card-1", 0, -1, "  ")
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(ve.Reasons) != 3 {
			t.Fatalf("expected 3 reasons, got %v", ve.Reasons)
		}
	})

	t.Run("success appends entry with caller-supplied hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(inProgressCard(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.JobCard{})).DoAndReturn(
			func(_ context.Context, c entities.JobCard) (entities.JobCard, error) {
				if len(c.LaborEntries) != 1 {
					t.Fatalf("expected one labor entry")
				}
				e := c.LaborEntries[0]
				if e.Hours != 2.5 || e.HourlyRate != 50 {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.EndTime == nil || !e.StartTime.Equal(*e.EndTime) {
					t.Fatalf("manual entries carry start == end")
				}
				return c, nil
			},
		)

		if _, err := uc.LogTime(context.Background(), techActor, "card-1", 2.5, 50, "replaced pads"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejected outside in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, nil)

		card := pendingCard()
		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)

		_, err := uc.LogTime(context.Background(), techActor, "card-1", 1, 50, "work")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestWorkSessionUseCase_Materials(t *testing.T) {
	t.Run("add computes total price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(inProgressCard(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.JobCard{})).DoAndReturn(
			func(_ context.Context, c entities.JobCard) (entities.JobCard, error) {
				if len(c.MaterialsUsed) != 1 {
					t.Fatalf("expected one material")
				}
				m := c.MaterialsUsed[0]
				if m.TotalPrice != 40 {
					t.Fatalf("expected total 40, got %v", m.TotalPrice)
				}
				if m.Category != entities.MaterialCategoryParts {
					t.Fatalf("unexpected category: %s", m.Category)
				}
				return c, nil
			},
		)

		_, err := uc.AddMaterial(context.Background(), techActor, "card-1", MaterialInput{
			Name: "brake pad set", Quantity: 2, UnitPrice: 20, Category: entities.MaterialCategoryParts,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("add rejects invalid input", func(t *testing.T) {
		uc := NewWorkSessionUseCase(nil, nil, nil)
		_, err := uc.AddMaterial(context.Background(), techActor, "card-1", MaterialInput{Quantity: 0})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("remove fails once an approval exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, nil)

		card := inProgressCard()
		card.MaterialsUsed = []entities.MaterialEntry{{ID: "m-1"}}
		card.Approvals = []entities.Approval{{ID: "a-1", Status: entities.ApprovalStatusRejected}}
		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)

		_, err := uc.RemoveMaterial(context.Background(), techActor, "card-1", "m-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("remove unknown id is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, nil)

		card := inProgressCard()
		card.MaterialsUsed = []entities.MaterialEntry{{ID: "m-1"}}
		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)
		// no Save expected

		res, err := uc.RemoveMaterial(context.Background(), techActor, "card-1", "m-unknown")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.MaterialsUsed) != 1 {
			t.Fatalf("materials must be untouched")
		}
	})

	t.Run("remove deletes the entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, nil)

		card := inProgressCard()
		card.MaterialsUsed = []entities.MaterialEntry{{ID: "m-1"}, {ID: "m-2"}}
		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.JobCard{})).DoAndReturn(
			func(_ context.Context, c entities.JobCard) (entities.JobCard, error) {
				if len(c.MaterialsUsed) != 1 || c.MaterialsUsed[0].ID != "m-2" {
					t.Fatalf("unexpected materials: %+v", c.MaterialsUsed)
				}
				return c, nil
			},
		)

		if _, err := uc.RemoveMaterial(context.Background(), techActor, "card-1", "m-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkSessionUseCase_RequestApproval(t *testing.T) {
	t.Run("rejects a second outstanding request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, nil)

		card := inProgressCard()
		card.Status = entities.JobCardStatusWaitingApproval
		card.Approvals = []entities.Approval{{ID: "a-1", Status: entities.ApprovalStatusPending}}
		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)

		_, err := uc.RequestApproval(context.Background(), techActor, "card-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("closes open timer and appends pending approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, events)

		start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
		current := start
		uc.now = func() time.Time { return current }

		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(inProgressCard(), nil).Times(2)

		if _, err := uc.StartTimer(context.Background(), techActor, "card-1", "final checks", 60); err != nil {
			t.Fatalf("start timer: %v", err)
		}

		current = start.Add(15 * time.Minute)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.JobCard{})).DoAndReturn(
			func(_ context.Context, c entities.JobCard) (entities.JobCard, error) {
				if c.Status != entities.JobCardStatusWaitingApproval {
					t.Fatalf("expected WAITING_APPROVAL, got %s", c.Status)
				}
				if len(c.LaborEntries) != 1 || c.LaborEntries[0].Hours != 0.25 {
					t.Fatalf("open timer not closed into a labor entry: %+v", c.LaborEntries)
				}
				if p := c.PendingApproval(); p == nil || p.Type != entities.ApprovalTypeCompletion || p.RequestedBy != "tech-1" {
					t.Fatalf("pending approval missing or wrong: %+v", p)
				}
				return c, nil
			},
		)
		events.EXPECT().Publish(gomock.Any(), "jobcard.approval.requested", gomock.Any()).Return(nil)

		res, err := uc.RequestApproval(context.Background(), techActor, "card-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := uc.OpenTimer(techActor, "card-1"); ok {
			t.Fatalf("timer must be cleared after request")
		}
		if res.PendingApproval() == nil {
			t.Fatalf("expected pending approval on result")
		}
	})

	t.Run("forbidden for non-assigned technician", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
		uc := NewWorkSessionUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(inProgressCard(), nil)

		_, err := uc.RequestApproval(context.Background(), otherActor, "card-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestWorkSessionUseCase_HoldNeedsPermissionForNonAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIJobCardRepository(ctrl)
	identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
	uc := NewWorkSessionUseCase(repo, identity, nil)

	t.Run("denied without update permission", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(inProgressCard(), nil)
		identity.EXPECT().HasPermission(otherActor, "jobcards", "update").Return(false)

		_, err := uc.Hold(context.Background(), otherActor, "card-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("allowed with update permission", func(t *testing.T) {
		manager := entities.Identity{ID: "user-m1", Role: entities.RoleOfficeManager}
		repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(inProgressCard(), nil)
		identity.EXPECT().HasPermission(manager, "jobcards", "update").Return(true)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.JobCard{})).DoAndReturn(
			func(_ context.Context, c entities.JobCard) (entities.JobCard, error) {
				if c.Status != entities.JobCardStatusOnHold {
					t.Fatalf("expected ON_HOLD, got %s", c.Status)
				}
				return c, nil
			},
		)

		if _, err := uc.Hold(context.Background(), manager, "card-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

package usecase

import (
	"testing"
	"time"
)

func TestUseCasesShareOneLockRegistry(t *testing.T) {
	wuc := NewWorkSessionUseCase(nil, nil, nil)
	ruc := NewReviewUseCase(nil, nil, nil, nil)
	juc := NewJobCardUseCase(nil, nil, nil)

	if wuc.locks != ruc.locks || ruc.locks != juc.locks {
		t.Fatalf("mutations on one card must serialize through the same registry regardless of entry point")
	}
}

func TestCardLocksSerializeAcrossUseCases(t *testing.T) {
	wuc := NewWorkSessionUseCase(nil, nil, nil)
	ruc := NewReviewUseCase(nil, nil, nil, nil)

	unlock := ruc.locks.acquire("card-lock-1")

	entered := make(chan struct{})
	go func() {
		u := wuc.locks.acquire("card-lock-1")
		close(entered)
		u()
	}()

	select {
	case <-entered:
		t.Fatalf("acquire succeeded through a second use case while the card was locked")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatalf("acquire never proceeded after unlock")
	}
}

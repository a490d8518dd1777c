package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"eventportal/internal/domain"
)

func newReservation(email, eventID, code string) *domain.Reservation {
	return &domain.Reservation{
		ID:               domain.NewReservationID(),
		ConfirmationCode: code,
		FirstName:        "Test",
		LastName:         "Person",
		Email:            email,
		EventID:          eventID,
		Status:           domain.StatusConfirmed,
	}
}

func TestReserveCapacity(t *testing.T) {
	ctx := context.Background()
	store := NewReservationStore()

	if err := store.Reserve(ctx, newReservation("a@example.com", "ev1", "AAAAAA"), 2, 0); err != nil {
		t.Fatalf("first reserve: %v", err)
	}
	if err := store.Reserve(ctx, newReservation("b@example.com", "ev1", "BBBBBB"), 2, 0); err != nil {
		t.Fatalf("second reserve: %v", err)
	}
	err := store.Reserve(ctx, newReservation("c@example.com", "ev1", "CCCCCC"), 2, 0)
	if !errors.Is(err, domain.ErrEventFull) {
		t.Fatalf("third reserve: err = %v, want ErrEventFull", err)
	}

	n, err := store.CountConfirmed(ctx, "ev1")
	if err != nil || n != 2 {
		t.Errorf("CountConfirmed = %d, %v", n, err)
	}
}

func TestReserveHonorsBaseOccupancy(t *testing.T) {
	ctx := context.Background()
	store := NewReservationStore()

	// 9 of 10 seats already taken upstream; only one local seat is left.
	if err := store.Reserve(ctx, newReservation("a@example.com", "ev1", "AAAAAA"), 10, 9); err != nil {
		t.Fatalf("reserve last seat: %v", err)
	}
	err := store.Reserve(ctx, newReservation("b@example.com", "ev1", "BBBBBB"), 10, 9)
	if !errors.Is(err, domain.ErrEventFull) {
		t.Errorf("err = %v, want ErrEventFull", err)
	}
}

func TestReserveDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := NewReservationStore()

	if err := store.Reserve(ctx, newReservation("dupe@example.com", "ev1", "AAAAAA"), 10, 0); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	err := store.Reserve(ctx, newReservation("Dupe@Example.com", "ev1", "BBBBBB"), 10, 0)
	if !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrAlreadyRegistered", err)
	}

	// Same email at another event is fine.
	if err := store.Reserve(ctx, newReservation("dupe@example.com", "ev2", "CCCCCC"), 10, 0); err != nil {
		t.Errorf("other event: %v", err)
	}

	p, err := store.GetParticipant(ctx, "dupe@example.com")
	if err != nil {
		t.Fatalf("GetParticipant: %v", err)
	}
	if len(p.EventIDs) != 2 || !p.HasEvent("ev1") || !p.HasEvent("ev2") {
		t.Errorf("participant events = %v", p.EventIDs)
	}
}

// With capacity k and more than k concurrent attempts, exactly k must be
// admitted. This is the invariant the per-event lock exists for.
func TestReserveConcurrent(t *testing.T) {
	ctx := context.Background()
	store := NewReservationStore()
	const capacity = 10
	const attempts = 50

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res := newReservation(fmt.Sprintf("user%d@example.com", i), "ev1", fmt.Sprintf("C%05d", i))
			errs[i] = store.Reserve(ctx, res, capacity, 0)
		}(i)
	}
	wg.Wait()

	admitted := 0
	for _, err := range errs {
		switch {
		case err == nil:
			admitted++
		case errors.Is(err, domain.ErrEventFull):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if admitted != capacity {
		t.Errorf("admitted = %d, want %d", admitted, capacity)
	}
	n, _ := store.CountConfirmed(ctx, "ev1")
	if n != capacity {
		t.Errorf("CountConfirmed = %d, want %d", n, capacity)
	}
}

func TestCancelReleasesSeat(t *testing.T) {
	ctx := context.Background()
	store := NewReservationStore()

	if err := store.Reserve(ctx, newReservation("a@example.com", "ev1", "AAAAAA"), 1, 0); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := store.Reserve(ctx, newReservation("b@example.com", "ev1", "BBBBBB"), 1, 0); !errors.Is(err, domain.ErrEventFull) {
		t.Fatalf("expected full, got %v", err)
	}

	res, err := store.Cancel(ctx, "AAAAAA")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if res.Status != domain.StatusCancelled {
		t.Errorf("status = %q", res.Status)
	}

	// Record is retained, seat is free again.
	if _, err := store.GetByConfirmationCode(ctx, "aaaaaa"); err != nil {
		t.Errorf("cancelled record must remain retrievable: %v", err)
	}
	if err := store.Reserve(ctx, newReservation("b@example.com", "ev1", "BBBBBB"), 1, 0); err != nil {
		t.Errorf("seat not released: %v", err)
	}

	// Cancelling twice is a no-op.
	res, err = store.Cancel(ctx, "AAAAAA")
	if err != nil || res.Status != domain.StatusCancelled {
		t.Errorf("second cancel: %+v, %v", res, err)
	}
}

func TestGetByConfirmationCodeNotFound(t *testing.T) {
	store := NewReservationStore()
	if _, err := store.GetByConfirmationCode(context.Background(), "ZZZZZZ"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := store.Cancel(context.Background(), "ZZZZZZ"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("cancel err = %v, want ErrNotFound", err)
	}
}

// Package memory provides the in-process reservation store used when no CMS
// persistence is configured (development, tests, degraded mode). It is an
// explicitly constructed, injected store, not ambient global state.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"eventportal/internal/domain"
)

// eventSeats serializes all seat accounting for one event. The read-check-
// increment in reserve runs entirely under its lock, which is what upholds
// the capacity invariant under concurrent submissions.
type eventSeats struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
}

// ReservationStore implements domain.ReservationStore in process memory.
// Reservations are append-only: cancellation flips status, nothing is deleted.
type ReservationStore struct {
	mu           sync.Mutex
	events       map[string]*eventSeats
	byCode       map[string]*domain.Reservation
	participants map[string]*domain.Participant
}

// NewReservationStore returns an empty store.
func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		events:       make(map[string]*eventSeats),
		byCode:       make(map[string]*domain.Reservation),
		participants: make(map[string]*domain.Participant),
	}
}

func (s *ReservationStore) seats(eventID string) *eventSeats {
	s.mu.Lock()
	defer s.mu.Unlock()
	es, ok := s.events[eventID]
	if !ok {
		es = &eventSeats{}
		s.events[eventID] = es
	}
	return es
}

// Reserve admits the reservation while baseOccupancy plus locally confirmed
// reservations stays below capacity. The same email cannot hold two confirmed
// seats at one event.
func (s *ReservationStore) Reserve(ctx context.Context, res *domain.Reservation, capacity, baseOccupancy int) error {
	email := strings.ToLower(strings.TrimSpace(res.Email))
	es := s.seats(res.EventID)

	es.mu.Lock()
	defer es.mu.Unlock()

	confirmed := 0
	for _, r := range es.reservations {
		if r.Status != domain.StatusConfirmed {
			continue
		}
		if strings.ToLower(r.Email) == email {
			return domain.ErrAlreadyRegistered
		}
		confirmed++
	}
	if baseOccupancy+confirmed >= capacity {
		return domain.ErrEventFull
	}

	es.reservations = append(es.reservations, res)

	s.mu.Lock()
	s.byCode[res.ConfirmationCode] = res
	s.upsertParticipantLocked(res, email)
	s.mu.Unlock()
	return nil
}

// upsertParticipantLocked maintains the participant view of reservations:
// one record per email, with the event id appended when new. Caller holds s.mu.
func (s *ReservationStore) upsertParticipantLocked(res *domain.Reservation, email string) {
	now := time.Now()
	p, ok := s.participants[email]
	if !ok {
		p = &domain.Participant{
			Email:     email,
			FirstName: res.FirstName,
			LastName:  res.LastName,
			Phone:     res.Phone,
			Company:   res.Company,
			CreatedAt: now,
		}
		s.participants[email] = p
	}
	if !p.HasEvent(res.EventID) {
		p.EventIDs = append(p.EventIDs, res.EventID)
	}
	p.UpdatedAt = now
}

// GetByConfirmationCode returns the reservation for the code, or ErrNotFound.
func (s *ReservationStore) GetByConfirmationCode(ctx context.Context, code string) (*domain.Reservation, error) {
	s.mu.Lock()
	res, ok := s.byCode[strings.ToUpper(strings.TrimSpace(code))]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

// Cancel flips a confirmed reservation to cancelled, releasing its seat. The
// record is retained. Cancelling twice is a no-op that returns the record.
func (s *ReservationStore) Cancel(ctx context.Context, code string) (*domain.Reservation, error) {
	res, err := s.GetByConfirmationCode(ctx, code)
	if err != nil {
		return nil, err
	}
	es := s.seats(res.EventID)
	es.mu.Lock()
	defer es.mu.Unlock()
	if res.Status == domain.StatusConfirmed {
		res.Status = domain.StatusCancelled
	}
	return res, nil
}

// CountConfirmed returns the number of confirmed reservations for the event.
func (s *ReservationStore) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	es := s.seats(eventID)
	es.mu.Lock()
	defer es.mu.Unlock()
	n := 0
	for _, r := range es.reservations {
		if r.Status == domain.StatusConfirmed {
			n++
		}
	}
	return n, nil
}

// GetParticipant returns the participant record for an email, or ErrNotFound.
func (s *ReservationStore) GetParticipant(ctx context.Context, email string) (*domain.Participant, error) {
	s.mu.Lock()
	p, ok := s.participants[strings.ToLower(strings.TrimSpace(email))]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

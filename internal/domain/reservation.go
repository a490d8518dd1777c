package domain

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Reservation status values. A reservation is created as confirmed; there is
// no approval step in this design.
const (
	// StatusConfirmed is the terminal success state.
	StatusConfirmed = "confirmed"
	// StatusPending is reserved for a future approval workflow. No code path
	// produces it today.
	StatusPending = "pending"
	// StatusCancelled is terminal; the record is kept (append-only log
	// semantics) and the event's occupancy is decremented.
	StatusCancelled = "cancelled"
)

var (
	ErrEventFull         = errors.New("event full")
	ErrAlreadyRegistered = errors.New("already registered")
)

// confirmationAlphabet is the full alphabet for confirmation codes.
const confirmationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ConfirmationCodeLength is the fixed length of a confirmation code.
const ConfirmationCodeLength = 6

// Reservation is one attendee's seat at one event. Records are never deleted;
// cancellation flips the status and releases the seat.
// swagger:model Reservation
type Reservation struct {
	ID               string    `json:"id"`
	ConfirmationCode string    `json:"confirmation_code"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Company          string    `json:"company,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	EventID          string    `json:"event_id"`
	EventTitle       string    `json:"event_title"`
	EventSlug        string    `json:"event_slug"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// Participant is the alternate persistence shape: attendee identity keyed by
// email, with the list of events that email is registered for. Re-registering
// for an event already in the list is a no-op.
type Participant struct {
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	EventIDs  []string  `json:"event_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasEvent reports whether the participant is already registered for eventID.
func (p *Participant) HasEvent(eventID string) bool {
	for _, id := range p.EventIDs {
		if id == eventID {
			return true
		}
	}
	return false
}

// NewReservationID returns a fresh reservation id: creation timestamp plus a
// random suffix.
func NewReservationID() string {
	return fmt.Sprintf("res_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// NewConfirmationCode returns a 6-character code drawn uniformly from [A-Z0-9].
// Collisions are not handled here; volume is low enough that human lookup by
// code plus email is sufficient.
func NewConfirmationCode() (string, error) {
	buf := make([]byte, ConfirmationCodeLength)
	max := big.NewInt(int64(len(confirmationAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate confirmation code: %w", err)
		}
		buf[i] = confirmationAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// ReservationStore persists reservations and accounts for seats. Reserve must
// treat the capacity check and the write as one critical section per event:
// given the occupancy the upstream CMS already reports (baseOccupancy) and the
// event's capacity, it admits the reservation only while
// baseOccupancy + locally confirmed reservations < capacity.
// It returns ErrEventFull past capacity and ErrAlreadyRegistered when the
// (email, event) pair is already confirmed.
type ReservationStore interface {
	Reserve(ctx context.Context, res *Reservation, capacity, baseOccupancy int) error
	GetByConfirmationCode(ctx context.Context, code string) (*Reservation, error)
	Cancel(ctx context.Context, code string) (*Reservation, error)
	CountConfirmed(ctx context.Context, eventID string) (int, error)
}

// ReservationRequest is an inbound reservation submission.
type ReservationRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Notes      string `json:"notes,omitempty"`
	EventID    string `json:"eventId"`
	EventTitle string `json:"eventTitle,omitempty"`
	EventSlug  string `json:"eventSlug,omitempty"`
}

// Reservation rejection codes. The UI needs to tell "event full" apart from
// "registration closed" to offer a waitlist path, so every rejection carries
// a machine-readable code next to its human-readable message.
const (
	RejectMissingFields      = "missing_fields"
	RejectEventNotFound      = "event_not_found"
	RejectRegistrationClosed = "registration_closed"
	RejectEventFull          = "event_full"
	RejectInvalidEmail       = "invalid_email"
	RejectAlreadyRegistered  = "already_registered"
	RejectInternal           = "internal"
)

// ReservationResult is the structured outcome of a reservation attempt.
// Validation failures are values here, never errors across the service
// boundary. Code is empty on success.
type ReservationResult struct {
	Success          bool   `json:"success"`
	Code             string `json:"code,omitempty"`
	ConfirmationCode string `json:"confirmationCode,omitempty"`
	Message          string `json:"message"`
	EmailSent        bool   `json:"emailSent"`
}

// ReservationService coordinates reservation submissions.
type ReservationService interface {
	Reserve(ctx context.Context, req ReservationRequest) ReservationResult
	Cancel(ctx context.Context, confirmationCode string) (*Reservation, error)
}

// Package wordpress persists reservations in the upstream CMS. The CMS is the
// source of truth in production; the portal keeps no durable state of its own.
package wordpress

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eventportal/internal/adapters/wordpress"
	"eventportal/internal/domain"
)

const (
	participantType = "participant"
	reservationType = "reservation"
)

// wireReservation is the reservation payload as the CMS stores it.
type wireReservation struct {
	ID     wordpress.FlexID `json:"id,omitempty"`
	Title  string           `json:"title,omitempty"`
	Status string           `json:"status,omitempty"`
	Meta   reservationMeta  `json:"meta"`
}

type reservationMeta struct {
	ReservationID    string `json:"reservation_id,omitempty"`
	ConfirmationCode string `json:"confirmation_code,omitempty"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Company          string `json:"company,omitempty"`
	Notes            string `json:"notes,omitempty"`
	Event            string `json:"event,omitempty"`
	EventTitle       string `json:"event_title,omitempty"`
	EventSlug        string `json:"event_slug,omitempty"`
	ReservationState string `json:"reservation_status,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
}

// wireParticipant is the participant payload keyed by email.
type wireParticipant struct {
	ID    wordpress.FlexID `json:"id,omitempty"`
	Title string           `json:"title,omitempty"`
	Meta  participantMeta  `json:"meta"`
}

type participantMeta struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	// Events is comma-separated; the CMS stores meta values as strings.
	Events string `json:"events,omitempty"`
}

// ReservationStore implements domain.ReservationStore against the CMS.
//
// The occupancy update is a read-modify-write without compare-and-swap (the
// CMS does not expose one), so two concurrent submissions can race in a
// narrow window. Accepted: the CMS's update semantics are the authority here,
// and the in-memory store covers the strict case.
type ReservationStore struct {
	client *wordpress.Client
	logger *slog.Logger
}

// NewReservationStore returns a store over the given CMS client.
func NewReservationStore(client *wordpress.Client, logger *slog.Logger) *ReservationStore {
	return &ReservationStore{client: client, logger: logger}
}

// Reserve persists the reservation, upserts the participant record, and bumps
// the event's occupancy. Registering the same email for the same event twice
// returns ErrAlreadyRegistered without creating a second record.
func (s *ReservationStore) Reserve(ctx context.Context, res *domain.Reservation, capacity, baseOccupancy int) error {
	if baseOccupancy >= capacity {
		return domain.ErrEventFull
	}

	email := strings.ToLower(strings.TrimSpace(res.Email))
	existing, err := s.findParticipant(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup participant: %w", err)
	}
	if existing != nil && participantHasEvent(&existing.Meta, res.EventID) {
		return domain.ErrAlreadyRegistered
	}

	record := wireReservation{
		Title:  fmt.Sprintf("%s %s - %s", res.FirstName, res.LastName, res.EventTitle),
		Status: "publish",
		Meta: reservationMeta{
			ReservationID:    res.ID,
			ConfirmationCode: res.ConfirmationCode,
			FirstName:        res.FirstName,
			LastName:         res.LastName,
			Email:            email,
			Phone:            res.Phone,
			Company:          res.Company,
			Notes:            res.Notes,
			Event:            res.EventID,
			EventTitle:       res.EventTitle,
			EventSlug:        res.EventSlug,
			ReservationState: res.Status,
			CreatedAt:        res.CreatedAt.Format(time.RFC3339),
		},
	}
	if err := s.client.CreateRecord(ctx, reservationType, record); err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}

	if err := s.upsertParticipant(ctx, existing, res, email); err != nil {
		// The reservation record is the source of truth; a failed participant
		// upsert is logged, not rolled back.
		s.logger.Warn("participant upsert failed", "email", email, "err", err)
	}

	s.bumpOccupancy(ctx, res.EventID, baseOccupancy+1)
	return nil
}

func (s *ReservationStore) upsertParticipant(ctx context.Context, existing *wireParticipant, res *domain.Reservation, email string) error {
	if existing == nil {
		return s.client.CreateRecord(ctx, participantType, wireParticipant{
			Title: email,
			Meta: participantMeta{
				Email:     email,
				FirstName: res.FirstName,
				LastName:  res.LastName,
				Phone:     res.Phone,
				Company:   res.Company,
				Events:    res.EventID,
			},
		})
	}
	meta := existing.Meta
	if meta.Events == "" {
		meta.Events = res.EventID
	} else {
		meta.Events = meta.Events + "," + res.EventID
	}
	return s.client.UpdateRecord(ctx, participantType, string(existing.ID), wireParticipant{Meta: meta})
}

// GetByConfirmationCode looks a reservation up by its code.
func (s *ReservationStore) GetByConfirmationCode(ctx context.Context, code string) (*domain.Reservation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	params := url.Values{}
	params.Set("meta_key", "confirmation_code")
	params.Set("meta_value", code)
	params.Set("per_page", "1")

	var records []wireReservation
	if err := s.client.Fetch(ctx, reservationType, params, &records); err != nil {
		return nil, fmt.Errorf("fetch reservation: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}
	return fromWire(&records[0]), nil
}

// Cancel marks the reservation cancelled and releases its seat. The record is
// kept; only the status changes.
func (s *ReservationStore) Cancel(ctx context.Context, code string) (*domain.Reservation, error) {
	params := url.Values{}
	params.Set("meta_key", "confirmation_code")
	params.Set("meta_value", strings.ToUpper(strings.TrimSpace(code)))
	params.Set("per_page", "1")
	var records []wireReservation
	if err := s.client.Fetch(ctx, reservationType, params, &records); err != nil {
		return nil, fmt.Errorf("fetch reservation for cancel: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}
	res := fromWire(&records[0])
	if res.Status != domain.StatusConfirmed {
		return res, nil
	}
	update := wireReservation{Meta: reservationMeta{ReservationState: domain.StatusCancelled}}
	if err := s.client.UpdateRecord(ctx, reservationType, string(records[0].ID), update); err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}
	res.Status = domain.StatusCancelled

	if n, err := s.occupancy(ctx, res.EventID); err == nil && n > 0 {
		s.bumpOccupancy(ctx, res.EventID, n-1)
	}
	return res, nil
}

// CountConfirmed counts confirmed reservations for the event in the CMS.
func (s *ReservationStore) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	params := url.Values{}
	params.Set("meta_key", "event")
	params.Set("meta_value", eventID)
	params.Set("per_page", "100")

	var records []wireReservation
	if err := s.client.Fetch(ctx, reservationType, params, &records); err != nil {
		return 0, fmt.Errorf("fetch reservations: %w", err)
	}
	n := 0
	for _, r := range records {
		if r.Meta.ReservationState == domain.StatusConfirmed {
			n++
		}
	}
	return n, nil
}

func (s *ReservationStore) findParticipant(ctx context.Context, email string) (*wireParticipant, error) {
	params := url.Values{}
	params.Set("meta_key", "email")
	params.Set("meta_value", email)
	params.Set("per_page", "1")

	var records []wireParticipant
	if err := s.client.Fetch(ctx, participantType, params, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// occupancy reads the event's current_attendees meta.
func (s *ReservationStore) occupancy(ctx context.Context, eventID string) (int, error) {
	raw, err := s.client.FetchByID(ctx, "events", eventID)
	if err != nil {
		return 0, err
	}
	return wordpress.ToEvent(*raw).CurrentAttendees, nil
}

// bumpOccupancy writes the event's current_attendees meta. Best-effort: the
// reservation record stands even if this write fails.
func (s *ReservationStore) bumpOccupancy(ctx context.Context, eventID string, value int) {
	body := map[string]any{
		"meta": map[string]string{"current_attendees": strconv.Itoa(value)},
	}
	if err := s.client.UpdateRecord(ctx, "events", eventID, body); err != nil {
		s.logger.Warn("occupancy update failed", "event_id", eventID, "err", err)
	}
}

func participantHasEvent(meta *participantMeta, eventID string) bool {
	for _, id := range strings.Split(meta.Events, ",") {
		if strings.TrimSpace(id) == eventID {
			return true
		}
	}
	return false
}

func fromWire(w *wireReservation) *domain.Reservation {
	created, _ := time.Parse(time.RFC3339, w.Meta.CreatedAt)
	status := w.Meta.ReservationState
	if status == "" {
		status = domain.StatusConfirmed
	}
	return &domain.Reservation{
		ID:               w.Meta.ReservationID,
		ConfirmationCode: w.Meta.ConfirmationCode,
		FirstName:        w.Meta.FirstName,
		LastName:         w.Meta.LastName,
		Email:            w.Meta.Email,
		Phone:            w.Meta.Phone,
		Company:          w.Meta.Company,
		Notes:            w.Meta.Notes,
		EventID:          w.Meta.Event,
		EventTitle:       w.Meta.EventTitle,
		EventSlug:        w.Meta.EventSlug,
		Status:           status,
		CreatedAt:        created,
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"eventportal/internal/domain"
)

type reservationService struct {
	gateway  domain.ContentGateway
	store    domain.ReservationStore
	notifier domain.NotificationService
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

// NewReservationService creates the reservation coordinator. It resolves
// events through the gateway, persists through the store, and notifies
// best-effort through the notifier.
func NewReservationService(
	gateway domain.ContentGateway,
	store domain.ReservationStore,
	notifier domain.NotificationService,
	logger *slog.Logger,
) domain.ReservationService {
	return &reservationService{
		gateway:  gateway,
		store:    store,
		notifier: notifier,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// Reserve validates and persists one reservation submission. Checks run in
// order and short-circuit; every failure is a structured result, never an
// error escaping this boundary.
func (s *reservationService) Reserve(ctx context.Context, req domain.ReservationRequest) domain.ReservationResult {
	if missing := missingFields(req); len(missing) > 0 {
		return failure(domain.RejectMissingFields, "missing required fields: "+strings.Join(missing, ", "))
	}

	event, err := s.resolveEvent(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return failure(domain.RejectEventNotFound, "event not found")
		}
		s.logger.Error("event lookup failed", "event_id", req.EventID, "err", err)
		return failure(domain.RejectEventNotFound, "event not found")
	}

	now := s.now()
	if !event.RegistrationOpen(now) {
		return failure(domain.RejectRegistrationClosed, fmt.Sprintf("registration closed since %s", event.RegistrationDeadline.Format(time.RFC3339)))
	}

	if !event.HasCapacity() {
		return failure(domain.RejectEventFull, "event full")
	}

	if err := s.validate.Var(req.Email, "required,email"); err != nil {
		return failure(domain.RejectInvalidEmail, "invalid email address")
	}

	code, err := domain.NewConfirmationCode()
	if err != nil {
		s.logger.Error("confirmation code generation failed", "err", err)
		return failure(domain.RejectInternal, "could not create reservation, please try again")
	}

	res := &domain.Reservation{
		ID:               domain.NewReservationID(),
		ConfirmationCode: code,
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Email:            strings.TrimSpace(req.Email),
		Phone:            strings.TrimSpace(req.Phone),
		Company:          strings.TrimSpace(req.Company),
		Notes:            strings.TrimSpace(req.Notes),
		EventID:          event.ID,
		EventTitle:       event.Title,
		EventSlug:        event.Slug,
		Status:           domain.StatusConfirmed,
		CreatedAt:        now,
	}

	if err := s.store.Reserve(ctx, res, event.MaxAttendees, event.CurrentAttendees); err != nil {
		switch {
		case errors.Is(err, domain.ErrEventFull):
			return failure(domain.RejectEventFull, "event full")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			return failure(domain.RejectAlreadyRegistered, "email already registered for this event")
		default:
			s.logger.Error("reservation persistence failed", "event_id", event.ID, "err", err)
			return failure(domain.RejectInternal, "could not save reservation, please try again")
		}
	}

	// The reservation is the source of truth; the email is best-effort.
	emailSent := true
	if err := s.notifier.SendReservationConfirmation(ctx, res, event); err != nil {
		s.logger.Warn("confirmation email failed", "email", res.Email, "err", err)
		emailSent = false
	}

	return domain.ReservationResult{
		Success:          true,
		ConfirmationCode: res.ConfirmationCode,
		Message:          "reservation confirmed",
		EmailSent:        emailSent,
	}
}

// Cancel flips a confirmed reservation to cancelled and releases its seat.
func (s *reservationService) Cancel(ctx context.Context, confirmationCode string) (*domain.Reservation, error) {
	res, err := s.store.Cancel(ctx, confirmationCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}
	return res, nil
}

// resolveEvent looks the event up by id, falling back to the slug the form
// also carries.
func (s *reservationService) resolveEvent(ctx context.Context, req domain.ReservationRequest) (*domain.EventRecord, error) {
	event, err := s.gateway.GetEventByID(ctx, req.EventID)
	if err == nil {
		return event, nil
	}
	if req.EventSlug != "" {
		return s.gateway.GetEventBySlug(ctx, req.EventSlug, false)
	}
	return nil, err
}

func missingFields(req domain.ReservationRequest) []string {
	var missing []string
	if strings.TrimSpace(req.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(req.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.EventID) == "" {
		missing = append(missing, "eventId")
	}
	return missing
}

func failure(code, message string) domain.ReservationResult {
	return domain.ReservationResult{Success: false, Code: code, Message: message}
}

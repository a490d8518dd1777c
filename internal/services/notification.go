package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventportal/internal/domain"
)

type notificationService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	siteURL  string
	inbox    string
	logger   *slog.Logger
}

// NewNotificationService returns a NotificationService that renders embedded
// templates and sends through the given Mailer. siteURL builds links in
// outgoing mail; inbox receives contact messages and speaker applications.
func NewNotificationService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, siteURL, inbox string, logger *slog.Logger) domain.NotificationService {
	return &notificationService{
		mailer:   mailer,
		renderer: renderer,
		siteURL:  siteURL,
		inbox:    inbox,
		logger:   logger,
	}
}

// SendReservationConfirmation mails the attendee their confirmation code.
func (s *notificationService) SendReservationConfirmation(ctx context.Context, res *domain.Reservation, event *domain.EventRecord) error {
	data := &domain.ReservationEmailData{
		FirstName:        res.FirstName,
		ConfirmationCode: res.ConfirmationCode,
		EventTitle:       res.EventTitle,
	}
	if event != nil {
		if event.Slug != "" {
			data.EventURL = fmt.Sprintf("%s/events/%s", s.siteURL, event.Slug)
		}
		if !event.StartDate.IsZero() {
			data.StartDate = event.StartDate.Format("Monday, 2 January 2006 15:04")
		}
	}
	subject, htmlBody, textBody, err := s.renderer.Render("reservation", data)
	if err != nil {
		return fmt.Errorf("failed to render reservation template: %w", err)
	}
	if err := s.mailer.Send(res.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send reservation email: %w", err)
	}
	s.logger.Info("reservation confirmation sent", "email", res.Email, "event", res.EventSlug)
	return nil
}

// SendContactMessage forwards a contact message to the site inbox and sends a
// best-effort acknowledgment to the sender.
func (s *notificationService) SendContactMessage(ctx context.Context, data *domain.ContactEmailData) error {
	if data == nil {
		return fmt.Errorf("contact message data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact_inbox", data)
	if err != nil {
		return fmt.Errorf("failed to render contact_inbox template: %w", err)
	}
	if err := s.mailer.Send(s.inbox, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	// Acknowledgment to the sender is nice-to-have: the inbox copy already
	// succeeded, so a failure here only gets logged.
	if ackSubject, ackHTML, ackText, err := s.renderer.Render("contact_ack", data); err == nil {
		if err := s.mailer.Send(data.Email, ackSubject, ackHTML, ackText); err != nil {
			s.logger.Warn("contact acknowledgment failed", "email", data.Email, "err", err)
		}
	}
	return nil
}

// SendSpeakerApplication forwards a speaker application to the site inbox.
func (s *notificationService) SendSpeakerApplication(ctx context.Context, data *domain.SpeakerApplicationEmailData) error {
	if data == nil {
		return fmt.Errorf("speaker application data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("speaker_application", data)
	if err != nil {
		return fmt.Errorf("failed to render speaker_application template: %w", err)
	}
	if err := s.mailer.Send(s.inbox, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send speaker application email: %w", err)
	}
	return nil
}

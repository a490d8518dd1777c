package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"eventportal/internal/domain"
)

type submissionService struct {
	notifier domain.NotificationService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewSubmissionService handles the contact and speaker-application forms.
// Like the reservation coordinator, it returns structured results only.
func NewSubmissionService(notifier domain.NotificationService, logger *slog.Logger) domain.SubmissionService {
	return &submissionService{
		notifier: notifier,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *submissionService) SubmitContactMessage(ctx context.Context, msg domain.ContactMessage) domain.SubmissionResult {
	var missing []string
	if strings.TrimSpace(msg.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(msg.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(msg.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return domain.SubmissionResult{Message: "missing required fields: " + strings.Join(missing, ", ")}
	}
	if err := s.validate.Var(msg.Email, "required,email"); err != nil {
		return domain.SubmissionResult{Message: "invalid email address"}
	}

	subject := strings.TrimSpace(msg.Subject)
	if subject == "" {
		subject = "Website contact"
	}
	data := &domain.ContactEmailData{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.TrimSpace(msg.Email),
		Subject: subject,
		Message: strings.TrimSpace(msg.Message),
	}
	if err := s.notifier.SendContactMessage(ctx, data); err != nil {
		s.logger.Warn("contact message delivery failed", "email", data.Email, "err", err)
		return domain.SubmissionResult{
			Success: true,
			Message: "message received; delivery to our inbox is delayed",
		}
	}
	return domain.SubmissionResult{Success: true, Message: "message sent", EmailSent: true}
}

func (s *submissionService) SubmitSpeakerApplication(ctx context.Context, app domain.SpeakerApplication) domain.SubmissionResult {
	var missing []string
	if strings.TrimSpace(app.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(app.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(app.TalkTitle) == "" {
		missing = append(missing, "talkTitle")
	}
	if strings.TrimSpace(app.Abstract) == "" {
		missing = append(missing, "abstract")
	}
	if len(missing) > 0 {
		return domain.SubmissionResult{Message: "missing required fields: " + strings.Join(missing, ", ")}
	}
	if err := s.validate.Var(app.Email, "required,email"); err != nil {
		return domain.SubmissionResult{Message: "invalid email address"}
	}

	data := &domain.SpeakerApplicationEmailData{
		Name:      strings.TrimSpace(app.Name),
		Email:     strings.TrimSpace(app.Email),
		Company:   strings.TrimSpace(app.Company),
		TalkTitle: strings.TrimSpace(app.TalkTitle),
		Abstract:  strings.TrimSpace(app.Abstract),
		Bio:       strings.TrimSpace(app.Bio),
	}
	if err := s.notifier.SendSpeakerApplication(ctx, data); err != nil {
		s.logger.Warn("speaker application delivery failed", "email", data.Email, "err", err)
		return domain.SubmissionResult{
			Success: true,
			Message: "application received; delivery to our inbox is delayed",
		}
	}
	return domain.SubmissionResult{Success: true, Message: "application submitted", EmailSent: true}
}

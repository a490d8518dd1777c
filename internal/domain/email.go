package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ReservationEmailData holds data for the reservation confirmation email.
type ReservationEmailData struct {
	FirstName        string
	ConfirmationCode string
	EventTitle       string
	EventURL         string
	StartDate        string
}

// ContactEmailData holds data for contact-form emails (inbox copy and sender
// acknowledgment).
type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SpeakerApplicationEmailData holds data for the speaker application inbox email.
type SpeakerApplicationEmailData struct {
	Name      string
	Email     string
	Company   string
	TalkTitle string
	Abstract  string
	Bio       string
}

// NotificationService sends the portal's transactional emails. Sends are
// best-effort: callers record failures but never roll back on them.
type NotificationService interface {
	SendReservationConfirmation(ctx context.Context, res *Reservation, event *EventRecord) error
	SendContactMessage(ctx context.Context, data *ContactEmailData) error
	SendSpeakerApplication(ctx context.Context, data *SpeakerApplicationEmailData) error
}

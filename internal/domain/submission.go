package domain

import "context"

// ContactMessage is an inbound contact-form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// SpeakerApplication is an inbound speaker-application submission.
type SpeakerApplication struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	TalkTitle string `json:"talkTitle"`
	Abstract  string `json:"abstract"`
	Bio       string `json:"bio,omitempty"`
}

// SubmissionResult is the structured outcome of a form submission.
type SubmissionResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EmailSent bool   `json:"emailSent"`
}

// SubmissionService handles the portal's non-reservation visitor forms.
type SubmissionService interface {
	SubmitContactMessage(ctx context.Context, msg ContactMessage) SubmissionResult
	SubmitSpeakerApplication(ctx context.Context, app SpeakerApplication) SubmissionResult
}

package email

import (
	"strings"
	"testing"

	"eventportal/internal/domain"
)

func TestRenderReservation(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.ReservationEmailData{
		FirstName:        "Ana",
		ConfirmationCode: "AB12CD",
		EventTitle:       "Go Conf",
		EventURL:         "https://portal.example.com/events/go-conf",
		StartDate:        "Thursday, 12 November 2026 09:00",
	}

	subject, html, text, err := r.Render("reservation", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(subject, "Go Conf") {
		t.Errorf("subject = %q", subject)
	}
	for _, body := range []string{html, text} {
		if !strings.Contains(body, "AB12CD") {
			t.Errorf("confirmation code missing from body:\n%s", body)
		}
		if !strings.Contains(body, "Ana") {
			t.Errorf("first name missing from body:\n%s", body)
		}
	}
}

func TestRenderAllTemplates(t *testing.T) {
	r := NewTemplateRenderer()
	tests := []struct {
		name string
		data any
	}{
		{"reservation", &domain.ReservationEmailData{FirstName: "Ana", ConfirmationCode: "AB12CD", EventTitle: "Go Conf"}},
		{"contact_inbox", &domain.ContactEmailData{Name: "Ana", Email: "ana@example.com", Subject: "Hello", Message: "Hi"}},
		{"contact_ack", &domain.ContactEmailData{Name: "Ana", Subject: "Hello"}},
		{"speaker_application", &domain.SpeakerApplicationEmailData{Name: "Ben", Email: "ben@example.com", TalkTitle: "Scaling"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, html, text, err := r.Render(tt.name, tt.data)
			if err != nil {
				t.Fatalf("render %s: %v", tt.name, err)
			}
			if subject == "" || html == "" || text == "" {
				t.Errorf("empty output: subject=%q html=%d bytes text=%d bytes", subject, len(html), len(text))
			}
		})
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	if _, _, _, err := r.Render("nope", nil); err == nil {
		t.Error("unknown template must fail")
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.ContactEmailData{
		Name:    "<script>alert(1)</script>",
		Email:   "a@example.com",
		Subject: "s",
		Message: "m",
	}
	_, html, _, err := r.Render("contact_inbox", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("html body must escape user input")
	}
}

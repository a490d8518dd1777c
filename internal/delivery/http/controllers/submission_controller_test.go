package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventportal/internal/delivery/http/helpers"
	"eventportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubmissionService implements domain.SubmissionService for handler tests.
type fakeSubmissionService struct {
	contactResult   domain.SubmissionResult
	applyResult     domain.SubmissionResult
	lastContact     domain.ContactMessage
	lastApplication domain.SpeakerApplication
}

func (f *fakeSubmissionService) SubmitContactMessage(ctx context.Context, msg domain.ContactMessage) domain.SubmissionResult {
	f.lastContact = msg
	return f.contactResult
}

func (f *fakeSubmissionService) SubmitSpeakerApplication(ctx context.Context, app domain.SpeakerApplication) domain.SubmissionResult {
	f.lastApplication = app
	return f.applyResult
}

func TestSubmissionController_SubmitContact(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		result     domain.SubmissionResult
		wantStatus int
	}{
		{
			name:       "sent",
			body:       `{"name":"Ana","email":"ana@example.com","message":"Hi"}`,
			result:     domain.SubmissionResult{Success: true, Message: "message sent", EmailSent: true},
			wantStatus: http.StatusOK,
		},
		{
			name:       "rejected",
			body:       `{"email":"ana@example.com"}`,
			result:     domain.SubmissionResult{Message: "missing required fields: name, message"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSubmissionService{contactResult: tt.result}
			ctrl := NewSubmissionController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.SubmitContact(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			require.Nil(t, envelope.Error)

			dataBytes, err := json.Marshal(envelope.Data)
			require.NoError(t, err)
			var result domain.SubmissionResult
			require.NoError(t, json.Unmarshal(dataBytes, &result))
			assert.Equal(t, tt.result.Success, result.Success)
			assert.Equal(t, tt.result.Message, result.Message)
		})
	}
}

func TestSubmissionController_SubmitSpeakerApplication(t *testing.T) {
	fake := &fakeSubmissionService{applyResult: domain.SubmissionResult{Success: true, Message: "application submitted", EmailSent: true}}
	ctrl := NewSubmissionController(testLogger, fake)
	body := `{"name":"Ben","email":"ben@example.com","talkTitle":"Scaling Things","abstract":"How we scaled."}`
	req := httptest.NewRequest(http.MethodPost, "/speaker-applications", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	ctrl.SubmitSpeakerApplication(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Scaling Things", fake.lastApplication.TalkTitle)

	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
}

func TestSubmissionController_SubmitSpeakerApplicationBadBody(t *testing.T) {
	ctrl := NewSubmissionController(testLogger, &fakeSubmissionService{})
	req := httptest.NewRequest(http.MethodPost, "/speaker-applications", bytes.NewBufferString(`not json`))
	rr := httptest.NewRecorder()

	ctrl.SubmitSpeakerApplication(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeBadRequest, envelope.Error.Code)
}

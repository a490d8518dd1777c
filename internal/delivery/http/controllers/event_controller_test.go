package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventportal/internal/delivery/http/helpers"
	"eventportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeContentService implements domain.ContentService for handler tests.
type fakeContentService struct {
	events      []domain.EventRecord
	speakers    []domain.SpeakerRecord
	getEventErr error
	event       *domain.EventRecord
	speaker     *domain.SpeakerRecord
	getSpkErr   error

	lastEventFilter   domain.EventFilter
	lastSpeakerFilter domain.SpeakerFilter
	lastSecret        string
	lastQuery         domain.ContentQuery
}

func (f *fakeContentService) ListEvents(ctx context.Context, q domain.ContentQuery, filter domain.EventFilter, secret string) domain.Connection[domain.EventRecord] {
	f.lastQuery, f.lastEventFilter, f.lastSecret = q, filter, secret
	return domain.NewConnection(f.events, q.PerPage, "")
}

func (f *fakeContentService) GetEvent(ctx context.Context, slug, secret string) (*domain.EventRecord, error) {
	f.lastSecret = secret
	if f.getEventErr != nil {
		return nil, f.getEventErr
	}
	return f.event, nil
}

func (f *fakeContentService) ListSpeakers(ctx context.Context, q domain.ContentQuery, filter domain.SpeakerFilter, secret string) domain.Connection[domain.SpeakerRecord] {
	f.lastQuery, f.lastSpeakerFilter, f.lastSecret = q, filter, secret
	return domain.NewConnection(f.speakers, q.PerPage, "")
}

func (f *fakeContentService) GetSpeaker(ctx context.Context, slug, secret string) (*domain.SpeakerRecord, error) {
	f.lastSecret = secret
	if f.getSpkErr != nil {
		return nil, f.getSpkErr
	}
	return f.speaker, nil
}

func TestEventController_ListEvents(t *testing.T) {
	fake := &fakeContentService{events: []domain.EventRecord{
		{ID: "e1", Slug: "conf", Title: "Go Conference"},
	}}
	ctrl := NewEventController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/events?category=conference&city=berlin&free=true&search=go&secret=s3cret&per_page=5", nil)
	rr := httptest.NewRecorder()

	ctrl.ListEvents(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, "status code")
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	require.Nil(t, envelope.Error, "success response must have error nil")

	assert.Equal(t, domain.EventFilter{Category: "conference", City: "berlin", Search: "go", FreeOnly: true}, fake.lastEventFilter)
	assert.Equal(t, "s3cret", fake.lastSecret)
	assert.Equal(t, 5, fake.lastQuery.PerPage)

	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var conn domain.Connection[domain.EventRecord]
	require.NoError(t, json.Unmarshal(dataBytes, &conn))
	require.Len(t, conn.Nodes, 1)
	assert.Equal(t, "conf", conn.Nodes[0].Slug)
}

func TestEventController_GetEventBySlug(t *testing.T) {
	tests := []struct {
		name           string
		slug           string
		fake           *fakeContentService
		wantStatus     int
		wantErrCode    string
		wantBodySubstr string
	}{
		{
			name:       "found",
			slug:       "conf",
			fake:       &fakeContentService{event: &domain.EventRecord{ID: "e1", Slug: "conf", Title: "Go Conference"}},
			wantStatus: http.StatusOK,
		},
		{
			name:           "not found",
			slug:           "nope",
			fake:           &fakeContentService{getEventErr: domain.ErrNotFound},
			wantStatus:     http.StatusNotFound,
			wantErrCode:    helpers.ErrCodeNotFound,
			wantBodySubstr: "event not found",
		},
		{
			name:        "missing slug",
			slug:        "",
			fake:        &fakeContentService{},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodGet, "/events/"+tt.slug, nil)
			req.SetPathValue("slug", tt.slug)
			rr := httptest.NewRecorder()

			ctrl.GetEventBySlug(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var event domain.EventRecord
				require.NoError(t, json.Unmarshal(dataBytes, &event))
				assert.Equal(t, tt.slug, event.Slug)
				return
			}
			require.NotNil(t, envelope.Error, "error response must have error set")
			assert.Equal(t, tt.wantErrCode, envelope.Error.Code)
			if tt.wantBodySubstr != "" {
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

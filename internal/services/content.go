package services

import (
	"context"
	"crypto/subtle"

	"eventportal/internal/domain"
)

type contentService struct {
	gateway       domain.ContentGateway
	previewSecret string
}

// NewContentService creates a ContentService over the given gateway.
// previewSecret may be empty, which disables preview mode entirely.
func NewContentService(gateway domain.ContentGateway, previewSecret string) domain.ContentService {
	return &contentService{gateway: gateway, previewSecret: previewSecret}
}

// previewAllowed reports whether the supplied secret enables draft access.
func (s *contentService) previewAllowed(secret string) bool {
	if s.previewSecret == "" || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(s.previewSecret)) == 1
}

func (s *contentService) ListEvents(ctx context.Context, q domain.ContentQuery, f domain.EventFilter, secret string) domain.Connection[domain.EventRecord] {
	q.Preview = s.previewAllowed(secret)
	q.Category = f.Category
	q.City = f.City
	conn := s.gateway.GetEvents(ctx, q)
	// The gateway handles category/city natively where it can; the remaining
	// criteria are refined here, in memory.
	if f.Search != "" || f.FreeOnly {
		conn.Nodes = domain.FilterEvents(conn.Nodes, domain.EventFilter{Search: f.Search, FreeOnly: f.FreeOnly})
	}
	return conn
}

func (s *contentService) GetEvent(ctx context.Context, slug, secret string) (*domain.EventRecord, error) {
	return s.gateway.GetEventBySlug(ctx, slug, s.previewAllowed(secret))
}

func (s *contentService) ListSpeakers(ctx context.Context, q domain.ContentQuery, f domain.SpeakerFilter, secret string) domain.Connection[domain.SpeakerRecord] {
	q.Preview = s.previewAllowed(secret)
	conn := s.gateway.GetSpeakers(ctx, q)
	conn.Nodes = domain.FilterSpeakers(conn.Nodes, f)
	return conn
}

func (s *contentService) GetSpeaker(ctx context.Context, slug, secret string) (*domain.SpeakerRecord, error) {
	return s.gateway.GetSpeakerBySlug(ctx, slug, s.previewAllowed(secret))
}

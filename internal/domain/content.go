package domain

import "context"

// ContentQuery narrows a collection fetch. Zero values are no-ops.
type ContentQuery struct {
	PerPage  int
	Page     int
	Search   string
	Slug     string
	Category string
	City     string
	// Preview includes draft/unpublished content and forces a fresh,
	// authenticated upstream fetch.
	Preview bool
}

// ContentGateway resolves events and speakers against the upstream CMS with a
// fallback chain behind it. Collection fetches never fail: every path returns
// a valid (possibly mock) collection. Single-item lookups return ErrNotFound
// only when the slug or id matches nothing in any tier.
type ContentGateway interface {
	GetEvents(ctx context.Context, q ContentQuery) Connection[EventRecord]
	GetSpeakers(ctx context.Context, q ContentQuery) Connection[SpeakerRecord]
	GetEventBySlug(ctx context.Context, slug string, preview bool) (*EventRecord, error)
	GetEventByID(ctx context.Context, id string) (*EventRecord, error)
	GetSpeakerBySlug(ctx context.Context, slug string, preview bool) (*SpeakerRecord, error)
}

// ContentService is the read surface the delivery layer talks to. The secret
// argument enables preview mode when it matches the configured value; any
// other value (including empty) serves published content only.
type ContentService interface {
	ListEvents(ctx context.Context, q ContentQuery, f EventFilter, secret string) Connection[EventRecord]
	GetEvent(ctx context.Context, slug, secret string) (*EventRecord, error)
	ListSpeakers(ctx context.Context, q ContentQuery, f SpeakerFilter, secret string) Connection[SpeakerRecord]
	GetSpeaker(ctx context.Context, slug, secret string) (*SpeakerRecord, error)
}

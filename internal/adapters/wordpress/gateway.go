package wordpress

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventportal/internal/domain"
)

// Content type slugs for the two transport strategies. The custom endpoints
// exist when the content types are registered upstream; the generic endpoint
// always exists and carries the same records with custom fields under meta.
const (
	eventType   = "events"
	speakerType = "speakers"
	genericType = "posts"
)

// DefaultCacheTTL is how long non-preview collection responses are reused.
// Content changes infrequently; an hour of staleness is acceptable.
const DefaultCacheTTL = time.Hour

// provider is one tier of the fallback chain: it returns records or a failure
// value. Failures select the next tier; they are never surfaced to callers.
type provider[T any] func(ctx context.Context) ([]T, error)

// resolve evaluates providers in order and returns the first non-empty
// success. Each tier runs exactly once. The final tier is expected to be
// infallible (the fixed dataset), so resolve always returns data when it is.
func resolve[T any](ctx context.Context, logger *slog.Logger, name string, providers []provider[T]) []T {
	for i, p := range providers {
		records, err := p(ctx)
		if err != nil {
			logger.Warn("content tier failed, falling back", "collection", name, "tier", i, "err", err)
			continue
		}
		if len(records) == 0 && i < len(providers)-1 {
			continue
		}
		return records
	}
	return nil
}

// Gateway resolves events and speakers through the fallback chain: custom
// content-type endpoint, then the generic endpoint, then the fixed in-process
// dataset. It implements domain.ContentGateway.
type Gateway struct {
	client *Client
	logger *slog.Logger
	cache  *ttlCache
}

// NewGateway returns a Gateway over the given client. Non-preview responses
// are cached for DefaultCacheTTL.
func NewGateway(client *Client, logger *slog.Logger) *Gateway {
	return &Gateway{
		client: client,
		logger: logger,
		cache:  newTTLCache(DefaultCacheTTL),
	}
}

// GetEvents fetches a page of events. It never fails: the worst case is the
// fixed dataset filtered client-side.
func (g *Gateway) GetEvents(ctx context.Context, q domain.ContentQuery) domain.Connection[domain.EventRecord] {
	key := cacheKey(eventType, q)
	if !q.Preview {
		if cached, ok := cacheGet[domain.Connection[domain.EventRecord]](g.cache, key); ok {
			return cached
		}
	}

	events := resolve(ctx, g.logger, eventType, []provider[domain.EventRecord]{
		g.eventProvider(eventType, q),
		g.eventProvider(genericType, q),
		func(ctx context.Context) ([]domain.EventRecord, error) {
			return domain.FilterEvents(MockEvents(), domain.EventFilter{
				Category: q.Category,
				City:     q.City,
				Search:   q.Search,
			}), nil
		},
	})

	// Client-side refinement for filters the upstream cannot evaluate.
	events = domain.FilterEvents(events, domain.EventFilter{Category: q.Category, City: q.City})
	conn := domain.NewConnection(events, q.PerPage, lastEventCursor(events))
	if !q.Preview {
		g.cache.put(key, conn)
	}
	return conn
}

// GetSpeakers fetches a page of speakers under the same fallback rules as
// GetEvents.
func (g *Gateway) GetSpeakers(ctx context.Context, q domain.ContentQuery) domain.Connection[domain.SpeakerRecord] {
	key := cacheKey(speakerType, q)
	if !q.Preview {
		if cached, ok := cacheGet[domain.Connection[domain.SpeakerRecord]](g.cache, key); ok {
			return cached
		}
	}

	speakers := resolve(ctx, g.logger, speakerType, []provider[domain.SpeakerRecord]{
		g.speakerProvider(speakerType, q),
		g.speakerProvider(genericType, q),
		func(ctx context.Context) ([]domain.SpeakerRecord, error) {
			return domain.FilterSpeakers(MockSpeakers(), domain.SpeakerFilter{Search: q.Search}), nil
		},
	})

	conn := domain.NewConnection(speakers, q.PerPage, lastSpeakerCursor(speakers))
	if !q.Preview {
		g.cache.put(key, conn)
	}
	return conn
}

// GetEventBySlug resolves one event by slug: both network tiers, then a scan
// of the fixed dataset. Preview bypasses the cache and authenticates upstream.
func (g *Gateway) GetEventBySlug(ctx context.Context, slug string, preview bool) (*domain.EventRecord, error) {
	q := domain.ContentQuery{Slug: slug, PerPage: 1, Preview: preview}
	events := resolve(ctx, g.logger, eventType, []provider[domain.EventRecord]{
		g.eventProvider(eventType, q),
		g.eventProvider(genericType, q),
		func(ctx context.Context) ([]domain.EventRecord, error) {
			for _, e := range MockEvents() {
				if e.Slug == slug {
					return []domain.EventRecord{e}, nil
				}
			}
			return nil, nil
		},
	})
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}
	return &events[0], nil
}

// GetEventByID resolves one event by upstream id, falling back to a scan of
// the fixed dataset.
func (g *Gateway) GetEventByID(ctx context.Context, id string) (*domain.EventRecord, error) {
	for _, contentType := range []string{eventType, genericType} {
		raw, err := g.client.FetchByID(ctx, contentType, id)
		if err != nil {
			g.logger.Warn("content tier failed, falling back", "collection", eventType, "id", id, "err", err)
			continue
		}
		event := ToEvent(*raw)
		return &event, nil
	}
	for _, e := range MockEvents() {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetSpeakerBySlug resolves one speaker by slug under the same rules as
// GetEventBySlug.
func (g *Gateway) GetSpeakerBySlug(ctx context.Context, slug string, preview bool) (*domain.SpeakerRecord, error) {
	q := domain.ContentQuery{Slug: slug, PerPage: 1, Preview: preview}
	speakers := resolve(ctx, g.logger, speakerType, []provider[domain.SpeakerRecord]{
		g.speakerProvider(speakerType, q),
		g.speakerProvider(genericType, q),
		func(ctx context.Context) ([]domain.SpeakerRecord, error) {
			for _, s := range MockSpeakers() {
				if s.Slug == slug {
					return []domain.SpeakerRecord{s}, nil
				}
			}
			return nil, nil
		},
	})
	if len(speakers) == 0 {
		return nil, domain.ErrNotFound
	}
	return &speakers[0], nil
}

func (g *Gateway) eventProvider(contentType string, q domain.ContentQuery) provider[domain.EventRecord] {
	return func(ctx context.Context) ([]domain.EventRecord, error) {
		raws, err := g.client.FetchCollection(ctx, contentType, clientQuery(q))
		if err != nil {
			return nil, err
		}
		events := make([]domain.EventRecord, 0, len(raws))
		for _, raw := range raws {
			events = append(events, ToEvent(raw))
		}
		return events, nil
	}
}

func (g *Gateway) speakerProvider(contentType string, q domain.ContentQuery) provider[domain.SpeakerRecord] {
	return func(ctx context.Context) ([]domain.SpeakerRecord, error) {
		raws, err := g.client.FetchCollection(ctx, contentType, clientQuery(q))
		if err != nil {
			return nil, err
		}
		speakers := make([]domain.SpeakerRecord, 0, len(raws))
		for _, raw := range raws {
			speakers = append(speakers, ToSpeaker(raw))
		}
		return speakers, nil
	}
}

func clientQuery(q domain.ContentQuery) Query {
	return Query{
		PerPage: q.PerPage,
		Page:    q.Page,
		Slug:    q.Slug,
		Search:  q.Search,
		Preview: q.Preview,
	}
}

func lastEventCursor(events []domain.EventRecord) string {
	if len(events) == 0 {
		return ""
	}
	return events[len(events)-1].Slug
}

func lastSpeakerCursor(speakers []domain.SpeakerRecord) string {
	if len(speakers) == 0 {
		return ""
	}
	return speakers[len(speakers)-1].Slug
}

func cacheKey(collection string, q domain.ContentQuery) string {
	return fmt.Sprintf("%s|%d|%d|%s|%s|%s|%s", collection, q.PerPage, q.Page, q.Slug, q.Search, q.Category, q.City)
}

// ttlCache is a small in-process cache for non-preview responses. Entries
// expire after the TTL; there is no eviction beyond that, which is fine for
// the handful of distinct listing queries a portal serves.
type ttlCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value   any
	expires time.Time
}

func newTTLCache(ttl time.Duration) *ttlCache {
	return &ttlCache{ttl: ttl, entries: make(map[string]cacheEntry)}
}

func (c *ttlCache) put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expires: time.Now().Add(c.ttl)}
}

func (c *ttlCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func cacheGet[T any](c *ttlCache, key string) (T, bool) {
	var zero T
	v, ok := c.get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a record cannot be resolved by id or slug.
var ErrNotFound = errors.New("not found")

// TermRef is a normalized taxonomy reference (category, city). Upstream may
// send either a bare name string or a {name, slug} object; the adapter resolves
// both to this shape so downstream code never re-discriminates.
type TermRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewTermRef builds a TermRef from a bare name, deriving the slug from it.
func NewTermRef(name string) TermRef {
	return TermRef{Name: name, Slug: Slugify(name)}
}

// Slugify lowercases s and replaces whitespace runs with single dashes.
func Slugify(s string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	return strings.Join(fields, "-")
}

// Image is a featured image with a resolvable URL. Records whose upstream
// image reference lacks a URL carry no Image at all rather than a synthesized one.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// EventRecord is the canonical event shape produced by the content adapter.
// swagger:model EventRecord
type EventRecord struct {
	ID                   string    `json:"id"`
	Slug                 string    `json:"slug"`
	Title                string    `json:"title"`
	Excerpt              string    `json:"excerpt"`
	Content              string    `json:"content"`
	FeaturedImage        *Image    `json:"featured_image,omitempty"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	MaxAttendees         int       `json:"max_attendees"`
	CurrentAttendees     int       `json:"current_attendees"`
	Category             TermRef   `json:"category"`
	City                 TermRef   `json:"city"`
	Price                float64   `json:"price"`
	IsFree               bool      `json:"is_free"`
}

// HasCapacity reports whether at least one seat is still available.
func (e *EventRecord) HasCapacity() bool {
	return e.CurrentAttendees < e.MaxAttendees
}

// RegistrationOpen reports whether now is before the registration deadline.
// A zero deadline means the upstream never set one; registration stays open.
func (e *EventRecord) RegistrationOpen(now time.Time) bool {
	if e.RegistrationDeadline.IsZero() {
		return true
	}
	return now.Before(e.RegistrationDeadline)
}

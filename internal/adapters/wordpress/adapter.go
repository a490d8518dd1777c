package wordpress

import (
	"time"

	"eventportal/internal/domain"
)

// dateLayouts are the timestamp formats seen in upstream custom fields, in
// order of preference.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"20060102",
}

// parseDate parses an upstream timestamp, returning the zero time for empty
// or unparseable input. Date anomalies are display concerns, not errors.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ToEvent maps one raw upstream record to the canonical EventRecord. It is
// pure and total: missing optional fields map to zero values, an absent id or
// slug maps to the empty string, and no input shape makes it fail.
func ToEvent(raw RawRecord) domain.EventRecord {
	f := raw.fields()
	price := float64(f.Price)
	if price < 0 {
		price = 0
	}
	e := domain.EventRecord{
		ID:                   string(raw.ID),
		Slug:                 raw.Slug,
		Title:                string(raw.Title),
		Excerpt:              string(raw.Excerpt),
		Content:              string(raw.Content),
		FeaturedImage:        featuredImage(raw.Embedded),
		StartDate:            parseDate(f.StartDate),
		EndDate:              parseDate(f.EndDate),
		RegistrationDeadline: parseDate(f.RegistrationDeadline),
		MaxAttendees:         clampNonNegative(int(f.MaxAttendees)),
		CurrentAttendees:     clampNonNegative(int(f.CurrentAttendees)),
		Category:             resolveTerm(f.Category, raw.Embedded, "event_category", "category"),
		City:                 resolveTerm(f.City, raw.Embedded, "event_city", "city"),
		Price:                price,
	}
	// Occupancy above capacity is an upstream data error; clamp so the
	// capacity invariant holds for every record leaving this boundary.
	if e.CurrentAttendees > e.MaxAttendees {
		e.CurrentAttendees = e.MaxAttendees
	}
	e.IsFree = e.Price <= 0
	return e
}

// ToSpeaker maps one raw upstream record to the canonical SpeakerRecord,
// under the same totality rules as ToEvent.
func ToSpeaker(raw RawRecord) domain.SpeakerRecord {
	f := raw.fields()
	expertise := []string(f.Expertises)
	if expertise == nil {
		expertise = []string{}
	}
	return domain.SpeakerRecord{
		ID:        string(raw.ID),
		Slug:      raw.Slug,
		Title:     string(raw.Title),
		Bio:       string(raw.Content),
		Company:   f.Company,
		JobTitle:  f.JobTitle,
		Location:  f.Location,
		Email:     f.Email,
		Phone:     f.Phone,
		Website:   f.Website,
		Expertise: expertise,
		Social: domain.SocialLinks{
			LinkedIn: f.LinkedIn,
			Twitter:  f.Twitter,
			GitHub:   f.GitHub,
			Website:  f.Website,
			YouTube:  f.YouTube,
		},
		Availability:    f.Availability,
		ExperienceYears: clampNonNegative(int(f.ExperienceYears)),
		Skills:          richListOrEmpty(f.Skills),
		Achievements:    richListOrEmpty(f.Achievements),
		Certifications:  richListOrEmpty(f.Certifications),
		PopularTalks:    richListOrEmpty(f.PopularTalks),
		FeaturedImage:   featuredImage(raw.Embedded),
	}
}

// featuredImage returns the record's featured image, or nil when there is no
// embedded media or the reference lacks a resolvable URL. An image without a
// URL is omitted entirely, never synthesized.
func featuredImage(embedded *RawEmbedded) *domain.Image {
	if embedded == nil || len(embedded.FeaturedMedia) == 0 {
		return nil
	}
	media := embedded.FeaturedMedia[0]
	if media.SourceURL == "" {
		return nil
	}
	return &domain.Image{URL: media.SourceURL, Alt: media.AltText}
}

// resolveTerm picks the taxonomy value: an explicit custom-field value wins,
// otherwise the first embedded term whose taxonomy matches one of the given
// names. Both the "already-the-object" and "first element of a terms list"
// shapes are accepted.
func resolveTerm(explicit *FlexTerm, embedded *RawEmbedded, taxonomies ...string) domain.TermRef {
	if explicit != nil && (explicit.Name != "" || explicit.Slug != "") {
		return domain.TermRef(*explicit)
	}
	if embedded == nil {
		return domain.TermRef{}
	}
	for _, group := range embedded.Terms {
		for _, term := range group {
			for _, tax := range taxonomies {
				if term.Taxonomy == tax && term.Name != "" {
					slug := term.Slug
					if slug == "" {
						slug = domain.Slugify(term.Name)
					}
					return domain.TermRef{Name: term.Name, Slug: slug}
				}
			}
		}
	}
	return domain.TermRef{}
}

func richListOrEmpty(l RichList) []domain.RichItem {
	if l == nil {
		return []domain.RichItem{}
	}
	return []domain.RichItem(l)
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

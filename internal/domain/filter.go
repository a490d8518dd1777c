package domain

import (
	"strconv"
	"strings"
)

// ExperienceUnbounded is the sentinel upper bound meaning "no upper bound" in
// an experience range such as "10-100".
const ExperienceUnbounded = 100

// SpeakerFilter is a set of client-side criteria applied to speakers already
// fetched, for filters the upstream cannot evaluate natively. Criteria compose
// with AND; empty or "all" values are no-ops. Matching is case-insensitive
// substring containment except Availability (exact) and Experience (numeric
// range, inclusive).
type SpeakerFilter struct {
	Expertise    string
	Company      string
	Location     string
	Search       string
	Availability string
	// Experience is a "min-max" range; max of 100 means unbounded.
	Experience string
}

// EventFilter is the event counterpart of SpeakerFilter.
type EventFilter struct {
	Category string
	City     string
	Search   string
	FreeOnly bool
}

// FilterSpeakers returns the speakers matching every non-empty criterion,
// preserving original order. The input slice is never mutated.
func FilterSpeakers(speakers []SpeakerRecord, f SpeakerFilter) []SpeakerRecord {
	out := make([]SpeakerRecord, 0, len(speakers))
	for _, s := range speakers {
		if speakerMatches(&s, f) {
			out = append(out, s)
		}
	}
	return out
}

func speakerMatches(s *SpeakerRecord, f SpeakerFilter) bool {
	if isSet(f.Expertise) && !containsAny(s.Expertise, f.Expertise) {
		return false
	}
	if isSet(f.Company) && !containsFold(s.Company, f.Company) {
		return false
	}
	if isSet(f.Location) && !containsFold(s.Location, f.Location) {
		return false
	}
	if isSet(f.Availability) && !strings.EqualFold(s.Availability, f.Availability) {
		return false
	}
	if isSet(f.Experience) {
		min, max, ok := parseExperienceRange(f.Experience)
		if ok && (s.ExperienceYears < min || (max < ExperienceUnbounded && s.ExperienceYears > max)) {
			return false
		}
	}
	if isSet(f.Search) && !speakerFreeTextMatch(s, f.Search) {
		return false
	}
	return true
}

// speakerFreeTextMatch searches title, bio, company, job title, expertise and
// skills for the query.
func speakerFreeTextMatch(s *SpeakerRecord, query string) bool {
	if containsFold(s.Title, query) ||
		containsFold(s.Bio, query) ||
		containsFold(s.Company, query) ||
		containsFold(s.JobTitle, query) {
		return true
	}
	if containsAny(s.Expertise, query) {
		return true
	}
	for _, item := range s.Skills {
		if containsFold(item.Title, query) || containsFold(item.Description, query) {
			return true
		}
	}
	return false
}

// FilterEvents returns the events matching every non-empty criterion,
// preserving original order.
func FilterEvents(events []EventRecord, f EventFilter) []EventRecord {
	out := make([]EventRecord, 0, len(events))
	for _, e := range events {
		if eventMatches(&e, f) {
			out = append(out, e)
		}
	}
	return out
}

func eventMatches(e *EventRecord, f EventFilter) bool {
	if isSet(f.Category) && !containsFold(e.Category.Name, f.Category) && !containsFold(e.Category.Slug, f.Category) {
		return false
	}
	if isSet(f.City) && !containsFold(e.City.Name, f.City) && !containsFold(e.City.Slug, f.City) {
		return false
	}
	if f.FreeOnly && !e.IsFree {
		return false
	}
	if isSet(f.Search) &&
		!containsFold(e.Title, f.Search) &&
		!containsFold(e.Excerpt, f.Search) &&
		!containsFold(e.Content, f.Search) {
		return false
	}
	return true
}

// parseExperienceRange parses "min-max" into inclusive bounds. A bare number
// is treated as "n-100". Returns ok=false for unparseable input, which callers
// treat as a no-op criterion.
func parseExperienceRange(s string) (min, max int, ok bool) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, "-", 2)
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	max = ExperienceUnbounded
	if len(parts) == 2 {
		max, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, false
		}
	}
	return min, max, true
}

func isSet(criterion string) bool {
	return criterion != "" && !strings.EqualFold(criterion, "all")
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsAny(values []string, needle string) bool {
	for _, v := range values {
		if containsFold(v, needle) {
			return true
		}
	}
	return false
}

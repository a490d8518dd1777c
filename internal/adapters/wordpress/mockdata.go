package wordpress

import (
	"time"

	"eventportal/internal/domain"
)

// The fixed dataset is the last tier of the fallback chain: when both network
// strategies fail, listings still render from here. The records are plausible
// enough to exercise every downstream code path (capacity, deadlines, filters).
//
// Accessors return copies so callers can never mutate the dataset.

var mockEvents = []domain.EventRecord{
	{
		ID:      "mock-event-1",
		Slug:    "go-conference-2026",
		Title:   "Go Conference 2026",
		Excerpt: "Two days of talks on services, tooling and the Go runtime.",
		Content: "<p>Join us for two days of talks on services, tooling and the Go runtime, with workshops on the side.</p>",
		FeaturedImage: &domain.Image{
			URL: "https://cdn.example.com/images/go-conference-2026.jpg",
			Alt: "Go Conference 2026 main stage",
		},
		StartDate:            time.Date(2026, 11, 12, 9, 0, 0, 0, time.UTC),
		EndDate:              time.Date(2026, 11, 13, 18, 0, 0, 0, time.UTC),
		RegistrationDeadline: time.Date(2026, 11, 5, 23, 59, 59, 0, time.UTC),
		MaxAttendees:         300,
		CurrentAttendees:     184,
		Category:             domain.TermRef{Name: "Conference", Slug: "conference"},
		City:                 domain.TermRef{Name: "Berlin", Slug: "berlin"},
		Price:                249,
	},
	{
		ID:                   "mock-event-2",
		Slug:                 "cloud-native-meetup",
		Title:                "Cloud Native Meetup",
		Excerpt:              "Monthly meetup on Kubernetes, observability and platform engineering.",
		Content:              "<p>An evening of lightning talks and hallway conversations about running things in production.</p>",
		StartDate:            time.Date(2026, 10, 7, 18, 30, 0, 0, time.UTC),
		EndDate:              time.Date(2026, 10, 7, 21, 30, 0, 0, time.UTC),
		RegistrationDeadline: time.Date(2026, 10, 6, 12, 0, 0, 0, time.UTC),
		MaxAttendees:         80,
		CurrentAttendees:     52,
		Category:             domain.TermRef{Name: "Meetup", Slug: "meetup"},
		City:                 domain.TermRef{Name: "Amsterdam", Slug: "amsterdam"},
		Price:                0,
		IsFree:               true,
	},
	{
		ID:                   "mock-event-3",
		Slug:                 "api-design-workshop",
		Title:                "API Design Workshop",
		Excerpt:              "Hands-on workshop on designing and evolving HTTP APIs.",
		Content:              "<p>A full-day, laptop-required workshop. Bring an API you are ashamed of.</p>",
		StartDate:            time.Date(2026, 9, 24, 9, 30, 0, 0, time.UTC),
		EndDate:              time.Date(2026, 9, 24, 17, 0, 0, 0, time.UTC),
		RegistrationDeadline: time.Date(2026, 9, 20, 23, 59, 59, 0, time.UTC),
		MaxAttendees:         24,
		CurrentAttendees:     24,
		Category:             domain.TermRef{Name: "Workshop", Slug: "workshop"},
		City:                 domain.TermRef{Name: "Berlin", Slug: "berlin"},
		Price:                129,
	},
}

var mockSpeakers = []domain.SpeakerRecord{
	{
		ID:              "mock-speaker-1",
		Slug:            "maria-jansen",
		Title:           "Maria Jansen",
		Bio:             "<p>Maria builds storage systems and talks about the scars.</p>",
		Company:         "Datavine",
		JobTitle:        "Principal Engineer",
		Location:        "Amsterdam",
		Expertise:       []string{"Distributed Systems", "Storage", "Go"},
		Social:          domain.SocialLinks{LinkedIn: "https://linkedin.com/in/maria-jansen", GitHub: "https://github.com/mariajansen"},
		Availability:    "available",
		ExperienceYears: 14,
		Skills:          []domain.RichItem{{Title: "Consensus protocols"}, {Title: "Performance analysis"}},
		Achievements:    []domain.RichItem{{Title: "Keynote, Storage Summit 2024"}},
		Certifications:  []domain.RichItem{},
		PopularTalks:    []domain.RichItem{{Title: "Your Database Is Lying To You", Description: "On consistency guarantees in practice"}},
	},
	{
		ID:              "mock-speaker-2",
		Slug:            "tomas-hradek",
		Title:           "Tomáš Hrádek",
		Bio:             "<p>Tomáš runs platform teams and writes about developer experience.</p>",
		Company:         "Shipyard",
		JobTitle:        "Head of Platform",
		Location:        "Prague",
		Expertise:       []string{"Platform Engineering", "Kubernetes"},
		Social:          domain.SocialLinks{Twitter: "https://twitter.com/tomashradek"},
		Availability:    "limited",
		ExperienceYears: 9,
		Skills:          []domain.RichItem{{Title: "Internal developer platforms"}},
		Achievements:    []domain.RichItem{},
		Certifications:  []domain.RichItem{{Title: "CKA"}},
		PopularTalks:    []domain.RichItem{},
	},
	{
		ID:              "mock-speaker-3",
		Slug:            "aisha-bello",
		Title:           "Aisha Bello",
		Bio:             "<p>Aisha works on API security and teaches threat modeling.</p>",
		Company:         "Lockstep Security",
		JobTitle:        "Security Researcher",
		Location:        "London",
		Expertise:       []string{"Security", "APIs", "Threat Modeling"},
		Social:          domain.SocialLinks{Website: "https://aishabello.example.com"},
		Availability:    "available",
		ExperienceYears: 7,
		Skills:          []domain.RichItem{{Title: "API threat modeling"}, {Title: "Secure code review"}},
		Achievements:    []domain.RichItem{{Title: "OWASP chapter lead"}},
		Certifications:  []domain.RichItem{},
		PopularTalks:    []domain.RichItem{{Title: "Everything Is An Injection"}},
	},
}

// MockEvents returns a copy of the fixed event dataset.
func MockEvents() []domain.EventRecord {
	out := make([]domain.EventRecord, len(mockEvents))
	copy(out, mockEvents)
	return out
}

// MockSpeakers returns a copy of the fixed speaker dataset.
func MockSpeakers() []domain.SpeakerRecord {
	out := make([]domain.SpeakerRecord, len(mockSpeakers))
	copy(out, mockSpeakers)
	return out
}

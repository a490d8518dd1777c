package domain

import (
	"testing"
)

func sampleSpeakers() []SpeakerRecord {
	return []SpeakerRecord{
		{
			ID:              "1",
			Slug:            "ana",
			Title:           "Ana Costa",
			Company:         "Datavine",
			JobTitle:        "Staff Engineer",
			Location:        "Lisbon, Portugal",
			Expertise:       []string{"Distributed Systems", "Go"},
			Availability:    "available",
			ExperienceYears: 12,
			Skills:          []RichItem{{Title: "Consensus protocols"}},
		},
		{
			ID:              "2",
			Slug:            "ben",
			Title:           "Ben Okafor",
			Company:         "Shipyard",
			JobTitle:        "Platform Lead",
			Location:        "London",
			Expertise:       []string{"Kubernetes"},
			Availability:    "limited",
			ExperienceYears: 6,
		},
		{
			ID:              "3",
			Slug:            "carla",
			Title:           "Carla Díaz",
			Company:         "Lockstep",
			JobTitle:        "Security Researcher",
			Location:        "Madrid",
			Expertise:       []string{"Security", "APIs"},
			Availability:    "available",
			ExperienceYears: 25,
		},
	}
}

func sampleEvents() []EventRecord {
	return []EventRecord{
		{ID: "e1", Slug: "conf", Title: "Go Conference", Category: TermRef{Name: "Conference", Slug: "conference"}, City: TermRef{Name: "Berlin", Slug: "berlin"}, Price: 100},
		{ID: "e2", Slug: "meetup", Title: "Cloud Meetup", Excerpt: "Kubernetes talks", Category: TermRef{Name: "Meetup", Slug: "meetup"}, City: TermRef{Name: "Amsterdam", Slug: "amsterdam"}, IsFree: true},
		{ID: "e3", Slug: "workshop", Title: "API Workshop", Category: TermRef{Name: "Workshop", Slug: "workshop"}, City: TermRef{Name: "Berlin", Slug: "berlin"}, Price: 50},
	}
}

func speakerIDs(speakers []SpeakerRecord) []string {
	ids := make([]string, len(speakers))
	for i, s := range speakers {
		ids[i] = s.ID
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterSpeakers(t *testing.T) {
	tests := []struct {
		name   string
		filter SpeakerFilter
		want   []string
	}{
		{"zero filter keeps all", SpeakerFilter{}, []string{"1", "2", "3"}},
		{"all is a no-op", SpeakerFilter{Expertise: "all", Availability: "ALL"}, []string{"1", "2", "3"}},
		{"expertise substring fold", SpeakerFilter{Expertise: "systems"}, []string{"1"}},
		{"company", SpeakerFilter{Company: "ship"}, []string{"2"}},
		{"location", SpeakerFilter{Location: "portugal"}, []string{"1"}},
		{"availability exact not substring", SpeakerFilter{Availability: "avail"}, []string{}},
		{"availability exact fold", SpeakerFilter{Availability: "Available"}, []string{"1", "3"}},
		{"experience range inclusive", SpeakerFilter{Experience: "6-12"}, []string{"1", "2"}},
		{"bare minimum unbounded above", SpeakerFilter{Experience: "10"}, []string{"1", "3"}},
		{"sentinel max keeps high values", SpeakerFilter{Experience: "0-100"}, []string{"1", "2", "3"}},
		{"unparseable range is a no-op", SpeakerFilter{Experience: "senior"}, []string{"1", "2", "3"}},
		{"free text over skills", SpeakerFilter{Search: "consensus"}, []string{"1"}},
		{"criteria compose with AND", SpeakerFilter{Availability: "available", Experience: "0-15"}, []string{"1"}},
		{"no match", SpeakerFilter{Company: "datavine", Location: "london"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := speakerIDs(FilterSpeakers(sampleSpeakers(), tt.filter))
			if !equalIDs(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterEvents(t *testing.T) {
	tests := []struct {
		name   string
		filter EventFilter
		want   []string
	}{
		{"zero filter keeps all", EventFilter{}, []string{"e1", "e2", "e3"}},
		{"category by slug", EventFilter{Category: "meetup"}, []string{"e2"}},
		{"category by name fold", EventFilter{Category: "CONF"}, []string{"e1"}},
		{"city", EventFilter{City: "berlin"}, []string{"e1", "e3"}},
		{"free only", EventFilter{FreeOnly: true}, []string{"e2"}},
		{"search over excerpt", EventFilter{Search: "kubernetes"}, []string{"e2"}},
		{"composed", EventFilter{City: "berlin", Search: "api"}, []string{"e3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range FilterEvents(sampleEvents(), tt.filter) {
				got = append(got, e.ID)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

// Applying two filters in sequence equals applying their conjunction once.
func TestFilterSpeakersComposes(t *testing.T) {
	speakers := sampleSpeakers()
	sequential := FilterSpeakers(FilterSpeakers(speakers, SpeakerFilter{Availability: "available"}), SpeakerFilter{Experience: "10-100"})
	combined := FilterSpeakers(speakers, SpeakerFilter{Availability: "available", Experience: "10-100"})
	if !equalIDs(speakerIDs(sequential), speakerIDs(combined)) {
		t.Errorf("sequential %v != combined %v", speakerIDs(sequential), speakerIDs(combined))
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	speakers := sampleSpeakers()
	FilterSpeakers(speakers, SpeakerFilter{Company: "lockstep"})
	if speakers[0].ID != "1" || speakers[2].ID != "3" {
		t.Error("input slice was mutated")
	}

	got := FilterSpeakers(speakers, SpeakerFilter{Availability: "available"})
	if !equalIDs(speakerIDs(got), []string{"1", "3"}) {
		t.Errorf("order not preserved: %v", speakerIDs(got))
	}
}

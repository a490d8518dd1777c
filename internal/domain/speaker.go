package domain

// SocialLinks holds a speaker's optional social profiles.
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	YouTube  string `json:"youtube,omitempty"`
}

// RichItem is one entry of a loosely structured speaker list (skills,
// achievements, certifications, popular talks). Upstream may supply these as
// structured lists or as a single rich-text blob; the adapter wraps a lone
// blob into a one-element list.
type RichItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// SpeakerRecord is the canonical speaker shape produced by the content adapter.
// swagger:model SpeakerRecord
type SpeakerRecord struct {
	ID              string      `json:"id"`
	Slug            string      `json:"slug"`
	Title           string      `json:"title"` // display name
	Bio             string      `json:"bio"`
	Company         string      `json:"company,omitempty"`
	JobTitle        string      `json:"job_title,omitempty"`
	Location        string      `json:"location,omitempty"`
	Email           string      `json:"email,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	Website         string      `json:"website,omitempty"`
	Expertise       []string    `json:"expertise"`
	Social          SocialLinks `json:"social"`
	Availability    string      `json:"availability,omitempty"`
	ExperienceYears int         `json:"experience_years"`
	Skills          []RichItem  `json:"skills"`
	Achievements    []RichItem  `json:"achievements"`
	Certifications  []RichItem  `json:"certifications"`
	PopularTalks    []RichItem  `json:"popular_talks"`
	FeaturedImage   *Image      `json:"featured_image,omitempty"`
}

package wordpress

import (
	"encoding/json"
	"strconv"
	"strings"

	"eventportal/internal/domain"
)

// The upstream sends several fields in more than one shape depending on which
// endpoint (custom content type vs generic) served the record and on how the
// field was filled in. The Flex* types absorb those variants during decoding
// so the adapter itself stays a plain field mapping.

// FlexID decodes a record id that may arrive as a JSON number or string.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	// Unexpected shape; leave the id empty rather than failing the record.
	*f = ""
	return nil
}

// RenderedText decodes either a bare string or the {"rendered": "..."} object
// the generic endpoint wraps titles, excerpts and content in.
type RenderedText string

func (r *RenderedText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = RenderedText(s)
		return nil
	}
	var wrapped struct {
		Rendered string `json:"rendered"`
	}
	if err := json.Unmarshal(b, &wrapped); err == nil {
		*r = RenderedText(wrapped.Rendered)
		return nil
	}
	*r = ""
	return nil
}

// FlexTerm decodes a taxonomy value sent either as a bare name string or as a
// {name, slug} object, normalizing to domain.TermRef once at this boundary.
type FlexTerm domain.TermRef

func (t *FlexTerm) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = FlexTerm(domain.NewTermRef(s))
		return nil
	}
	var ref domain.TermRef
	if err := json.Unmarshal(b, &ref); err == nil {
		if ref.Slug == "" && ref.Name != "" {
			ref.Slug = domain.Slugify(ref.Name)
		}
		*t = FlexTerm(ref)
		return nil
	}
	*t = FlexTerm{}
	return nil
}

// FlexInt decodes an integer sent as a number or numeric string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*f = FlexInt(v)
			return nil
		}
	}
	*f = 0
	return nil
}

// FlexFloat decodes a float sent as a number or numeric string.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexFloat(v)
			return nil
		}
	}
	*f = 0
	return nil
}

// StringList decodes a native JSON list or a single comma/newline delimited
// string into a trimmed list with empties dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*l = splitAndTrim(strings.Join(list, ","))
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*l = splitAndTrim(s)
		return nil
	}
	*l = nil
	return nil
}

func splitAndTrim(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// RichList decodes a structured item list or a lone rich-text blob. A blob
// becomes a one-element list rather than a decode failure.
type RichList []domain.RichItem

func (l *RichList) UnmarshalJSON(b []byte) error {
	var items []domain.RichItem
	if err := json.Unmarshal(b, &items); err == nil {
		*l = items
		return nil
	}
	var titles []string
	if err := json.Unmarshal(b, &titles); err == nil {
		out := make([]domain.RichItem, 0, len(titles))
		for _, t := range titles {
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, domain.RichItem{Title: t})
			}
		}
		*l = out
		return nil
	}
	var blob string
	if err := json.Unmarshal(b, &blob); err == nil {
		if blob = strings.TrimSpace(blob); blob != "" {
			*l = []domain.RichItem{{Title: blob}}
		} else {
			*l = nil
		}
		return nil
	}
	*l = nil
	return nil
}

// RawMedia is an embedded featured-media record.
type RawMedia struct {
	SourceURL string `json:"source_url"`
	AltText   string `json:"alt_text"`
}

// RawTerm is an embedded taxonomy term.
type RawTerm struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Taxonomy string `json:"taxonomy"`
}

// RawEmbedded carries the _embedded payload of a record fetched with _embed.
type RawEmbedded struct {
	FeaturedMedia []RawMedia  `json:"wp:featuredmedia"`
	Terms         [][]RawTerm `json:"wp:term"`
}

// RawFields is the custom-field payload (ACF or meta) for both events and
// speakers; only the fields relevant to the record's type are populated.
type RawFields struct {
	// Event fields.
	StartDate            string    `json:"start_date"`
	EndDate              string    `json:"end_date"`
	RegistrationDeadline string    `json:"registration_deadline"`
	MaxAttendees         FlexInt   `json:"max_attendees"`
	CurrentAttendees     FlexInt   `json:"current_attendees"`
	Price                FlexFloat `json:"price"`
	Category             *FlexTerm `json:"category"`
	City                 *FlexTerm `json:"city"`

	// Speaker fields.
	Company         string     `json:"company"`
	JobTitle        string     `json:"job_title"`
	Location        string     `json:"location"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Website         string     `json:"website"`
	Expertises      StringList `json:"expertises"`
	LinkedIn        string     `json:"linkedin"`
	Twitter         string     `json:"twitter"`
	GitHub          string     `json:"github"`
	YouTube         string     `json:"youtube"`
	Availability    string     `json:"availability"`
	ExperienceYears FlexInt    `json:"experience_years"`
	Skills          RichList   `json:"skills"`
	Achievements    RichList   `json:"achievements"`
	Certifications  RichList   `json:"certifications"`
	PopularTalks    RichList   `json:"popular_talks"`
}

// RawRecord is one upstream content record from either transport.
type RawRecord struct {
	ID       FlexID       `json:"id"`
	Slug     string       `json:"slug"`
	Status   string       `json:"status"`
	Title    RenderedText `json:"title"`
	Excerpt  RenderedText `json:"excerpt"`
	Content  RenderedText `json:"content"`
	ACF      RawFields    `json:"acf"`
	Meta     *RawFields   `json:"meta"`
	Embedded *RawEmbedded `json:"_embedded"`
}

// fields returns the populated custom-field payload: the generic endpoint
// exposes it under meta, the custom-type endpoint under acf.
func (r *RawRecord) fields() *RawFields {
	if r.Meta != nil {
		return r.Meta
	}
	return &r.ACF
}

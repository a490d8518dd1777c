package helpers

import (
	"net/http"
	"strconv"

	"eventportal/internal/domain"
)

// Listing query parameter defaults and limits.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ParseContentQuery reads page, per_page and search from the request query
// string, clamping them to valid ranges. Invalid or missing values fall back
// to defaults. Preview is not set here; controllers resolve it via the
// content service's secret check.
func ParseContentQuery(r *http.Request) domain.ContentQuery {
	q := domain.ContentQuery{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		Search:  r.URL.Query().Get("search"),
	}
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			q.Page = v
		}
	}
	if s := r.URL.Query().Get("per_page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			q.PerPage = v
			if q.PerPage > MaxPerPage {
				q.PerPage = MaxPerPage
			}
		}
	}
	return q
}

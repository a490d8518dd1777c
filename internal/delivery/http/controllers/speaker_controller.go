package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventportal/internal/delivery/http/helpers"
	"eventportal/internal/domain"
)

// SpeakerListSuccessResponse is the success envelope for GET /speakers (200).
type SpeakerListSuccessResponse struct {
	Data  domain.Connection[domain.SpeakerRecord] `json:"data"`
	Error *helpers.APIError                       `json:"error"`
}

// SpeakerSuccessResponse is the success envelope for GET /speakers/{slug} (200).
type SpeakerSuccessResponse struct {
	Data  *domain.SpeakerRecord `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// SpeakerController serves speaker listings and detail lookups.
type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.ContentService
}

func NewSpeakerController(logger *slog.Logger, svc domain.ContentService) *SpeakerController {
	return &SpeakerController{Logger: logger, Service: svc}
}

// ListSpeakers godoc
// @Summary List speakers
// @Description Returns a page of speakers, refined client-side by the filter params the upstream cannot evaluate natively. Criteria compose with AND; empty or "all" values are no-ops.
// @Tags speakers
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Page size (default 20, max 100)"
// @Param search query string false "Free-text search across name, bio, company, job title, expertise and skills"
// @Param expertise query string false "Expertise substring"
// @Param company query string false "Company substring"
// @Param location query string false "Location substring"
// @Param availability query string false "Availability (exact match)"
// @Param experience query string false "Experience range min-max; max 100 means unbounded"
// @Param secret query string false "Preview secret"
// @Success 200 {object} controllers.SpeakerListSuccessResponse "data contains nodes and page_info"
// @Router /speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	q := helpers.ParseContentQuery(r)
	f := domain.SpeakerFilter{
		Expertise:    r.URL.Query().Get("expertise"),
		Company:      r.URL.Query().Get("company"),
		Location:     r.URL.Query().Get("location"),
		Search:       r.URL.Query().Get("search"),
		Availability: r.URL.Query().Get("availability"),
		Experience:   r.URL.Query().Get("experience"),
	}
	conn := c.Service.ListSpeakers(r.Context(), q, f, r.URL.Query().Get("secret"))
	helpers.WriteJSONSuccess(w, http.StatusOK, conn)
}

// GetSpeakerBySlug godoc
// @Summary Get a speaker by slug
// @Tags speakers
// @Produce json
// @Param slug path string true "Speaker slug"
// @Param secret query string false "Preview secret"
// @Success 200 {object} controllers.SpeakerSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /speakers/{slug} [get]
func (c *SpeakerController) GetSpeakerBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	speaker, err := c.Service.GetSpeaker(r.Context(), slug, r.URL.Query().Get("secret"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "speaker not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speaker)
}

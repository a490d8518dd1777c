package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventportal/internal/delivery/http/helpers"
	"eventportal/internal/domain"
)

// EventListSuccessResponse is the success envelope for GET /events (200).
type EventListSuccessResponse struct {
	Data  domain.Connection[domain.EventRecord] `json:"data"`
	Error *helpers.APIError                     `json:"error"`
}

// EventSuccessResponse is the success envelope for GET /events/{slug} (200).
type EventSuccessResponse struct {
	Data  *domain.EventRecord `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// EventController serves event listings and detail lookups.
type EventController struct {
	Logger  *slog.Logger
	Service domain.ContentService
}

func NewEventController(logger *slog.Logger, svc domain.ContentService) *EventController {
	return &EventController{Logger: logger, Service: svc}
}

// ListEvents godoc
// @Summary List events
// @Description Returns a page of events. Upstream failures fall back to the fixed dataset; this endpoint never errors on transport problems.
// @Tags events
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Page size (default 20, max 100)"
// @Param search query string false "Free-text search"
// @Param category query string false "Category name or slug"
// @Param city query string false "City name or slug"
// @Param free query bool false "Only free events"
// @Param secret query string false "Preview secret (includes drafts when it matches)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains nodes and page_info"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := helpers.ParseContentQuery(r)
	f := domain.EventFilter{
		Category: r.URL.Query().Get("category"),
		City:     r.URL.Query().Get("city"),
		Search:   r.URL.Query().Get("search"),
		FreeOnly: r.URL.Query().Get("free") == "true",
	}
	conn := c.Service.ListEvents(r.Context(), q, f, r.URL.Query().Get("secret"))
	helpers.WriteJSONSuccess(w, http.StatusOK, conn)
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Param secret query string false "Preview secret"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), slug, r.URL.Query().Get("secret"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

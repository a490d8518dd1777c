package controllers

import (
	"log/slog"
	"net/http"

	"eventportal/internal/delivery/http/helpers"
	"eventportal/internal/domain"
)

// SubmissionSuccessResponse is the envelope for form submission endpoints.
type SubmissionSuccessResponse struct {
	Data  domain.SubmissionResult `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// SubmissionController accepts contact messages and speaker applications.
type SubmissionController struct {
	Logger  *slog.Logger
	Service domain.SubmissionService
}

func NewSubmissionController(logger *slog.Logger, svc domain.SubmissionService) *SubmissionController {
	return &SubmissionController{Logger: logger, Service: svc}
}

// SubmitContact godoc
// @Summary Submit a contact message
// @Tags submissions
// @Accept json
// @Produce json
// @Param message body domain.ContactMessage true "Contact message"
// @Success 200 {object} controllers.SubmissionSuccessResponse
// @Failure 400 {object} controllers.SubmissionSuccessResponse "missing fields or invalid email"
// @Router /contact [post]
func (c *SubmissionController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if !helpers.DecodeAndValidate(w, r, &msg) {
		return
	}
	result := c.Service.SubmitContactMessage(r.Context(), msg)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	helpers.WriteJSONSuccess(w, status, result)
}

// SubmitSpeakerApplication godoc
// @Summary Submit a speaker application
// @Tags submissions
// @Accept json
// @Produce json
// @Param application body domain.SpeakerApplication true "Speaker application"
// @Success 200 {object} controllers.SubmissionSuccessResponse
// @Failure 400 {object} controllers.SubmissionSuccessResponse "missing fields or invalid email"
// @Router /speaker-applications [post]
func (c *SubmissionController) SubmitSpeakerApplication(w http.ResponseWriter, r *http.Request) {
	var app domain.SpeakerApplication
	if !helpers.DecodeAndValidate(w, r, &app) {
		return
	}
	result := c.Service.SubmitSpeakerApplication(r.Context(), app)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	helpers.WriteJSONSuccess(w, status, result)
}

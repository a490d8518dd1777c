package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventportal/internal/delivery/http/helpers"
	"eventportal/internal/domain"
)

// ReservationSuccessResponse is the success envelope for POST /reservations (201).
type ReservationSuccessResponse struct {
	Data  domain.ReservationResult `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// CancelSuccessResponse is the success envelope for DELETE /reservations/{code} (200).
type CancelSuccessResponse struct {
	Data  *domain.Reservation `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ReservationController accepts reservation submissions and cancellations.
type ReservationController struct {
	Logger  *slog.Logger
	Service domain.ReservationService
}

func NewReservationController(logger *slog.Logger, svc domain.ReservationService) *ReservationController {
	return &ReservationController{Logger: logger, Service: svc}
}

// CreateReservation godoc
// @Summary Reserve a seat at an event
// @Description Validates and persists a reservation. Rejections are structured results with a machine-readable code; the body always carries success, message, and (on success) the confirmation code.
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body domain.ReservationRequest true "Reservation submission"
// @Success 201 {object} controllers.ReservationSuccessResponse "data.success is true"
// @Failure 400 {object} controllers.ReservationSuccessResponse "missing fields or invalid email"
// @Failure 404 {object} controllers.ReservationSuccessResponse "event not found"
// @Failure 409 {object} controllers.ReservationSuccessResponse "event full, registration closed, or already registered"
// @Router /reservations [post]
func (c *ReservationController) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req domain.ReservationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result := c.Service.Reserve(r.Context(), req)
	helpers.WriteJSONSuccess(w, statusForResult(result), result)
}

// CancelReservation godoc
// @Summary Cancel a reservation by confirmation code
// @Description Flips the reservation to cancelled and releases its seat. The record is retained.
// @Tags reservations
// @Produce json
// @Param code path string true "Confirmation code"
// @Success 200 {object} controllers.CancelSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /reservations/{code} [delete]
func (c *ReservationController) CancelReservation(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing confirmation code")
		return
	}
	res, err := c.Service.Cancel(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "reservation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// statusForResult maps a reservation outcome to an HTTP status. The body is
// the same structured result either way.
func statusForResult(result domain.ReservationResult) int {
	if result.Success {
		return http.StatusCreated
	}
	switch result.Code {
	case domain.RejectEventNotFound:
		return http.StatusNotFound
	case domain.RejectEventFull, domain.RejectRegistrationClosed, domain.RejectAlreadyRegistered:
		return http.StatusConflict
	case domain.RejectInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

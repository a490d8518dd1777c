package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventportal/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	events *controllers.EventController,
	speakers *controllers.SpeakerController,
	reservations *controllers.ReservationController,
	submissions *controllers.SubmissionController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Content
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("GET /events/{slug}", events.GetEventBySlug)
	mux.HandleFunc("GET /speakers", speakers.ListSpeakers)
	mux.HandleFunc("GET /speakers/{slug}", speakers.GetSpeakerBySlug)

	// Submissions
	mux.HandleFunc("POST /reservations", reservations.CreateReservation)
	mux.HandleFunc("DELETE /reservations/{code}", reservations.CancelReservation)
	mux.HandleFunc("POST /contact", submissions.SubmitContact)
	mux.HandleFunc("POST /speaker-applications", submissions.SubmitSpeakerApplication)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

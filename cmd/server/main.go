package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventportal/config"
	"eventportal/internal/adapters/email"
	"eventportal/internal/adapters/wordpress"
	delivery "eventportal/internal/delivery/http"
	"eventportal/internal/delivery/http/controllers"
	"eventportal/internal/delivery/http/middleware"
	"eventportal/internal/domain"
	"eventportal/internal/repository/memory"
	wprepo "eventportal/internal/repository/wordpress"
	"eventportal/internal/services"
)

// @title Event Portal API
// @version 1.0
// @description Content-driven event portal backed by a headless WordPress CMS.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()

	client := wordpress.NewClient(cfg.WordPressURL, cfg.WordPressUser, cfg.WordPressAppPassword, nil)
	gateway := wordpress.NewGateway(client, logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		log.Fatalf("create mailer: %v", err)
	}

	// Reservations persist to the CMS in production; without an upstream (or
	// its credentials) the in-memory store keeps the portal usable.
	var store domain.ReservationStore
	if cfg.WordPressURL != "" && cfg.WordPressUser != "" && cfg.WordPressAppPassword != "" {
		store = wprepo.NewReservationStore(client, logger)
	} else {
		logger.Warn("no CMS write credentials configured, using in-memory reservation store")
		store = memory.NewReservationStore()
	}

	notifier := services.NewNotificationService(mailer, email.NewTemplateRenderer(), cfg.SiteURL, cfg.ContactInboxAddress, logger)
	contentSvc := services.NewContentService(gateway, cfg.PreviewSecret)
	reservationSvc := services.NewReservationService(gateway, store, notifier, logger)
	submissionSvc := services.NewSubmissionService(notifier, logger)

	mux := delivery.NewRouter(
		controllers.NewEventController(logger, contentSvc),
		controllers.NewSpeakerController(logger, contentSvc),
		controllers.NewReservationController(logger, reservationSvc),
		controllers.NewSubmissionController(logger, submissionSvc),
	)
	handler := middleware.Logging(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}

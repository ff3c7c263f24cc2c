package main

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"

	"groomstation/internal/api"
	"groomstation/internal/auth"
	"groomstation/internal/config"
	"groomstation/internal/db"
	"groomstation/internal/repository"
	"groomstation/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	stripe.Key = cfg.StripeSecretKey

	conn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to open DB: %v", err)
	}
	if err := conn.Ping(); err != nil {
		logrus.Fatalf("Failed to connect to DB: %v", err)
	}

	stationRepo := repository.NewPostgresStationRepository(conn)
	availabilityRepo := repository.NewPostgresAvailabilityRepository(conn)
	bookingRepo := repository.NewPostgresBookingRepository(conn)
	ownerRepo := repository.NewPostgresOwnerRepository(conn)
	jobRepo := repository.NewPostgresJobRepository(conn)

	drafts := service.NewDraftStore(cfg.DraftTTL)
	stationSvc := service.NewStationService(stationRepo)
	availabilitySvc := service.NewAvailabilityService(stationRepo, availabilityRepo)
	bookingSvc := service.NewBookingService(stationRepo, availabilityRepo, bookingRepo, drafts, service.CoinFlipRewardPolicy{})
	jobSvc := service.NewJobService(jobRepo, availabilityRepo, drafts, cfg.SlotHoldRecovery)
	ownerAuthSvc := service.NewOwnerAuthService(ownerRepo, cfg.JWTSecret)
	stripeSvc := service.NewStripeService(cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
	senderSvc := service.NewSenderService()

	stationHandler := api.NewStationHandler(stationSvc, availabilitySvc)
	bookingHandler := api.NewBookingHandler(bookingSvc, stripeSvc, senderSvc)
	ownerHandler := api.NewOwnerHandler(ownerAuthSvc, stationSvc, availabilitySvc, bookingSvc)
	webhookHandler := api.NewStripeWebhookHandler(cfg.StripeWebhookSecret, bookingSvc, senderSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/stations", stationHandler.ListStations).Methods("GET")
	r.HandleFunc("/api/stations/{id}", stationHandler.GetStation).Methods("GET")
	r.HandleFunc("/api/stations/{id}/slots", stationHandler.ListSlots).Methods("GET")
	r.HandleFunc("/api/stations/{id}/calendar", stationHandler.GetCalendar).Methods("GET")
	r.HandleFunc("/api/stations/{id}/quote", stationHandler.Quote).Methods("POST")
	r.HandleFunc("/api/owner/login", ownerHandler.Login).Methods("POST")
	r.HandleFunc("/api/stripe/webhook", webhookHandler.HandleWebhook).Methods("POST")

	// Customer endpoints (authenticated)
	customer := r.PathPrefix("/api/bookings").Subrouter()
	customer.Use(auth.Middleware(cfg.JWTSecret))
	customer.Use(auth.RequireRole(db.RoleCustomer))
	customer.HandleFunc("/draft", bookingHandler.StageDraft).Methods("POST")
	customer.HandleFunc("/draft", bookingHandler.GetDraft).Methods("GET")
	customer.HandleFunc("/checkout", bookingHandler.Checkout).Methods("POST")
	customer.HandleFunc("", bookingHandler.ListBookings).Methods("GET")
	customer.HandleFunc("/{id}", bookingHandler.CancelBooking).Methods("DELETE")

	// Owner endpoints (authenticated)
	owner := r.PathPrefix("/api/owner").Subrouter()
	owner.Use(auth.Middleware(cfg.JWTSecret))
	owner.Use(auth.RequireRole(db.RoleOwner))
	owner.HandleFunc("/stations", ownerHandler.ListOwnStations).Methods("GET")
	owner.HandleFunc("/stations/{id}/slots", ownerHandler.PublishSlots).Methods("PUT")
	owner.HandleFunc("/bookings/{id}/complete", ownerHandler.CompleteBooking).Methods("POST")

	c := cron.New()
	c.AddFunc("@every 1m", func() {
		if err := jobSvc.ReleaseOrphanedHolds(); err != nil {
			logrus.Errorf("Recovery sweep failed: %v", err)
		}
		jobSvc.PurgeExpiredDrafts()
	})
	c.Start()
	defer c.Stop()

	server := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(handlers.LoggingHandler(os.Stdout, r))

	logrus.Infof("Server running on port %s", cfg.Port)
	logrus.Fatal(http.ListenAndServe(":"+cfg.Port, server))
}

package main

import (
	"database/sql"
	"net/http"
	"time"

	"streetshine/internal/api"
	"streetshine/internal/auth"
	"streetshine/internal/cache"
	"streetshine/internal/config"
	"streetshine/internal/logging"
	"streetshine/internal/metrics"
	"streetshine/internal/repository"
	"streetshine/internal/service"
	"streetshine/internal/validation"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("info", "json")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	database, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open DB")
	}
	if err := database.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to DB")
	}

	// Redis is optional: with no address configured every read goes to
	// postgres and the site still works.
	var bookingCache *cache.Cache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		bookingCache = cache.New(client, 5*time.Minute, logger)
		logger.Info().Str("addr", cfg.RedisAddr).Msg("redis cache enabled")
	}

	metrics.Register()

	bookingValidator, err := validation.NewBookingValidator()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build booking validator")
	}

	bookingRepo := repository.NewBookingRepository(database)
	infoRepo := repository.NewServiceInfoRepository(database)
	adminAuthRepo := repository.NewAdminAuthRepository(database)

	notifier := service.NewNotifyService(cfg, logger)
	bookingSvc := service.NewBookingService(bookingRepo, infoRepo, bookingCache, bookingValidator, notifier, logger)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo, cfg.JWTSecret)
	jobSvc := service.NewJobService(bookingRepo, notifier, logger)

	bookingHandler := api.NewBookingHandler(bookingSvc, cfg.Contact, logger)
	adminHandler := api.NewAdminHandler(bookingSvc, logger)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc, logger)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 8 * * *", func() {
		if err := jobSvc.SendUpcomingReminders(); err != nil {
			logger.Error().Err(err).Msg("reminder job failed")
		}
	}); err != nil {
		logger.Fatal().Err(err).Msg("failed to schedule reminder job")
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := mux.NewRouter()
	r.Use(metrics.Middleware)

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	// Public endpoints
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/services", bookingHandler.GetServices).Methods("GET")
	r.HandleFunc("/api/service-info", bookingHandler.GetServiceInfo).Methods("GET")
	r.HandleFunc("/api/contact-info", bookingHandler.GetContactInfo).Methods("GET")
	r.HandleFunc("/api/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(cfg.JWTSecret))
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings", adminHandler.ClearBookings).Methods("DELETE")
	admin.HandleFunc("/bookings/upcoming", adminHandler.ListUpcomingBookings).Methods("GET")
	admin.HandleFunc("/bookings/stats", adminHandler.GetStats).Methods("GET")
	admin.HandleFunc("/bookings/{id}", adminHandler.GetBooking).Methods("GET")
	admin.HandleFunc("/bookings/{id}/status", adminHandler.UpdateBookingStatus).Methods("PUT")
	admin.HandleFunc("/bookings/{id}", adminHandler.DeleteBooking).Methods("DELETE")
	admin.HandleFunc("/service-info", adminHandler.UpdateServiceInfo).Methods("PUT")
	admin.HandleFunc("/admins", adminAuthHandler.CreateAdmin).Methods("POST")

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	logger.Info().Str("port", cfg.Port).Msg("server running")
	if err := http.ListenAndServe(":"+cfg.Port, cors(r)); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

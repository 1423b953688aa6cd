package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dento-health/dento-portal/backend/internal/adapters/cache"
	"github.com/dento-health/dento-portal/backend/internal/adapters/database"
	"github.com/dento-health/dento-portal/backend/internal/adapters/search"
	"github.com/dento-health/dento-portal/backend/internal/api/handlers"
	"github.com/dento-health/dento-portal/backend/internal/api/middleware"
	"github.com/dento-health/dento-portal/backend/internal/api/routes"
	"github.com/dento-health/dento-portal/backend/internal/application/services"
	"github.com/dento-health/dento-portal/backend/internal/domain/providers"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/clients/openai"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/clients/postgres"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/clients/redis"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/clients/typesense"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/observability"
	"github.com/dento-health/dento-portal/backend/pkg/config"
)

func main() {

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, os.Getenv("APP_ENV"))

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client. Sessions live in Redis, so the API cannot
	// run without it.
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize Redis client: %v", err)
	}
	defer redisClient.Close()
	log.Println("Redis client initialized successfully")

	// Initialize Typesense client
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Warning: Failed to initialize Typesense client: %v", err)
	} else {
		log.Println("Typesense client initialized successfully")
	}

	// Initialize adapters

	userAdapter := database.NewUserAdapter(pgClient)
	clinicAdapter := database.NewClinicAdapter(pgClient)
	doctorAdapter := database.NewDoctorAdapter(pgClient)
	patientAdapter := database.NewPatientAdapter(pgClient)
	appointmentAdapter := database.NewAppointmentAdapter(pgClient)
	treatmentAdapter := database.NewTreatmentAdapter(pgClient)
	treatmentPlanAdapter := database.NewTreatmentPlanAdapter(pgClient)
	reportAdapter := database.NewReportAdapter(pgClient)

	cacheProvider := cache.NewRedisAdapter(redisClient)

	var searchRepo repositories.DoctorSearchRepository
	if typesenseClient != nil {
		adapter := search.NewDoctorSearchAdapter(typesenseClient)
		if err := adapter.InitSchema(context.Background()); err != nil {
			log.Printf("Warning: Failed to init Typesense schema: %v", err)
		}
		searchRepo = adapter
	}

	var diagnosisProvider providers.DiagnosisProvider
	if cfg.OpenAI.APIKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set; diagnosis runs on the local rule engine only")
	} else {
		openaiClient, err := openai.NewClient(&cfg.OpenAI)
		if err != nil {
			log.Printf("Warning: Failed to initialize OpenAI client: %v", err)
		} else {
			diagnosisProvider = openaiClient
		}
	}

	// Initialize services

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	authService := services.NewAuthService(userAdapter, cacheProvider, sessionTTL)
	doctorService := services.NewDoctorService(doctorAdapter, clinicAdapter, searchRepo)
	appointmentService := services.NewAppointmentService(appointmentAdapter, patientAdapter, doctorAdapter)
	diagnosisService := services.NewDiagnosisService(diagnosisProvider)

	// Initialize handlers

	authHandler := handlers.NewAuthHandler(authService, cfg.Session)
	userHandler := handlers.NewUserHandler(userAdapter)
	clinicHandler := handlers.NewClinicHandler(clinicAdapter)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	patientHandler := handlers.NewPatientHandler(patientAdapter, clinicAdapter)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, appointmentAdapter)
	treatmentHandler := handlers.NewTreatmentHandler(treatmentAdapter, treatmentPlanAdapter)
	reportHandler := handlers.NewReportHandler(reportAdapter)
	diagnosisHandler := handlers.NewDiagnosisHandler(diagnosisService)

	// Initialize cache middleware
	cacheMiddleware := middleware.NewCacheMiddleware(cacheProvider)
	log.Println("Cache middleware initialized successfully")

	// Set up router

	router := routes.NewRouter(
		authHandler,
		userHandler,
		clinicHandler,
		doctorHandler,
		patientHandler,
		appointmentHandler,
		treatmentHandler,
		reportHandler,
		diagnosisHandler,
		authService,
		cfg.Session.CookieName,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}

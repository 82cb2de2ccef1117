package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/labforge/labops/internal/alerting"
	"github.com/labforge/labops/internal/funding"
	"github.com/labforge/labops/internal/funding/domain"
	fundingHandler "github.com/labforge/labops/internal/funding/handler"
	"github.com/labforge/labops/kafka"
	"github.com/labforge/labops/pkg/database"
	"github.com/labforge/labops/pkg/health"
	"github.com/labforge/labops/pkg/logger"
	"github.com/labforge/labops/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "funding-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting funding service")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tracing.Shutdown(ctx, tp)
		}()
	}

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "labops_funding"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&domain.FundingAllocation{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Alert pipeline: roster from the people service, events to Kafka.
	kafkaBrokers := []string{getEnv("KAFKA_BROKERS", "localhost:9092")}
	publisher, err := kafka.NewPublisher(kafkaBrokers)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
	}
	defer publisher.Close()

	peopleServiceURL := getEnv("PEOPLE_SERVICE_URL", "http://localhost:8081")
	dispatcher := alerting.NewDispatcher(alerting.NewPeopleClient(peopleServiceURL), publisher)

	warningInterval := health.DefaultWarningInterval
	if raw := getEnv("WARNING_INTERVAL", ""); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			warningInterval = parsed
		} else {
			logger.Logger.Warn().Str("value", raw).Msg("Invalid WARNING_INTERVAL, using default")
		}
	}

	handler, err := funding.InitializeHandler(db, dispatcher, funding.WarningInterval(warningInterval))
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	logger.Logger.Info().
		Str("people_service", peopleServiceURL).
		Dur("warning_interval", warningInterval).
		Msg("Funding handler initialized with alert dispatcher")

	httpPort := getEnv("HTTP_PORT", "8084")
	startHTTPServer(handler, sqlDB, httpPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(handler *fundingHandler.FundingHandler, db *sql.DB, port string) {
	router := mux.NewRouter()

	fundingHandler.RegisterMiddlewares(router, fundingHandler.DefaultMiddlewareConfig())

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

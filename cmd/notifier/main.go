package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/labforge/labops/kafka"
	"github.com/labforge/labops/pkg/logger"
	"github.com/labforge/labops/pkg/tracing"
)

// The notifier is the delivery end of the alert pipeline: it consumes alert
// events and logs them for the on-call channel. Actual email/push transport
// is intentionally not part of this service.

var notificationsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "labops_notifications_delivered_total",
	Help: "Alert events received and logged for delivery, by kind.",
}, []string{"kind"})

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "notifier-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting notifier service")

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

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "notifier")
	topics := []string{
		kafka.TopicStockAlerts,
		kafka.TopicMaintenanceAlerts,
		kafka.TopicFundingAlerts,
	}

	consumer, err := kafka.NewConsumer(brokers, groupID, topics)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeStockAlert, handleStockAlert)
	consumer.RegisterHandler(kafka.EventTypeMaintenanceDue, handleMaintenanceDue)
	consumer.RegisterHandler(kafka.EventTypeFundingAlert, handleFundingAlert)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start consumer")
	}

	// Metrics endpoint only; this service has no API surface.
	metricsPort := getEnv("METRICS_PORT", "8085")
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		if err := http.ListenAndServe(":"+metricsPort, mux); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	logger.Logger.Info().
		Strs("topics", topics).
		Str("metrics_port", metricsPort).
		Msg("Notifier running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down notifier...")
}

func handleStockAlert(ctx context.Context, payload []byte) error {
	var event kafka.StockAlertEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}

	logger.Info(ctx).
		Str("event_id", event.EventID).
		Uint("item_id", event.ItemID).
		Str("product_name", event.ProductName).
		Str("severity", event.Severity).
		Float64("weeks_remaining", event.WeeksRemaining).
		Strs("recipients", event.Recipients).
		Msg("Stock alert delivered")

	notificationsDelivered.WithLabelValues("stock").Inc()
	return nil
}

func handleMaintenanceDue(ctx context.Context, payload []byte) error {
	var event kafka.MaintenanceDueEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}

	logger.Info(ctx).
		Str("event_id", event.EventID).
		Uint("device_id", event.DeviceID).
		Str("device_name", event.DeviceName).
		Int("health_percent", event.HealthPercent).
		Strs("recipients", event.Recipients).
		Msg("Maintenance alert delivered")

	notificationsDelivered.WithLabelValues("maintenance").Inc()
	return nil
}

func handleFundingAlert(ctx context.Context, payload []byte) error {
	var event kafka.FundingAlertEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}

	logger.Info(ctx).
		Str("event_id", event.EventID).
		Uint("allocation_id", event.AllocationID).
		Str("grant_name", event.GrantName).
		Float64("percent_remaining", event.PercentRemaining).
		Str("priority", event.Priority).
		Strs("recipients", event.Recipients).
		Msg("Funding alert delivered")

	notificationsDelivered.WithLabelValues("funding").Inc()
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

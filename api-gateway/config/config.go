package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	BaseURL     string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port     string
	Services map[string]ServiceConfig
}

// LoadConfig loads the gateway configuration
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Services: map[string]ServiceConfig{
			"people":    serviceConfig("people-service", "PEOPLE_SERVICE_URLS", "http://localhost:8081"),
			"inventory": serviceConfig("inventory-service", "INVENTORY_SERVICE_URLS", "http://localhost:8082"),
			"equipment": serviceConfig("equipment-service", "EQUIPMENT_SERVICE_URLS", "http://localhost:8083"),
			"funding":   serviceConfig("funding-service", "FUNDING_SERVICE_URLS", "http://localhost:8084"),
		},
	}
}

// serviceConfig builds a service entry. The env var takes a comma-separated
// list of instance URLs; the first instance doubles as the base URL.
func serviceConfig(name, envKey, defaultURL string) ServiceConfig {
	instances := splitURLs(getEnv(envKey, defaultURL))
	if len(instances) == 0 {
		instances = []string{defaultURL}
	}
	return ServiceConfig{
		Name:        name,
		BaseURL:     instances[0],
		Instances:   instances,
		Timeout:     30 * time.Second,
		HealthCheck: "/health",
	}
}

func splitURLs(raw string) []string {
	var urls []string
	for _, u := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(u); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

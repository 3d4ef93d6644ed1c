// Package config centralises configuration parsing for the tracking
// service and the recording agent.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config captures runtime configuration values.
type Config struct {
	HTTPAddress           string
	KafkaBrokers          []string
	JWTSecret             string
	JWTIssuer             string
	Platform              string // "ios" or "android", used for permission copy
	BundleID              string // app identifier for settings deep links
	MaxPermissionAttempts int    // escalation cap for guided permission prompts
	ReplayTracePath       string // agent: JSON trace replayed through the recorder
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:           getEnv("HTTP_ADDRESS", ":8080"),
		JWTSecret:             getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:             getEnv("JWT_ISSUER", "tracking.identity"),
		Platform:              getEnv("PLATFORM", "ios"),
		BundleID:              getEnv("BUNDLE_ID", "com.example.tracking"),
		MaxPermissionAttempts: getIntEnv("MAX_PERMISSION_ATTEMPTS", 3),
		ReplayTracePath:       getEnv("REPLAY_TRACE_PATH", ""),
	}

	brokers := getEnv("KAFKA_BROKERS", "kafka:9092")
	cfg.KafkaBrokers = splitAndTrim(brokers)
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	// APIKey is the shared secret required on every verification route.
	APIKey string

	// StorageBackend selects the verification store: "memory" or "dynamo".
	StorageBackend string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTableVerifications string

	RateLimitRPS   int
	RateLimitBurst int

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
// PORT is the Railway convention; APP_PORT wins when both are set.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", getEnv("PORT", "5000")),
		AppEnv:  getEnv("APP_ENV", "development"),

		APIKey: getEnv("API_KEY", ""),

		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTableVerifications: getEnv("DYNAMO_TABLE_VERIFICATIONS", "verifications"),

		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

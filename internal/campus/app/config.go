package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/campus/pkg/jwtx"
)

type Config struct {
	TokenSecret string        // Secret for signing session tokens (default: random per process)
	TokenTTL    time.Duration // Session token lifetime (default: 600s)
	Issuer      string        // Issuer claim for tokens (default: campus)

	AdminName     string // Optional: name of the bootstrap admin
	AdminEmail    string // Optional: email of the bootstrap admin
	AdminPassword string // Optional: password of the bootstrap admin

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		TokenSecret:         os.Getenv("CAMPUS_TOKEN_SECRET"),
		TokenTTL:            getEnvDurationOrDefault("CAMPUS_TOKEN_TTL", jwtx.DefaultTokenTTL),
		Issuer:              getEnvOrDefault("CAMPUS_ISSUER", "campus"),
		AdminName:           os.Getenv("CAMPUS_ADMIN_NAME"),
		AdminEmail:          os.Getenv("CAMPUS_ADMIN_EMAIL"),
		AdminPassword:       os.Getenv("CAMPUS_ADMIN_PASSWORD"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// HasBootstrapAdmin reports whether any of the bootstrap admin settings is
// present.
func (c Config) HasBootstrapAdmin() bool {
	return c.AdminName != "" || c.AdminEmail != "" || c.AdminPassword != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "600s", "10m"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer  string // Issuer claim for access tokens (default: toynest)
	BaseURL string // Public origin used in password-reset links (default: http://localhost:8080)

	Algorithm     string // JWT signing algorithm (HS256, EdDSA) (default: EdDSA)
	SigningSecret string // HS256 secret; required when Algorithm is HS256
	SigningKey    string // Path to EdDSA PKCS#8 PEM key file; generated ephemerally when empty

	DatabaseFile string // Path to SQLite database file (default: ./toynest.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)

	SMTPHost     string        // SMTP relay host; console delivery when empty
	SMTPPort     int           // SMTP relay port (default: 587)
	SMTPUsername string        // Optional SMTP auth username
	SMTPPassword string        // Optional SMTP auth password
	MailFrom     string        // From address for outgoing mail (default: no-reply@toynest.local)
	MailTimeout  time.Duration // Per-message delivery deadline (default: 10s)

	GoogleClientID     string // Optional: Google OAuth client id; Google routes disabled when empty
	GoogleClientSecret string // Optional: Google OAuth client secret
	GoogleCallbackURL  string // Optional: callback URL registered with Google

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:  getEnvOrDefault("TOYNEST_ISSUER", "toynest"),
		BaseURL: getEnvOrDefault("TOYNEST_BASE_URL", "http://localhost:8080"),

		Algorithm:     getEnvOrDefault("TOYNEST_ALGORITHM", "EdDSA"),
		SigningSecret: os.Getenv("TOYNEST_SIGNING_SECRET"),
		SigningKey:    os.Getenv("TOYNEST_SIGNING_KEY_FILE"),

		DatabaseFile: getEnvOrDefault("TOYNEST_DATABASE_FILE", "toynest.db"),
		PepperFile:   getEnvOrDefault("TOYNEST_PEPPER_FILE", "pepper"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getEnvOrDefault("MAIL_FROM", "no-reply@toynest.local"),
		MailTimeout:  getEnvDurationOrDefault("MAIL_TIMEOUT", 10*time.Second),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:  os.Getenv("GOOGLE_CALLBACK_URL"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.GoogleCallbackURL == "" {
		cfg.GoogleCallbackURL = cfg.BaseURL + "/v1/auth/google/callback"
	}

	return cfg
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all console configuration.
type Config struct {
	// APIBaseURL is the root of the question/book/user API.
	APIBaseURL string
	// PaymentBaseURL is the root of the payment API, deployed separately.
	PaymentBaseURL string
	LogLevel       string
	LogFormat      string
	// SessionDBPath is the sqlite file holding the persisted session
	// (the browser-storage analog).
	SessionDBPath string
	// BannerTTL is how long dashboard banners stay visible before the
	// dismissal timer clears them.
	BannerTTL time.Duration
	// RedirectDelay is the pause between showing a session-expired message
	// and returning to the login screen.
	RedirectDelay time.Duration
	// HTTPTimeout bounds every API call.
	HTTPTimeout time.Duration

	// Stub server only.
	StubPort      string
	StubJWTSecret string
	StubTokenTTL  time.Duration
	// AllowedOrigins controls the stub server's CORS policy.
	// Empty means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "https://alc-production-5d34.up.railway.app"),
		PaymentBaseURL: getEnv("PAYMENT_BASE_URL", "https://alc-production-8568.up.railway.app"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		SessionDBPath:  getEnv("SESSION_DB_PATH", defaultSessionDBPath()),
		BannerTTL:      time.Duration(getEnvInt("BANNER_TTL_SECONDS", 5)) * time.Second,
		RedirectDelay:  time.Duration(getEnvInt("REDIRECT_DELAY_MS", 2000)) * time.Millisecond,
		HTTPTimeout:    time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		StubPort:       getEnv("STUB_PORT", "8080"),
		StubJWTSecret:  getEnv("STUB_JWT_SECRET", "stub-only-not-a-secret"),
		StubTokenTTL:   time.Duration(getEnvInt("STUB_TOKEN_TTL_HOURS", 24)) * time.Hour,
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func defaultSessionDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "alc-session.db"
	}
	return filepath.Join(home, ".alc-admin", "session.db")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

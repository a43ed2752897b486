package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Mail transports
const (
	TransportSMTP   = "smtp"
	TransportResend = "resend"
)

type Config struct {
	Port    string
	GinMode string
	// Mail account. EmailUser is both the transport login and the From address.
	EmailUser    string
	EmailPass    string
	AdminEmail   string
	MailFromName string
	// Transport selection: "smtp" (default) or "resend"
	MailTransport      string
	SMTPHost           string
	SMTPPort           string
	ResendAPIKey       string
	MailTimeoutSeconds int
	// Form policy
	PhonePolicy string // "strict" or "lenient"
	// HTTP surface
	AllowedOrigins     []string
	DiagnosticsEnabled bool
	LogLevel           string
	// Redis Configuration (optional, backs the rate limiter)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	ContactRateLimit       int
	RateLimitWindowSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		// Mail account
		EmailUser:    strings.TrimSpace(getEnv("EMAIL_USER", "")),
		EmailPass:    getEnv("EMAIL_PASS", ""),
		AdminEmail:   strings.TrimSpace(getEnv("ADMIN_EMAIL", "")),
		MailFromName: getEnv("MAIL_FROM_NAME", ""),
		// Transport
		MailTransport:      strings.ToLower(getEnv("MAIL_TRANSPORT", TransportSMTP)),
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnv("SMTP_PORT", "587"),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		MailTimeoutSeconds: getEnvInt("MAIL_TIMEOUT_SECONDS", 15),
		// Form policy
		PhonePolicy: getEnv("PHONE_POLICY", "strict"),
		// HTTP surface
		AllowedOrigins:     getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		DiagnosticsEnabled: getEnvBool("DIAGNOSTICS_ENABLED", true),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting (5 submissions per minute per IP)
		ContactRateLimit:       getEnvInt("CONTACT_RATE_LIMIT", 5),
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
	}

	// Warn early instead of failing on the first submission
	if cfg.EmailUser == "" || cfg.AdminEmail == "" {
		log.Println("WARNING: EMAIL_USER or ADMIN_EMAIL is missing. Contact form will be unavailable.")
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		log.Printf("WARNING: unknown GIN_MODE %q, using debug", cfg.GinMode)
		cfg.GinMode = "debug"
	}
	if cfg.MailTransport != TransportSMTP && cfg.MailTransport != TransportResend {
		log.Printf("WARNING: unknown MAIL_TRANSPORT %q, falling back to smtp", cfg.MailTransport)
		cfg.MailTransport = TransportSMTP
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty items and trailing slashes
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimRight(strings.TrimSpace(item), "/")
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

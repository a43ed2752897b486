package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	unset(t, "PORT", "MAIL_TRANSPORT", "SMTP_HOST", "SMTP_PORT", "PHONE_POLICY", "ALLOWED_ORIGINS", "DIAGNOSTICS_ENABLED", "CONTACT_RATE_LIMIT")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, TransportSMTP, cfg.MailTransport)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Equal(t, "strict", cfg.PhonePolicy)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.True(t, cfg.DiagnosticsEnabled)
	assert.Equal(t, 5, cfg.ContactRateLimit)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("EMAIL_USER", " relay@example.com ")
	t.Setenv("EMAIL_PASS", "app-password")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("MAIL_TRANSPORT", "RESEND")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com/, ,https://b.example.com")
	t.Setenv("DIAGNOSTICS_ENABLED", "false")
	t.Setenv("CONTACT_RATE_LIMIT", "not-a-number")
	t.Setenv("GIN_MODE", "release")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "relay@example.com", cfg.EmailUser)
	assert.Equal(t, "app-password", cfg.EmailPass)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.Equal(t, TransportResend, cfg.MailTransport)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.False(t, cfg.DiagnosticsEnabled)
	assert.Equal(t, 5, cfg.ContactRateLimit)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfigUnknownTransport(t *testing.T) {
	t.Setenv("MAIL_TRANSPORT", "carrier-pigeon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, TransportSMTP, cfg.MailTransport)
}

// unset removes keys for the duration of the test; t.Setenv restores them afterwards
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var keys = []string{
	"HOST", "PORT", "GEMINI_API_KEY", "API_KEY", "INSIGHT_MODEL",
	"SESSION_SECRET", "SESSION_TTL", "INSIGHT_RATE_LIMIT", "INSIGHT_RATE_WINDOW",
	"LOG_LEVEL", "LOG_FORMAT", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()

	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.InsightModel)
	assert.Equal(t, "fleetpulse-dev-secret-change-me", cfg.SessionSecret)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.InsightRateLimit)
	assert.Equal(t, time.Minute, cfg.InsightRateWindow)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("INSIGHT_RATE_LIMIT", "2")
	t.Setenv("LOG_FORMAT", "json")

	cfg := FromEnv()

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 2, cfg.InsightRateLimit)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")
	t.Setenv("SESSION_TTL", "forever")

	cfg := FromEnv()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
}

func TestFromEnv_APIKey(t *testing.T) {
	tests := []struct {
		name   string
		gemini string
		apiKey string
		want   string
	}{
		{"none", "", "", ""},
		{"gemini key", "g-key", "", "g-key"},
		{"fallback key", "", "a-key", "a-key"},
		{"gemini wins", "g-key", "a-key", "g-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GEMINI_API_KEY", tt.gemini)
			t.Setenv("API_KEY", tt.apiKey)

			assert.Equal(t, tt.want, FromEnv().GeminiAPIKey)
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	l := logrus.New()

	(&Config{LogLevel: "debug", LogFormat: "json"}).ConfigureLogger(l)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	(&Config{LogLevel: "loud", LogFormat: "text"}).ConfigureLogger(l)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
}

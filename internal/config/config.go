package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime settings of the dashboard server.
type Config struct {
	Host string
	Port int

	GeminiAPIKey string
	InsightModel string

	SessionSecret string
	SessionTTL    time.Duration

	InsightRateLimit  int
	InsightRateWindow time.Duration

	LogLevel  string
	LogFormat string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Host:              getEnv("HOST", ""),
		Port:              getEnvAsInt("PORT", 8080),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
		InsightModel:      getEnv("INSIGHT_MODEL", "gemini-2.5-flash"),
		SessionSecret:     getEnv("SESSION_SECRET", "fleetpulse-dev-secret-change-me"),
		SessionTTL:        getEnvAsDuration("SESSION_TTL", 12*time.Hour),
		InsightRateLimit:  getEnvAsInt("INSIGHT_RATE_LIMIT", 5),
		InsightRateWindow: getEnvAsDuration("INSIGHT_RATE_WINDOW", time.Minute),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		ReadTimeout:       getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      getEnvAsDuration("WRITE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ConfigureLogger applies the level and format settings to l.
// An unknown level falls back to info.
func (c *Config) ConfigureLogger(l *logrus.Logger) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

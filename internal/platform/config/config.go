package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"playerid/pkg/directory"
)

// Directory captures where and how directory lookups are sent.
type Directory struct {
	ProfileBaseURL string
	SessionBaseURL string
	// Timeout of zero leaves the HTTP client's own default in place.
	Timeout   time.Duration
	UserAgent string
}

// Config is the process level configuration shared by the binaries.
type Config struct {
	Directory Directory
	LogLevel  slog.Level
	// MockAddr is the listen address of the mock directory server.
	MockAddr string
	// MockLatency is added to every mock directory response.
	MockLatency time.Duration
}

// DefaultUserAgent identifies lookups made by the command line tools.
const DefaultUserAgent = "playerid/1.0"

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Directory: Directory{
			ProfileBaseURL: getEnv("PLAYERID_PROFILE_URL", directory.DefaultProfileBaseURL),
			SessionBaseURL: getEnv("PLAYERID_SESSION_URL", directory.DefaultSessionBaseURL),
			UserAgent:      getEnv("PLAYERID_USER_AGENT", DefaultUserAgent),
		},
		LogLevel: slog.LevelInfo,
		MockAddr: getEnv("PLAYERID_MOCK_ADDR", ":8081"),
	}

	if timeout := os.Getenv("PLAYERID_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d >= 0 {
			cfg.Directory.Timeout = d
		}
	}
	if latency := os.Getenv("PLAYERID_MOCK_LATENCY"); latency != "" {
		if d, err := time.ParseDuration(latency); err == nil && d >= 0 {
			cfg.MockLatency = d
		}
	}
	if level, ok := ParseLevel(os.Getenv("PLAYERID_LOG_LEVEL")); ok {
		cfg.LogLevel = level
	}
	return cfg
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

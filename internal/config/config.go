package config

import (
	"os"
	"strconv"
)

// FallbackPolicy decides what a module does when its durable backend cannot be
// reached at construction time.
type FallbackPolicy int

const (
	// FallbackToMemory degrades the module to the in-process repository with a
	// logged warning.
	FallbackToMemory FallbackPolicy = iota
	// FailOnUnavailable treats an unreachable backend as a fatal module
	// initialization error, failing application startup.
	FailOnUnavailable
)

func (p FallbackPolicy) String() string {
	if p == FailOnUnavailable {
		return "fail_on_unavailable"
	}
	return "fallback_to_memory"
}

// DatabaseConfig holds PostgreSQL connection settings. URL is optional; when
// empty the durable backend is considered unconfigured.
type DatabaseConfig struct {
	URL                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port     string
	Database DatabaseConfig
	Fallback FallbackPolicy
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
// Load is pure: it performs no logging and opens no connections.
func Load() *AppConfig {
	fallback := FallbackToMemory
	if !getEnvBool("FALLBACK_TO_MEMORY", true) {
		fallback = FailOnUnavailable
	}

	return &AppConfig{
		Port: getEnv("PORT", "3000"),
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Fallback: fallback,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

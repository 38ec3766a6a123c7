package config

import (
	"os"
	"strconv"
	"time"
)

// Store drivers accepted by STORE_DRIVER
const (
	StoreDriverPostgres = "postgres"
	StoreDriverDuckDB   = "duckdb"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	TablePrefix string
	// Storage
	StoreDriver string
	DatabaseURL string
	DuckDBPath  string
	// Auth (disabled when JWKSURL is empty)
	JWKSURL string
	// Folder rules
	VerifyParentExists bool
	// Logging
	LogDir      string
	LogMaxFiles int
	// Lifecycle
	ShutdownTimeout time.Duration
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        env,
		CORSOrigins:        getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:        getTablePrefix(env),
		StoreDriver:        getEnv("STORE_DRIVER", StoreDriverPostgres),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DuckDBPath:         getEnv("DUCKDB_PATH", "explorer.duckdb"),
		JWKSURL:            getEnv("JWKS_URL", ""),
		VerifyParentExists: getEnv("VERIFY_PARENT_EXISTS", "false") == "true",
		LogDir:             getEnv("LOG_DIR", ""),
		LogMaxFiles:        getEnvInt("LOG_MAX_FILES", 10),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// AuthEnabled reports whether bearer tokens are required on API routes
func (c *Config) AuthEnabled() bool {
	return c.JWKSURL != ""
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration, sourced from the environment.
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	CacheTTL    time.Duration
	CacheSize   int
}

// Load reads configuration from environment variables, applying defaults.
// DATABASE_URL wins when set; otherwise the URL is assembled from DB_* parts.
// A URL without a postgres:// scheme is treated as a SQLite path.
func Load() *Config {
	dbURL := getEnv("DATABASE_URL", "")
	if dbURL == "" {
		dbUser := getEnv("DB_USER", "postgres")
		dbPass := getEnv("DB_PASSWORD", "postgres")
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbName := getEnv("DB_NAME", "movielines")
		dbSSL := getEnv("DB_SSLMODE", "disable")

		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)
	}

	ttlMinutes, _ := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "5"))
	cacheSize, _ := strconv.Atoi(getEnv("CACHE_SIZE", "1000"))

	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8000"),
		DatabaseURL: dbURL,
		CacheTTL:    time.Duration(ttlMinutes) * time.Minute,
		CacheSize:   cacheSize,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

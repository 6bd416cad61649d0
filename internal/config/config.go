package config

import (
	"fmt"
	"os"
)

// Config holds application configuration.
type Config struct {
	Env          string
	Port         string
	DatabaseURL  string
	AuthAudience string
	AuthIssuer   string
	TMDBAPIKey   string
	TMDBBaseURL  string
	// APIBaseURL is where the view-data layer reaches the backend.
	APIBaseURL string
}

// Load reads configuration from the environment.
func Load() *Config {
	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "cinelog")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	port := getEnv("PORT", "8080")

	return &Config{
		Env:          getEnv("APP_ENV", "development"),
		Port:         port,
		DatabaseURL:  dbURL,
		AuthAudience: getEnv("AUTH_AUDIENCE", ""),
		AuthIssuer:   getEnv("AUTH_ISSUER", ""),
		TMDBAPIKey:   getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL:  getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:"+port),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

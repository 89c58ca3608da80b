package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Env           string
	Port          string
	AppSecret     string
	TMDBAPIKey    string
	TMDBBaseURL   string
	DatabaseURL   string
	SiteURL       string
	SessionTTL    time.Duration
	ProviderRPS   float64
	ProviderBurst int
}

// Load reads configuration from the environment.
// The provider API key and the session signing secret have no usable
// defaults: proceeding without either would mint unverifiable tokens or
// send empty-key requests upstream, so Load fails instead.
func Load() (*Config, error) {
	apiKey := os.Getenv("TMDB_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is not set")
	}

	appSecret := os.Getenv("APP_SECRET")
	if appSecret == "" {
		return nil, fmt.Errorf("APP_SECRET is not set")
	}

	ttlHours, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "24"))
	if ttlHours <= 0 {
		ttlHours = 24
	}

	rps, _ := strconv.ParseFloat(getEnv("PROVIDER_RPS", "20"), 64)
	burst, _ := strconv.Atoi(getEnv("PROVIDER_BURST", "40"))

	port := getEnv("PORT", "5008")

	return &Config{
		Env:           getEnv("APP_ENV", "development"),
		Port:          port,
		AppSecret:     appSecret,
		TMDBAPIKey:    apiKey,
		TMDBBaseURL:   getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SiteURL:       getEnv("SITE_URL", "http://localhost:"+port),
		SessionTTL:    time.Duration(ttlHours) * time.Hour,
		ProviderRPS:   rps,
		ProviderBurst: burst,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

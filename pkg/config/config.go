package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every knob the service reads from the environment. It is built
// once in main and handed to collaborators by reference; nothing reads
// os.Getenv after startup.
type Config struct {
	Port           string
	PostgresURL    string
	FrontendOrigin string

	JWTSecret string
	JWTTTL    time.Duration

	GenerationProvider string
	GenerationAPIKey   string
	GenerationModel    string
	GenerationBaseURL  string
	GenerationTimeout  time.Duration

	WeatherAPIKey  string
	WeatherBaseURL string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on process environment")
	}

	cfg := &Config{
		Port:           getEnvWithDefault("PORT", "8000"),
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		FrontendOrigin: getEnvWithDefault("FRONTEND_ORIGIN", "http://localhost:5173"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getDurationWithDefault("JWT_TTL_MINUTES", 60) * time.Minute,

		GenerationProvider: getEnvWithDefault("GENERATION_PROVIDER", "openai"),
		GenerationAPIKey:   os.Getenv("GENERATION_API_KEY"),
		GenerationModel:    os.Getenv("GENERATION_MODEL"),
		GenerationBaseURL:  os.Getenv("GENERATION_BASE_URL"),
		GenerationTimeout:  getDurationWithDefault("GENERATION_TIMEOUT_SECONDS", 60) * time.Second,

		WeatherAPIKey:  os.Getenv("WEATHER_API_KEY"),
		WeatherBaseURL: getEnvWithDefault("WEATHER_BASE_URL", "http://api.openweathermap.org"),
	}

	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GenerationAPIKey == "" {
		return nil, fmt.Errorf("GENERATION_API_KEY is required")
	}
	if cfg.WeatherAPIKey == "" {
		return nil, fmt.Errorf("WEATHER_API_KEY is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationWithDefault(key string, defaultValue int64) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(defaultValue)
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		log.Printf("Invalid value for %s: %q, using default %d", key, raw, defaultValue)
		return time.Duration(defaultValue)
	}
	return time.Duration(parsed)
}

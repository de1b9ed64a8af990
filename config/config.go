package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	Port        string
	DBUrl       string
	FrontendURL string
	// Secrets
	SignupSuccessSecret string // HMAC secret for signup success tokens
	SessionSecret       string // HS256 secret for session JWTs
	// Success token validity window
	SuccessTokenMaxAgeSec int
	// OpenAI (structured recommendations)
	OpenAIAPIKey  string
	OpenAIBaseURL string
	// Redis (rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate limiting
	RateLimitWindowSeconds   int
	RateLimitAuthThreshold   int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is a local convenience; production sets real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		SignupSuccessSecret:   getEnv("SIGNUP_SUCCESS_SECRET", getEnv("SESSION_SECRET", "")),
		SessionSecret:         getEnv("SESSION_SECRET", ""),
		SuccessTokenMaxAgeSec: getEnvInt("SUCCESS_TOKEN_MAX_AGE_SECONDS", 600),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Falling back to the in-memory store (development only).")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether the app runs with production settings, which
// forbids the dev fallback secrets.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

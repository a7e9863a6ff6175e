package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// JWTSecret signs both bearer and refresh tokens. It is injected into the
	// token service at construction; nothing reads it from the environment
	// after startup.
	JWTSecret string

	// Default token lifetimes in seconds, used when a login request does not
	// supply its own.
	BearerExpirySeconds  int
	RefreshExpirySeconds int

	// RateLimit is a ulule/limiter formatted rate, e.g. "20-M".
	RateLimit string

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("BEARER_EXPIRY_SECONDS", 600)
	viper.SetDefault("REFRESH_EXPIRY_SECONDS", 86400)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.BearerExpirySeconds = viper.GetInt("BEARER_EXPIRY_SECONDS")
	if cfg.BearerExpirySeconds <= 0 {
		cfg.BearerExpirySeconds = 600
		log.Printf("Warning: Invalid BEARER_EXPIRY_SECONDS. Defaulting to %d.\n", cfg.BearerExpirySeconds)
	}

	cfg.RefreshExpirySeconds = viper.GetInt("REFRESH_EXPIRY_SECONDS")
	if cfg.RefreshExpirySeconds <= 0 {
		cfg.RefreshExpirySeconds = 86400
		log.Printf("Warning: Invalid REFRESH_EXPIRY_SECONDS. Defaulting to %d.\n", cfg.RefreshExpirySeconds)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

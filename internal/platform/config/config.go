package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// Disbursement write-conflict retry policy
	DisburseMaxRetries   int
	DisburseRetryBackoff time.Duration

	// Rate limiting, e.g. "100-M" for 100 requests per minute
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("DISBURSE_MAX_RETRIES", 3)
	viper.SetDefault("DISBURSE_RETRY_BACKOFF", "50ms")
	viper.SetDefault("RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.DisburseMaxRetries = viper.GetInt("DISBURSE_MAX_RETRIES")
	if cfg.DisburseMaxRetries < 1 {
		log.Printf("Warning: DISBURSE_MAX_RETRIES must be at least 1, got %d. Defaulting to 3.\n", cfg.DisburseMaxRetries)
		cfg.DisburseMaxRetries = 3
	}

	backoffStr := viper.GetString("DISBURSE_RETRY_BACKOFF")
	backoff, err := time.ParseDuration(backoffStr)
	if err != nil || backoff <= 0 {
		backoff = 50 * time.Millisecond
		if backoffStr != "" {
			log.Printf("Warning: Invalid value for DISBURSE_RETRY_BACKOFF ('%s'). Defaulting to %s.\n", backoffStr, backoff.String())
		}
	}
	cfg.DisburseRetryBackoff = backoff

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}

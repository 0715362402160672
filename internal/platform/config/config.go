package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	// SeedSampleData controls whether the sample transactions are loaded at
	// startup alongside the seed accounts.
	SeedSampleData bool
	// CORSAllowedOrigins lists the dashboard origins allowed to call the API.
	CORSAllowedOrigins []string
	// LoginRateLimit is a ulule/limiter formatted rate, e.g. "5-M".
	LoginRateLimit string
	// PasswordMode selects the credential verifier: "plain" or "bcrypt".
	PasswordMode string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SEED_SAMPLE_DATA", true)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("PASSWORD_MODE", "plain")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.SeedSampleData = viper.GetBool("SEED_SAMPLE_DATA")

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, trimmed)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"http://localhost:3000"}
		log.Println("Warning: CORS_ALLOWED_ORIGINS not set. Defaulting to http://localhost:3000.")
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	if cfg.LoginRateLimit == "" {
		cfg.LoginRateLimit = "5-M"
		log.Printf("Warning: LOGIN_RATE_LIMIT not set. Defaulting to %s.\n", cfg.LoginRateLimit)
	}

	cfg.PasswordMode = viper.GetString("PASSWORD_MODE")
	switch cfg.PasswordMode {
	case "plain", "bcrypt":
	default:
		log.Printf("Warning: Invalid PASSWORD_MODE %q. Defaulting to plain.\n", cfg.PasswordMode)
		cfg.PasswordMode = "plain"
	}

	return cfg, nil
}

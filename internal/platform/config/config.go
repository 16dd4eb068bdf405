package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. Loaded once at startup and
// injected by reference; never re-read per request.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Session cookie settings.
	SessionSecret         string
	SessionExpiryDuration time.Duration
	SessionCookieName     string
	SessionIssuer         string

	// Seed/bootstrap credentials (dev convenience).
	SeedAdminUsername string
	SeedAdminPassword string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SESSION_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("SESSION_EXPIRY_DURATION", "168h")
	viper.SetDefault("SESSION_COOKIE_NAME", "session")
	viper.SetDefault("SESSION_ISSUER", "eventiqo-backend")
	viper.SetDefault("SEED_ADMIN_USERNAME", "admin")
	viper.SetDefault("SEED_ADMIN_PASSWORD", "password123")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.SessionSecret = viper.GetString("SESSION_SECRET")
	if cfg.SessionSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: SESSION_SECRET not set. Using default insecure key.")
	}

	expiryStr := viper.GetString("SESSION_EXPIRY_DURATION")
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		expiry = 168 * time.Hour // 7 days
		log.Printf("Warning: Invalid value for SESSION_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", expiryStr, expiry)
	}
	cfg.SessionExpiryDuration = expiry

	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")
	cfg.SessionIssuer = viper.GetString("SESSION_ISSUER")
	cfg.SeedAdminUsername = viper.GetString("SEED_ADMIN_USERNAME")
	cfg.SeedAdminPassword = viper.GetString("SEED_ADMIN_PASSWORD")

	return cfg, nil
}

package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted rate, e.g. "100-M"

	// Hub (public disclosure registry)
	HubBaseURL      string
	HubTokenURL     string
	HubClientID     string
	HubClientSecret string
	HubTimeout      time.Duration

	SyncConcurrency int
	SyncOnApprove   bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "polifund-ledger")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("HUB_BASE_URL", "")
	v.SetDefault("HUB_TOKEN_URL", "")
	v.SetDefault("HUB_CLIENT_ID", "")
	v.SetDefault("HUB_CLIENT_SECRET", "")
	v.SetDefault("HUB_TIMEOUT", "30s")
	v.SetDefault("SYNC_CONCURRENCY", 4)
	v.SetDefault("SYNC_ON_APPROVE", true)

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		HubBaseURL:      strings.TrimRight(v.GetString("HUB_BASE_URL"), "/"),
		HubTokenURL:     v.GetString("HUB_TOKEN_URL"),
		HubClientID:     v.GetString("HUB_CLIENT_ID"),
		HubClientSecret: v.GetString("HUB_CLIENT_SECRET"),
		SyncConcurrency: v.GetInt("SYNC_CONCURRENCY"),
		SyncOnApprove:   v.GetBool("SYNC_ON_APPROVE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	hubTimeoutStr := v.GetString("HUB_TIMEOUT")
	hubTimeout, err := time.ParseDuration(hubTimeoutStr)
	if err != nil || hubTimeout <= 0 {
		hubTimeout = 30 * time.Second
		log.Printf("Warning: Invalid value for HUB_TIMEOUT ('%s'). Defaulting to %s.\n", hubTimeoutStr, hubTimeout)
	}
	cfg.HubTimeout = hubTimeout

	if cfg.SyncConcurrency <= 0 {
		cfg.SyncConcurrency = 1
	}

	if cfg.HubBaseURL == "" {
		log.Println("Warning: HUB_BASE_URL not set. Hub synchronization will fail for every ledger.")
	}
	if cfg.HubClientID == "" || cfg.HubTokenURL == "" {
		log.Println("Warning: HUB_CLIENT_ID or HUB_TOKEN_URL not set. Hub requests will be sent without OAuth2 credentials.")
	}

	return cfg, nil
}

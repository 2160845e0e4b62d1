package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Projection defaults
	DefaultInflationRate decimal.Decimal
	MaxProjectionMonths  int

	AuthRateLimit      string // ulule/limiter formatted rate, e.g. "20-M"
	CORSAllowedOrigins []string
	MetricsNamespace   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "168h")
	viper.SetDefault("JWT_ISSUER", "networth-dashboard")
	viper.SetDefault("DEFAULT_INFLATION_RATE", "3.5")
	viper.SetDefault("MAX_PROJECTION_MONTHS", 480)
	viper.SetDefault("AUTH_RATE_LIMIT", "20-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("METRICS_NAMESPACE", "networth")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me-before-deploying" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "168h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 7 * 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	rateStr := viper.GetString("DEFAULT_INFLATION_RATE")
	rate, err := decimal.NewFromString(rateStr)
	if err != nil || rate.IsNegative() {
		rate = decimal.RequireFromString("3.5")
		log.Printf("Warning: Invalid value for DEFAULT_INFLATION_RATE ('%s'). Defaulting to %s.\n", rateStr, rate)
	}
	cfg.DefaultInflationRate = rate

	cfg.MaxProjectionMonths = viper.GetInt("MAX_PROJECTION_MONTHS")
	if cfg.MaxProjectionMonths <= 0 {
		cfg.MaxProjectionMonths = 480
		log.Printf("Warning: MAX_PROJECTION_MONTHS must be positive. Defaulting to %d.\n", cfg.MaxProjectionMonths)
	}

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	cfg.MetricsNamespace = viper.GetString("METRICS_NAMESPACE")

	return cfg, nil
}

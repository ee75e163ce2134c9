package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Rate limiting, e.g. "10-M" for 10 requests per minute
	LoginRateLimit string

	// CORS
	AllowedOrigins []string

	// First-run operator credential seeded when the users table is empty.
	DefaultOperatorUsername string
	DefaultOperatorPassword string

	// Control and dashboard account codes. These identify the well-known
	// accounts the subsidiary ledgers and the activity summary read.
	ReceivablesControlCode string
	PayablesControlCode    string
	CashAccountCode        string
	SalesAccountCode       string
	InventoryAccountCode   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "merpati-bookkeeping")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("DEFAULT_OPERATOR_USERNAME", "admin")
	viper.SetDefault("DEFAULT_OPERATOR_PASSWORD", "admin123")
	viper.SetDefault("RECEIVABLES_CONTROL_CODE", "1102")
	viper.SetDefault("PAYABLES_CONTROL_CODE", "2101")
	viper.SetDefault("CASH_ACCOUNT_CODE", "1101")
	viper.SetDefault("SALES_ACCOUNT_CODE", "4101")
	viper.SetDefault("INVENTORY_ACCOUNT_CODE", "1103")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")

	cfg.DefaultOperatorUsername = viper.GetString("DEFAULT_OPERATOR_USERNAME")
	cfg.DefaultOperatorPassword = viper.GetString("DEFAULT_OPERATOR_PASSWORD")

	cfg.ReceivablesControlCode = viper.GetString("RECEIVABLES_CONTROL_CODE")
	cfg.PayablesControlCode = viper.GetString("PAYABLES_CONTROL_CODE")
	cfg.CashAccountCode = viper.GetString("CASH_ACCOUNT_CODE")
	cfg.SalesAccountCode = viper.GetString("SALES_ACCOUNT_CODE")
	cfg.InventoryAccountCode = viper.GetString("INVENTORY_ACCOUNT_CODE")

	return cfg, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Port        string
	Origin      string
	Environment string
	LogLevel    string
	Admin       AdminConfig
	Database    DatabaseConfig
	Payment     PaymentConfig
	Redis       RedisConfig
}

// AdminConfig holds the shared admin credentials.
type AdminConfig struct {
	Username string
	Password string
	Token    string
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Driver     string // optional override: sqlite, postgres, mysql
	URL        string // client-server connection string
	SQLitePath string
}

// PaymentConfig holds payment provider configuration
type PaymentConfig struct {
	StripeSecretKey string
	Currency        string
}

// RedisConfig holds the optional doctor listing cache configuration
type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

// Fallbacks used when the environment does not provide a value. They exist so
// the server runs locally without any setup and must be overridden in production.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin888"
	DefaultAdminToken    = "default-secret-token"
	DefaultSQLitePath    = "medical.db"
)

// Load reads an optional .env file and then builds the configuration.
func Load() (*Config, error) {
	// .env is a local convenience; deployments inject real env vars
	_ = godotenv.Load()
	return LoadConfig()
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cacheTTL, err := getDuration("DOCTOR_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	// Redis treats a zero or negative expiry as "delete now"
	if cacheTTL <= 0 {
		return nil, fmt.Errorf("invalid DOCTOR_CACHE_TTL %s: must be positive", cacheTTL)
	}

	cfg := &Config{
		Port:        getEnv("PORT", "10000"),
		Origin:      getEnv("ORIGIN", "*"),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Admin: AdminConfig{
			Username: DefaultAdminUsername,
			Password: getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
			Token:    getEnv("SECRET_TOKEN", DefaultAdminToken),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", ""),
			URL:        getEnv("DATABASE_URL", ""),
			SQLitePath: getEnv("SQLITE_PATH", DefaultSQLitePath),
		},
		Payment: PaymentConfig{
			StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
			Currency:        getEnv("PAYMENT_CURRENCY", "usd"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			CacheTTL: cacheTTL,
		},
	}

	switch cfg.Database.Driver {
	case "", "sqlite", "postgres", "mysql":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: want sqlite, postgres or mysql", cfg.Database.Driver)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getDuration accepts either plain seconds or a Go duration string.
func getDuration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

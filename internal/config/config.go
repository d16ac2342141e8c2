package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	Port      string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads the environment, pulling in a local .env first when one
// exists. The signing key has no default on purpose.
func Load() (*Config, error) {
	// load .env in dev
	_ = godotenv.Load(".env")

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),
		DBTimezone: os.Getenv("DB_TIMEZONE"),
		Port:       os.Getenv("PORT"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   24 * time.Hour,
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if hours := os.Getenv("TOKEN_TTL_HOURS"); hours != "" {
		n, err := strconv.Atoi(hours)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL_HOURS must be a positive integer, got %q", hours)
		}
		cfg.TokenTTL = time.Duration(n) * time.Hour
	}

	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("DB environment variables not configured")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not configured")
	}
	return cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimezone,
	)
}

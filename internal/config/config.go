package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode   string
	Port      string
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Scoring   ScoringConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds access token configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// RateLimitConfig bounds the public loan-check endpoint
type RateLimitConfig struct {
	MaxCalls int
	Window   time.Duration
}

// ScoringConfig holds the scoring provider configuration
type ScoringConfig struct {
	BaseURL     string
	Credentials string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:   appMode,
		Port:      getEnv("PORT", "3000"),
		Database:  loadDatabaseConfig(appMode),
		JWT:       loadJWTConfig(appMode),
		RateLimit: loadRateLimitConfig(),
		Scoring:   loadScoringConfig(appMode),
	}

	log.Printf("Configuration loaded [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "loanguard"),
	}
}

// loadJWTConfig loads access token config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "15"))
	if accessMins <= 0 {
		accessMins = 15
	}

	return JWTConfig{
		Secret:          getEnv(prefix+"JWT_SECRET", "default_secret"),
		AccessTokenMins: accessMins,
	}
}

// loadRateLimitConfig loads the loan-check throttle config
func loadRateLimitConfig() RateLimitConfig {
	maxCalls, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX_CALLS", "5"))
	if maxCalls <= 0 {
		maxCalls = 5
	}
	windowSecs, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "30"))
	if windowSecs <= 0 {
		windowSecs = 30
	}

	return RateLimitConfig{
		MaxCalls: maxCalls,
		Window:   time.Duration(windowSecs) * time.Second,
	}
}

// loadScoringConfig loads the scoring provider config based on mode
func loadScoringConfig(mode string) ScoringConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return ScoringConfig{
		BaseURL:     getEnv("SCORING_BASE_URL", "https://api.moni.com.ar"),
		Credentials: getEnv(prefix+"SCORING_CREDENTIALS", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://loanguard.example.com"
	}
	return origins
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded before reading the environment when it exists.
// Variables already present in the environment take precedence.
const DefaultEnvFile = ".env"

// Config holds the configuration of the stock API server.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Seed     SeedConfig
}

// ClientConfig holds the configuration of the stock-admin console.
type ClientConfig struct {
	API         APIConfig
	Logger      LoggerConfig
	Credentials CredentialsConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds the admin account and token settings of the server.
type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	TokenTTL      int // seconds
}

// SeedConfig lists the catalogue files used by the refill-mocks action.
type SeedConfig struct {
	Files []string
	S3    S3Config
}

// S3Config holds AWS S3 configuration for seed catalogue files.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Path prefix within bucket (e.g., "seed/")
}

// APIConfig holds the location of the remote stock API.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration // 0 disables the timeout
}

// CredentialsConfig holds the admin credentials used by the console.
type CredentialsConfig struct {
	Username string
	Password string
}

// Load loads the server configuration from the environment.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 3001),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "stock"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
			JWTSecret:     getEnv("JWT_SECRET", ""),
			TokenTTL:      getEnvAsInt("TOKEN_TTL_SECONDS", 3600),
		},
		Seed: SeedConfig{
			Files: getEnvAsList("SEED_FILES", []string{"data/seed/catalog.yaml"}),
			S3: S3Config{
				Enabled: getEnvAsBool("S3_ENABLED", false),
				Bucket:  getEnv("S3_BUCKET", ""),
				Region:  getEnv("S3_REGION", "us-east-1"),
				Prefix:  getEnv("S3_PREFIX", "seed/"),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadClient loads the console configuration from the environment.
func LoadClient() (*ClientConfig, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("STOCK_API_BASE_URL", ""), "/"),
			Timeout: time.Duration(getEnvAsInt("STOCK_API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Credentials: CredentialsConfig{
			Username: getEnv("STOCK_ADMIN_USERNAME", ""),
			Password: getEnv("STOCK_ADMIN_PASSWORD", ""),
		},
	}

	// The base URL and timeout may still come from flags, so the caller
	// validates the whole configuration once they are applied.
	if err := cfg.Logger.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the server configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Auth.AdminUsername == "" {
		return fmt.Errorf("admin username is required")
	}

	if c.Auth.AdminPassword == "" {
		return fmt.Errorf("admin password is required")
	}

	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("JWT secret must be at least 16 characters")
	}

	if c.Auth.TokenTTL < 1 {
		return fmt.Errorf("token TTL must be at least 1 second")
	}

	if err := c.Logger.Validate(); err != nil {
		return err
	}

	if len(c.Seed.Files) == 0 {
		return fmt.Errorf("at least one seed file is required")
	}

	if c.Seed.S3.Enabled {
		if c.Seed.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.Seed.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	return nil
}

// Validate validates the console configuration.
func (c *ClientConfig) Validate() error {
	if err := c.API.Validate(); err != nil {
		return err
	}
	return c.Logger.Validate()
}

// Validate checks that the base URL is an absolute http(s) URL.
func (c *APIConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("API base URL is required (set STOCK_API_BASE_URL)")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid API base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API base URL scheme: %q (must be http or https)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("API base URL must include a host")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("API timeout must not be negative")
	}

	return nil
}

// Validate checks the log level and format.
func (c *LoggerConfig) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}

	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TokenTTLDuration returns the lifetime of issued access tokens.
func (c *AuthConfig) TokenTTLDuration() time.Duration {
	return time.Duration(c.TokenTTL) * time.Second
}

// loadEnvFile reads STOCK_ENV_FILE (default .env) into the environment.
// A missing file is not an error.
func loadEnvFile() error {
	path := getEnv("STOCK_ENV_FILE", DefaultEnvFile)
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping empty entries.
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the identity service
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Database
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"db_password"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// Credentials
	BcryptCost     int           `yaml:"bcrypt_cost"`
	TOTPSkew       uint          `yaml:"totp_skew"`
	TempSessionTTL time.Duration `yaml:"temp_session_ttl"`

	// Tokens
	TokenKeyFile   string        `yaml:"token_key_file"`
	TokenAlgorithm string        `yaml:"token_algorithm"`
	TokenIssuer    string        `yaml:"token_issuer"`
	TokenAudience  string        `yaml:"token_audience"`
	TokenTTL       time.Duration `yaml:"token_ttl"`
	TokenClockSkew time.Duration `yaml:"token_clock_skew"`

	// Downstream services
	AccountsServiceURL string `yaml:"accounts_service_url"`

	// Rate limiting
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
}

// Load reads configuration from an optional YAML file pointed to by
// CONFIG_FILE, then overlays environment variables on top. Env always
// wins so deployments can override a baked-in file.
func Load() (*Config, error) {
	config := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, err
		}
	}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", config.Port)
	config.Host = getEnvOrDefault("HOST", config.Host)
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", config.LogLevel)

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", config.DatabaseHost)
	config.DatabasePort = getEnvOrDefault("DB_PORT", config.DatabasePort)
	config.DatabaseName = getEnvOrDefault("DB_NAME", config.DatabaseName)
	config.DatabaseUser = getEnvOrDefault("DB_USER", config.DatabaseUser)
	config.DatabasePassword = getEnvOrDefault("DB_PASSWORD", config.DatabasePassword)
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", config.DatabaseSSLMode)

	// Credential configuration
	var err error
	config.BcryptCost, err = getIntEnv("BCRYPT_COST", config.BcryptCost)
	if err != nil {
		return nil, err
	}

	totpSkew, err := getIntEnv("TOTP_SKEW", int(config.TOTPSkew))
	if err != nil {
		return nil, err
	}
	if totpSkew < 0 {
		return nil, fmt.Errorf("TOTP_SKEW must not be negative: %d", totpSkew)
	}
	config.TOTPSkew = uint(totpSkew)

	config.TempSessionTTL, err = getDurationEnv("TEMP_SESSION_TTL", config.TempSessionTTL)
	if err != nil {
		return nil, err
	}

	// Token configuration
	config.TokenKeyFile = getEnvOrDefault("TOKEN_KEY_FILE", config.TokenKeyFile)
	if config.TokenKeyFile == "" {
		return nil, fmt.Errorf("TOKEN_KEY_FILE is required")
	}
	config.TokenAlgorithm = getEnvOrDefault("TOKEN_ALGORITHM", config.TokenAlgorithm)
	config.TokenIssuer = getEnvOrDefault("TOKEN_ISSUER", config.TokenIssuer)
	config.TokenAudience = getEnvOrDefault("TOKEN_AUDIENCE", config.TokenAudience)
	config.TokenTTL, err = getDurationEnv("TOKEN_TTL", config.TokenTTL)
	if err != nil {
		return nil, err
	}
	config.TokenClockSkew, err = getDurationEnv("TOKEN_CLOCK_SKEW", config.TokenClockSkew)
	if err != nil {
		return nil, err
	}

	// Downstream services
	config.AccountsServiceURL = getEnvOrDefault("ACCOUNTS_SERVICE_URL", config.AccountsServiceURL)
	if config.AccountsServiceURL == "" {
		return nil, fmt.Errorf("ACCOUNTS_SERVICE_URL is required")
	}

	// Rate limiting
	config.RateLimitRPS, err = getFloatEnv("RATE_LIMIT_RPS", config.RateLimitRPS)
	if err != nil {
		return nil, err
	}
	config.RateLimitBurst, err = getIntEnv("RATE_LIMIT_BURST", config.RateLimitBurst)
	if err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func defaults() *Config {
	return &Config{
		Port:            "9600",
		Host:            "0.0.0.0",
		LogLevel:        "info",
		DatabaseHost:    "identity-postgres",
		DatabasePort:    "5432",
		DatabaseName:    "identity_db",
		DatabaseUser:    "identity_user",
		DatabaseSSLMode: "require",
		BcryptCost:      12,
		TOTPSkew:        1,
		TempSessionTTL:  time.Hour,
		TokenAlgorithm:  "RS256",
		TokenIssuer:     "identity-service",
		TokenAudience:   "identity-service",
		TokenTTL:        time.Hour,
		TokenClockSkew:  30 * time.Second,
		RateLimitRPS:    10,
		RateLimitBurst:  20,
	}
}

// loadFile overlays values from a YAML file. Fields absent from the
// file keep their current values.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	// Check port range (1-65535)
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate bcrypt cost (bcrypt itself accepts 4-31)
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost must be between 4 and 31, got: %d", c.BcryptCost)
	}

	// Validate token algorithm
	validAlgorithms := []string{"RS256", "RS384", "RS512"}
	if !contains(validAlgorithms, c.TokenAlgorithm) {
		return fmt.Errorf("invalid token algorithm: %s (must be one of: %s)", c.TokenAlgorithm, strings.Join(validAlgorithms, ", "))
	}

	// Validate token lifetime (minimum 1 minute)
	if c.TokenTTL < time.Minute {
		return fmt.Errorf("token TTL must be at least 1 minute, got: %v", c.TokenTTL)
	}

	// Validate temp session lifetime (minimum 1 minute)
	if c.TempSessionTTL < time.Minute {
		return fmt.Errorf("temp session TTL must be at least 1 minute, got: %v", c.TempSessionTTL)
	}

	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit must be positive, got: %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1, got: %d", c.RateLimitBurst)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getFloatEnv(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

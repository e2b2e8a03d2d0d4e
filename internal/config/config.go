package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mskustudx/studx/internal/pkg/helpers"
)

// Storage drivers
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
		// AllowedOrigins feeds the CORS policy
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	} `yaml:"server"`

	Storage struct {
		Driver        string `yaml:"driver" env:"STORAGE_DRIVER"`
		Path          string `yaml:"path" env:"STORAGE_PATH"`
		PostgresDSN   string `yaml:"postgres_dsn" env:"STORAGE_POSTGRES_DSN"`
		MaxOpenConns  int    `yaml:"max_open_conns" env:"STORAGE_MAX_OPEN_CONNS"`
		RedisAddr     string `yaml:"redis_addr" env:"STORAGE_REDIS_ADDR"`
		RedisPassword string `yaml:"redis_password" env:"STORAGE_REDIS_PASSWORD"`
		RedisDB       int    `yaml:"redis_db" env:"STORAGE_REDIS_DB"`
		RedisKey      string `yaml:"redis_key" env:"STORAGE_REDIS_KEY"`
		Timeout       string `yaml:"timeout" env:"STORAGE_TIMEOUT"`
	} `yaml:"storage"`

	JWT struct {
		Enabled               bool   `yaml:"enabled" env:"JWT_ENABLED"`
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
		Path    string `yaml:"path" env:"METRICS_PATH"`
	} `yaml:"metrics"`

	// EnvOverrides lists the environment variables applied by LoadConfig
	EnvOverrides []string `yaml:"-"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and environment apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Default returns a configuration with defaults applied and no overrides
func Default() *Config {
	config := &Config{}
	setDefaults(config)
	return config
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.AllowedOrigins = []string{"*"}

	// Storage defaults
	config.Storage.Driver = StorageFile
	config.Storage.Path = "data/users-data.json"
	config.Storage.MaxOpenConns = 4
	config.Storage.RedisAddr = "localhost:6379"
	config.Storage.RedisKey = "studx:users"
	config.Storage.Timeout = "5s"

	// JWT defaults
	config.JWT.Enabled = false
	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.Issuer = "studx"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Metrics defaults
	config.Metrics.Enabled = true
	config.Metrics.Path = "/metrics"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	applied, err := applyEnvOverrides(config)
	if err != nil {
		return err
	}
	config.EnvOverrides = applied
	return nil
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Storage.Driver {
	case StorageFile:
		if config.Storage.Path == "" {
			return fmt.Errorf("storage path is required for the file driver")
		}
	case StoragePostgres:
		if config.Storage.PostgresDSN == "" {
			return fmt.Errorf("storage postgres_dsn is required for the postgres driver")
		}
	case StorageRedis:
		if config.Storage.RedisAddr == "" {
			return fmt.Errorf("storage redis_addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if _, err := time.ParseDuration(config.Storage.Timeout); err != nil {
		return fmt.Errorf("invalid storage timeout format: %w", err)
	}

	if config.JWT.Enabled {
		if config.JWT.Secret == "" {
			return fmt.Errorf("JWT secret is required when JWT is enabled")
		}
		if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
			return fmt.Errorf("invalid JWT access token expiration format: %w", err)
		}
	}

	if config.Metrics.Enabled && !strings.HasPrefix(config.Metrics.Path, "/") {
		return fmt.Errorf("metrics path must start with /")
	}

	return nil
}

// StorageTimeout returns the parsed storage timeout
func (c *Config) StorageTimeout() time.Duration {
	return helpers.PositiveDuration(c.Storage.Timeout, 5*time.Second)
}

// AccessTokenTTL returns the parsed access token lifetime
func (c *Config) AccessTokenTTL() time.Duration {
	return helpers.PositiveDuration(c.JWT.AccessTokenExpiration, time.Hour)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

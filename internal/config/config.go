package config

import (
	"fmt"
	"time"

	apperrors "technician-board/internal/errors"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultPin = "1971"
)

// Config holds all configuration for the API server
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseDriver   string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	SeedOnEmpty      bool   `mapstructure:"SEED_ON_EMPTY"`

	// Edit gate
	EditPin string `mapstructure:"EDIT_PIN"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// PIN attempt limiting, disabled when RedisURL is empty
	RedisURL      string        `mapstructure:"REDIS_URL"`
	PinRateLimit  int           `mapstructure:"PIN_RATE_LIMIT"`
	PinRateWindow time.Duration `mapstructure:"PIN_RATE_WINDOW"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// ClientConfig holds configuration for the terminal board client
type ClientConfig struct {
	APIURL           string        `mapstructure:"BOARD_API_URL"`
	RefreshInterval  time.Duration `mapstructure:"BOARD_REFRESH_INTERVAL"`
	PinErrorDuration time.Duration `mapstructure:"BOARD_PIN_ERROR_DURATION"`
	RequestTimeout   time.Duration `mapstructure:"BOARD_REQUEST_TIMEOUT"`
	LogFile          string        `mapstructure:"BOARD_LOG_FILE"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
}

// Load reads server configuration from environment variables and config files
func Load() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// LoadClient reads the board client configuration
func LoadClient() (*ClientConfig, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	setClientDefaults(v)

	var config ClientConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.APIURL == "" {
		return nil, fmt.Errorf("config validation failed: %w", apperrors.NewConfigurationError("BOARD_API_URL is required"))
	}
	if config.RefreshInterval <= 0 {
		return nil, fmt.Errorf("config validation failed: %w", apperrors.NewConfigurationError("BOARD_REFRESH_INTERVAL must be positive"))
	}

	return &config, nil
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "3001")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "technician_board")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("SEED_ON_EMPTY", true)

	v.SetDefault("EDIT_PIN", defaultPin)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("PIN_RATE_LIMIT", 5)
	v.SetDefault("PIN_RATE_WINDOW", time.Minute)

	v.SetDefault("METRICS_ENABLED", true)
}

func setClientDefaults(v *viper.Viper) {
	v.SetDefault("BOARD_API_URL", "http://localhost:3001")
	v.SetDefault("BOARD_REFRESH_INTERVAL", 30*time.Second)
	v.SetDefault("BOARD_PIN_ERROR_DURATION", 2*time.Second)
	v.SetDefault("BOARD_REQUEST_TIMEOUT", 10*time.Second)
	v.SetDefault("BOARD_LOG_FILE", "board.log")
	v.SetDefault("LOG_LEVEL", "info")
}

func buildDatabaseURL(config *Config) string {
	if config.DatabaseDriver == DriverSQLite {
		return config.DatabaseName + ".db"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	switch config.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return apperrors.NewConfigurationError(fmt.Sprintf("unsupported DATABASE_DRIVER %q", config.DatabaseDriver))
	}

	if config.EditPin == "" {
		return apperrors.NewConfigurationError("EDIT_PIN is required")
	}
	if config.Environment == "production" && config.EditPin == defaultPin {
		return apperrors.NewConfigurationError("EDIT_PIN must be changed in production")
	}

	if config.RedisURL != "" && (config.PinRateLimit <= 0 || config.PinRateWindow <= 0) {
		return apperrors.NewConfigurationError("PIN_RATE_LIMIT and PIN_RATE_WINDOW must be positive when REDIS_URL is set")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// PinRateLimitEnabled reports whether PIN attempts are throttled
func (c *Config) PinRateLimitEnabled() bool {
	return c.RedisURL != ""
}

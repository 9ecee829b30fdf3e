package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server       ServerConfig
	Validation   ValidationConfig
	Verification VerificationConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// ValidationConfig holds validation pipeline configuration
type ValidationConfig struct {
	MinimumAge int `mapstructure:"minimum_age"`
}

// VerificationConfig holds settings for the external licence verification API
type VerificationConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Validate checks that the verification configuration is usable in the given
// environment. When the feature is enabled a base URL and token are required.
func (c *VerificationConfig) Validate(environment string) error {
	if !c.Enabled {
		return nil
	}
	if c.BaseURL == "" {
		return errors.New("VERISCAN_VERIFICATION_BASE_URL required when verification is enabled")
	}
	if c.Token == "" {
		return errors.New("VERISCAN_VERIFICATION_TOKEN required when verification is enabled")
	}
	if environment == EnvProduction || environment == EnvStaging {
		if strings.Contains(c.BaseURL, "localhost") {
			return errors.New("localhost verification API not allowed in " + environment)
		}
	}
	return nil
}

// Load loads configuration from environment and config files.
// This function applies development defaults and is suitable for local development.
// For production use, prefer LoadWithValidation which enforces required configuration.
func Load(serviceName string) (*Config, error) {
	return loadConfig(serviceName, true)
}

// LoadWithValidation loads configuration and validates it for the current environment.
// In production/staging environments, this will fail if required configuration is missing.
// Use this function in service main() for fail-fast behavior.
func LoadWithValidation(serviceName string) (*Config, error) {
	cfg, err := loadConfig(serviceName, true)
	if err != nil {
		return nil, err
	}

	if err := cfg.Verification.Validate(cfg.Server.Environment); err != nil {
		return nil, fmt.Errorf("verification configuration error: %w", err)
	}

	if cfg.Validation.MinimumAge < 0 || cfg.Validation.MinimumAge > 150 {
		return nil, fmt.Errorf("invalid minimum age: %d", cfg.Validation.MinimumAge)
	}

	return cfg, nil
}

// loadConfig is the internal configuration loader
func loadConfig(serviceName string, applyDefaults bool) (*Config, error) {
	v := viper.New()

	if applyDefaults {
		setDefaults(v)
	}

	// Read from environment variables
	v.SetEnvPrefix("VERISCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from config file if exists
	v.SetConfigName(serviceName)
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/veriscan")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.environment", "development")

	// Validation defaults
	v.SetDefault("validation.minimum_age", 18)

	// Verification defaults. The external registry check is opt-in.
	v.SetDefault("verification.enabled", false)
	v.SetDefault("verification.base_url", "")
	v.SetDefault("verification.token", "")
	v.SetDefault("verification.timeout", 30*time.Second)
}

// Package config provides configuration management for the spread optimizer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Optimizer OptimizerConfig `mapstructure:"optimizer"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// OptimizerConfig holds the default cost and quality parameters applied
// to optimization runs when the caller does not override them.
type OptimizerConfig struct {
	// Quantity is the default lot size in contracts per leg.
	Quantity int `mapstructure:"quantity"`
	// FeesTotal is the default flat fee charged once per spread.
	FeesTotal float64 `mapstructure:"fees_total"`
	// MinRiskReward is the default quality gate on the net ratio.
	MinRiskReward float64 `mapstructure:"min_risk_reward"`
}

// DatabaseConfig holds quote storage configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// ConfigDir returns the application configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "spread-optimizer"), nil
}

// Load reads configuration from the config directory, applying defaults
// and environment overrides. A missing config file is not an error; the
// defaults are a lot of 100 contracts, 44.00 in flat fees, and a
// minimum net risk/reward of 1.0.
func Load() (*Config, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configDir)
}

// LoadFrom reads configuration from a specific directory.
func LoadFrom(configDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("optimizer.quantity", 100)
	v.SetDefault("optimizer.fees_total", 44.00)
	v.SetDefault("optimizer.min_risk_reward", 1.0)
	v.SetDefault("database.path", filepath.Join(configDir, "quotes.db"))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Seed an editable template and continue with defaults.
		if err := createTemplateConfig(configDir); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SPREADS_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("SPREADS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SPREADS_MIN_RISK_REWARD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Optimizer.MinRiskReward = f
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Optimizer.Quantity <= 0 {
		return fmt.Errorf("optimizer.quantity must be positive")
	}
	if c.Optimizer.FeesTotal < 0 {
		return fmt.Errorf("optimizer.fees_total must be non-negative")
	}
	if c.Optimizer.MinRiskReward < 0 {
		return fmt.Errorf("optimizer.min_risk_reward must be non-negative")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must be set")
	}
	return nil
}

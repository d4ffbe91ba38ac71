// Package config provides Viper-based hierarchical configuration:
// defaults, then an optional config.yaml, then BANKFEED_* environment
// variables. A .env file is loaded first when present.
package config

import (
	"fmt"
	"os"
	"strings"

	"finflow/bankfeed/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Parsers struct {
		Spreadsheet struct {
			HeaderOffset int `mapstructure:"header_offset" yaml:"header_offset"`
		} `mapstructure:"spreadsheet" yaml:"spreadsheet"`
	} `mapstructure:"parsers" yaml:"parsers"`

	Registry struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"registry" yaml:"registry"`
}

// LoadEnv loads a .env file from the working directory when present. Missing
// files are not an error.
func LoadEnv() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}

// Initialize builds the configuration from defaults, the optional config
// file, and the environment.
func Initialize() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bankfeed")
	v.AddConfigPath(".bankfeed")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BANKFEED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("parsers.spreadsheet.header_offset", 16)
	v.SetDefault("registry.file", "")
}

func validate(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}
	if config.Parsers.Spreadsheet.HeaderOffset < 0 {
		return fmt.Errorf("parsers.spreadsheet.header_offset must be >= 0, got %d",
			config.Parsers.Spreadsheet.HeaderOffset)
	}
	return nil
}

// NewLogger builds the application logger from the configuration.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}

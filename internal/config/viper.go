// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the configuration reads.
const EnvPrefix = "ACTEXP"

// AppDir is the per-user configuration directory name.
const AppDir = ".activity-export"

// ValidFormats are the export format names accepted in configuration.
var ValidFormats = []string{"csv", "ofx", "qfx"}

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Accounts struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"accounts" yaml:"accounts"`

	State struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"state" yaml:"state"`

	OFX struct {
		Org              string `mapstructure:"org" yaml:"org"`
		FID              string `mapstructure:"fid" yaml:"fid"`
		IntuBID          string `mapstructure:"intu_bid" yaml:"intu_bid"`
		CharsetTranscode bool   `mapstructure:"charset_transcode" yaml:"charset_transcode"`
	} `mapstructure:"ofx" yaml:"ofx"`

	Export struct {
		DefaultFormat string `mapstructure:"default_format" yaml:"default_format"`
		OutputDir     string `mapstructure:"output_dir" yaml:"output_dir"`
	} `mapstructure:"export" yaml:"export"`

	Sink struct {
		AzureServiceURL string `mapstructure:"azure_service_url" yaml:"azure_service_url"`
	} `mapstructure:"sink" yaml:"sink"`
}

// InitializeConfig loads config.yaml from the standard locations, then
// environment variables.
func InitializeConfig() (*Config, error) {
	return InitializeConfigWithFile("")
}

// InitializeConfigWithFile is InitializeConfig reading an explicit config
// file instead of searching for one. An explicit file must exist.
func InitializeConfigWithFile(file string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join("$HOME", AppDir))
		v.AddConfigPath(AppDir)
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("accounts.file", "accounts.yaml")
	v.SetDefault("state.file", defaultStateFile())

	v.SetDefault("ofx.org", "ActivityExport")
	v.SetDefault("ofx.fid", "1000")
	v.SetDefault("ofx.intu_bid", "")
	v.SetDefault("ofx.charset_transcode", true)

	v.SetDefault("export.default_format", "csv")
	v.SetDefault("export.output_dir", ".")

	v.SetDefault("sink.azure_service_url", "")
}

func defaultStateFile() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, AppDir, "export-state.yaml")
	}
	return filepath.Join(AppDir, "export-state.yaml")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if !isValidFormat(config.Export.DefaultFormat) {
		return fmt.Errorf("invalid export.default_format: %s (must be one of %s)",
			config.Export.DefaultFormat, strings.Join(ValidFormats, ", "))
	}

	if strings.TrimSpace(config.Accounts.File) == "" {
		return errors.New("accounts.file must not be empty")
	}

	if strings.TrimSpace(config.State.File) == "" {
		return errors.New("state.file must not be empty")
	}

	return nil
}

func isValidFormat(name string) bool {
	name = strings.ToLower(name)
	for _, f := range ValidFormats {
		if f == name {
			return true
		}
	}
	return false
}

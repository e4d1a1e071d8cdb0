// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"fjacquet/recipe-book/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "RECIPEBOOK"

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DataConfig locates the recipe and substitute documents.
type DataConfig struct {
	Directory       string `mapstructure:"directory" yaml:"directory"`
	RecipesFile     string `mapstructure:"recipes_file" yaml:"recipes_file"`
	SubstitutesFile string `mapstructure:"substitutes_file" yaml:"substitutes_file"`
	BackupEnabled   bool   `mapstructure:"backup_enabled" yaml:"backup_enabled"`
}

// ExportConfig holds output settings.
type ExportConfig struct {
	Format       string `mapstructure:"format" yaml:"format"`
	CSVDelimiter string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Data   DataConfig   `mapstructure:"data" yaml:"data"`
	Export ExportConfig `mapstructure:"export" yaml:"export"`
}

// RecipesPath returns the recipe document path, joined with Data.Directory
// unless the file is absolute.
func (c *Config) RecipesPath() string {
	return c.dataPath(c.Data.RecipesFile)
}

// SubstitutesPath returns the substitute document path.
func (c *Config) SubstitutesPath() string {
	return c.dataPath(c.Data.SubstitutesFile)
}

func (c *Config) dataPath(file string) string {
	if c.Data.Directory == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.Data.Directory, file)
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Export.CSVDelimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile is InitializeConfig with an explicit config file. An
// empty path searches the default locations.
func InitializeConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.recipe-book")
		v.AddConfigPath(".recipe-book")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		if configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
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
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Data defaults
	v.SetDefault("data.directory", "")
	v.SetDefault("data.recipes_file", models.DefaultRecipesFile)
	v.SetDefault("data.substitutes_file", models.DefaultSubstitutesFile)
	v.SetDefault("data.backup_enabled", false)

	// Export defaults
	v.SetDefault("export.format", "text")
	v.SetDefault("export.csv_delimiter", ",")
}

var exportFormats = []string{"text", "json", "yaml", "csv"}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Data.RecipesFile) == "" {
		return fmt.Errorf("data.recipes_file must not be empty")
	}
	if strings.TrimSpace(config.Data.SubstitutesFile) == "" {
		return fmt.Errorf("data.substitutes_file must not be empty")
	}

	valid := false
	for _, f := range exportFormats {
		if config.Export.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid export format: %s (must be one of %s)", config.Export.Format, strings.Join(exportFormats, ", "))
	}

	// Validate CSV delimiter
	if utf8.RuneCountInString(config.Export.CSVDelimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Export.CSVDelimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

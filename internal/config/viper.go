// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"emo/payment-statement-parser/internal/report"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration,
// e.g. STMT_LOG_LEVEL for log.level.
const EnvPrefix = "STMT"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Encoding struct {
		// PassthroughUTF8 leaves input that is already UTF-8 undecoded.
		PassthroughUTF8 bool `mapstructure:"passthrough_utf8" yaml:"passthrough_utf8"`
	} `mapstructure:"encoding" yaml:"encoding"`

	Validation struct {
		// Workers bounds concurrent row validation; 0 means one per CPU.
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"validation" yaml:"validation"`

	Swedbank struct {
		SkipUnknownRecordTypes bool `mapstructure:"skip_unknown_record_types" yaml:"skip_unknown_record_types"`
		TransactionsOnly       bool `mapstructure:"transactions_only" yaml:"transactions_only"`
	} `mapstructure:"swedbank" yaml:"swedbank"`

	Report struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-parser")
	v.AddConfigPath(".statement-parser")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
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

	v.SetDefault("encoding.passthrough_utf8", false)

	v.SetDefault("validation.workers", 0)

	v.SetDefault("swedbank.skip_unknown_record_types", false)
	v.SetDefault("swedbank.transactions_only", true)

	v.SetDefault("report.format", report.FormatText)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Validation.Workers < 0 || config.Validation.Workers > 1024 {
		return fmt.Errorf("validation.workers must be between 0 and 1024, got: %d", config.Validation.Workers)
	}

	if !report.IsValidFormat(config.Report.Format) {
		return fmt.Errorf("invalid report format: %s (must be one of %s)",
			config.Report.Format, strings.Join(report.Formats(), ", "))
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.False(t, config.Encoding.PassthroughUTF8)
	assert.Equal(t, 0, config.Validation.Workers)
	assert.False(t, config.Swedbank.SkipUnknownRecordTypes)
	assert.True(t, config.Swedbank.TransactionsOnly)
	assert.Equal(t, "text", config.Report.Format)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	testEnvVars := map[string]string{
		"STMT_LOG_LEVEL":                          "debug",
		"STMT_LOG_FORMAT":                         "json",
		"STMT_ENCODING_PASSTHROUGH_UTF8":          "true",
		"STMT_VALIDATION_WORKERS":                 "4",
		"STMT_SWEDBANK_SKIP_UNKNOWN_RECORD_TYPES": "true",
		"STMT_SWEDBANK_TRANSACTIONS_ONLY":         "false",
		"STMT_REPORT_FORMAT":                      "json",
	}

	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.True(t, config.Encoding.PassthroughUTF8)
	assert.Equal(t, 4, config.Validation.Workers)
	assert.True(t, config.Swedbank.SkipUnknownRecordTypes)
	assert.False(t, config.Swedbank.TransactionsOnly)
	assert.Equal(t, "json", config.Report.Format)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
  format: "json"
validation:
  workers: 2
swedbank:
  transactions_only: false
report:
  format: "yaml"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644))
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 2, config.Validation.Workers)
	assert.False(t, config.Swedbank.TransactionsOnly)
	assert.Equal(t, "yaml", config.Report.Format)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
validation:
  workers: 2
report:
  format: "csv"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0644))

	t.Setenv("STMT_LOG_LEVEL", "error")
	t.Setenv("STMT_VALIDATION_WORKERS", "8")
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)    // env var wins
	assert.Equal(t, 8, config.Validation.Workers) // env var wins
	assert.Equal(t, "csv", config.Report.Format)  // config file value
}

func TestInitializeConfig_Invalid(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())
	t.Setenv("STMT_REPORT_FORMAT", "xml")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration: invalid report format: xml")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name: "invalid log level",
			modifyConfig: func(c *Config) {
				c.Log.Level = "invalid"
			},
			expectError: "invalid log level",
		},
		{
			name: "invalid log format",
			modifyConfig: func(c *Config) {
				c.Log.Format = "invalid"
			},
			expectError: "invalid log format",
		},
		{
			name: "negative workers",
			modifyConfig: func(c *Config) {
				c.Validation.Workers = -1
			},
			expectError: "validation.workers must be between 0 and 1024",
		},
		{
			name: "too many workers",
			modifyConfig: func(c *Config) {
				c.Validation.Workers = 4096
			},
			expectError: "validation.workers must be between 0 and 1024",
		},
		{
			name: "invalid report format",
			modifyConfig: func(c *Config) {
				c.Report.Format = "html"
			},
			expectError: "invalid report format: html (must be one of text, json, yaml, csv, xlsx)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			require.NoError(t, validateConfig(config))

			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{"text format info level", "info", "text", logrus.InfoLevel, false},
		{"json format debug level", "debug", "json", logrus.DebugLevel, true},
		{"upper case level", "WARN", "text", logrus.WarnLevel, false},
		{"invalid level falls back to info", "loud", "text", logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			config.Log.Level = tt.level
			config.Log.Format = tt.format

			logger := ConfigureLoggingFromConfig(config)
			require.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel, logger.GetLevel())
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Run("no env file", func(t *testing.T) {
		chdir(t, t.TempDir())

		loaded, err := LoadEnv()
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("env file in current directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STMT_TEST_LOADED=yes\n"), 0600))
		chdir(t, dir)
		t.Setenv("STMT_TEST_LOADED", "")
		require.NoError(t, os.Unsetenv("STMT_TEST_LOADED"))

		loaded, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, ".env", loaded)
		assert.Equal(t, "yes", GetEnv("STMT_TEST_LOADED", "no"))
	})

	t.Run("existing variables win", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STMT_TEST_LOADED=yes\n"), 0600))
		chdir(t, dir)
		t.Setenv("STMT_TEST_LOADED", "already")

		_, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, "already", GetEnv("STMT_TEST_LOADED", "no"))
	})
}

func TestGetEnv(t *testing.T) {
	t.Setenv("STMT_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("STMT_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("STMT_TEST_MISSING_VALUE", "fallback"))
}

func validConfig() *Config {
	config := &Config{}
	config.Log.Level = "info"
	config.Log.Format = "text"
	config.Report.Format = "text"
	return config
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	t.Chdir(dir)
}

// clearTestEnvVars unsets configuration variables for the duration of a test.
func clearTestEnvVars(t *testing.T) {
	for _, key := range []string{
		"STMT_LOG_LEVEL",
		"STMT_LOG_FORMAT",
		"STMT_ENCODING_PASSTHROUGH_UTF8",
		"STMT_VALIDATION_WORKERS",
		"STMT_SWEDBANK_SKIP_UNKNOWN_RECORD_TYPES",
		"STMT_SWEDBANK_TRANSACTIONS_ONLY",
		"STMT_REPORT_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

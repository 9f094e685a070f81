package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/activity-export/internal/logging"
)

// isolate points HOME at an empty directory and clears the variables the
// configuration reads.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"ACTEXP_LOG_LEVEL", "ACTEXP_LOG_FORMAT", "ACTEXP_ACCOUNTS_FILE", "ACTEXP_STATE_FILE",
		"ACTEXP_OFX_ORG", "ACTEXP_OFX_FID", "ACTEXP_OFX_INTU_BID", "ACTEXP_OFX_CHARSET_TRANSCODE",
		"ACTEXP_EXPORT_DEFAULT_FORMAT", "ACTEXP_EXPORT_OUTPUT_DIR", "ACTEXP_SINK_AZURE_SERVICE_URL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

func TestInitializeConfig_Defaults(t *testing.T) {
	home := isolate(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "accounts.yaml", config.Accounts.File)
	assert.Equal(t, filepath.Join(home, AppDir, "export-state.yaml"), config.State.File)
	assert.Equal(t, "ActivityExport", config.OFX.Org)
	assert.Equal(t, "1000", config.OFX.FID)
	assert.Empty(t, config.OFX.IntuBID)
	assert.True(t, config.OFX.CharsetTranscode)
	assert.Equal(t, "csv", config.Export.DefaultFormat)
	assert.Equal(t, ".", config.Export.OutputDir)
	assert.Empty(t, config.Sink.AzureServiceURL)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)

	t.Setenv("ACTEXP_LOG_LEVEL", "debug")
	t.Setenv("ACTEXP_LOG_FORMAT", "json")
	t.Setenv("ACTEXP_OFX_FID", "9876")
	t.Setenv("ACTEXP_OFX_CHARSET_TRANSCODE", "false")
	t.Setenv("ACTEXP_EXPORT_DEFAULT_FORMAT", "qfx")
	t.Setenv("ACTEXP_SINK_AZURE_SERVICE_URL", "https://acct.blob.core.windows.net/")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "9876", config.OFX.FID)
	assert.False(t, config.OFX.CharsetTranscode)
	assert.Equal(t, "qfx", config.Export.DefaultFormat)
	assert.Equal(t, "https://acct.blob.core.windows.net/", config.Sink.AzureServiceURL)
}

func TestInitializeConfigWithFile(t *testing.T) {
	isolate(t)

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
log:
  level: warn
accounts:
  file: /data/accounts.yaml
ofx:
  org: Brokerage
  intu_bid: "3000"
export:
  default_format: ofx
  output_dir: gs://exports/statements
`), 0600))

	config, err := InitializeConfigWithFile(file)
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "/data/accounts.yaml", config.Accounts.File)
	assert.Equal(t, "Brokerage", config.OFX.Org)
	assert.Equal(t, "1000", config.OFX.FID)
	assert.Equal(t, "3000", config.OFX.IntuBID)
	assert.Equal(t, "ofx", config.Export.DefaultFormat)
	assert.Equal(t, "gs://exports/statements", config.Export.OutputDir)
}

func TestInitializeConfigWithFile_Missing(t *testing.T) {
	isolate(t)
	_, err := InitializeConfigWithFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestInitializeConfig_HomeDirectoryFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, AppDir), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(home, AppDir, "config.yaml"), []byte("ofx:\n  org: FromHome\n"), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "FromHome", config.OFX.Org)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Log.Level = "info"
		c.Log.Format = "text"
		c.Export.DefaultFormat = "csv"
		c.Accounts.File = "accounts.yaml"
		c.State.File = "state.yaml"
		return c
	}

	assert.NoError(t, validateConfig(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad export format", func(c *Config) { c.Export.DefaultFormat = "xlsx" }},
		{"no accounts file", func(c *Config) { c.Accounts.File = " " }},
		{"no state file", func(c *Config) { c.State.File = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, validateConfig(c))
		})
	}

	c := valid()
	c.Export.DefaultFormat = "QFX"
	assert.NoError(t, validateConfig(c))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	c := &Config{}
	c.Log.Level = "debug"
	c.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(c)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	c.Log.Level = "nonsense"
	c.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(c)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	assert.NotNil(t, NewLogger(c))
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	logger := logging.NewMockLogger()
	assert.Equal(t, "", LoadEnv(logger))

	t.Setenv("ACTEXP_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("ACTEXP_TEST_VALUE"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ACTEXP_TEST_VALUE=from-dotenv\n"), 0600))

	assert.Equal(t, ".env", LoadEnv(logger))
	assert.Equal(t, "from-dotenv", os.Getenv("ACTEXP_TEST_VALUE"))
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	config, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, 16, config.Parsers.Spreadsheet.HeaderOffset)
	assert.Empty(t, config.Registry.File)
}

func TestInitializeEnvOverrides(t *testing.T) {
	t.Setenv("BANKFEED_LOG_LEVEL", "debug")
	t.Setenv("BANKFEED_LOG_FORMAT", "json")
	t.Setenv("BANKFEED_PARSERS_SPREADSHEET_HEADER_OFFSET", "4")
	t.Setenv("BANKFEED_REGISTRY_FILE", "/etc/bankfeed/registry.yaml")

	config, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 4, config.Parsers.Spreadsheet.HeaderOffset)
	assert.Equal(t, "/etc/bankfeed/registry.yaml", config.Registry.File)
}

func TestInitializeRejectsInvalidValues(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("BANKFEED_LOG_LEVEL", "verbose")
		_, err := Initialize()
		assert.Error(t, err)
	})

	t.Run("bad log format", func(t *testing.T) {
		t.Setenv("BANKFEED_LOG_FORMAT", "xml")
		_, err := Initialize()
		assert.Error(t, err)
	})

	t.Run("negative header offset", func(t *testing.T) {
		t.Setenv("BANKFEED_PARSERS_SPREADSHEET_HEADER_OFFSET", "-1")
		_, err := Initialize()
		assert.Error(t, err)
	})
}

func TestNewLoggerFromConfig(t *testing.T) {
	config, err := Initialize()
	require.NoError(t, err)
	assert.NotNil(t, config.NewLogger())
}

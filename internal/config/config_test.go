package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saltsizer/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "table", cfg.Output)
}

func TestNew_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SALTSIZER_LOG_LEVEL", "debug")
	t.Setenv("SALTSIZER_LOG_FORMAT", "json")
	t.Setenv("SALTSIZER_OUTPUT", "yaml")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "yaml", cfg.Output)
}

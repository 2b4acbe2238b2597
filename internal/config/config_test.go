package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"CZAS_DB", "CZAS_LOG_LEVEL", "CZAS_LOG_FORMAT", "CZAS_TIMEZONE", "CZAS_LAYOUT", "CZAS_STRICT_YEAR", "CZAS_STYLE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultDBPath(), cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "2006-01-02 15:04:05", cfg.Layout)
	assert.Equal(t, "plain", cfg.Style)
	assert.False(t, cfg.StrictYear)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CZAS_DB", "/tmp/czas-test.db")
	t.Setenv("CZAS_STRICT_YEAR", "true")
	t.Setenv("CZAS_STYLE", "ascii")
	t.Setenv("CZAS_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/czas-test.db", cfg.DBPath)
	assert.True(t, cfg.StrictYear)
	assert.Equal(t, "ascii", cfg.Style)
	assert.True(t, cfg.Converter().StrictYear)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestValidate_Invalid(t *testing.T) {
	cases := map[string]string{
		"CZAS_STYLE":      "gothic",
		"CZAS_LOG_FORMAT": "xml",
		"CZAS_TIMEZONE":   "Mars/Olympus_Mons",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			cfg, err := Load()
			require.NoError(t, err)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_Unparsable(t *testing.T) {
	t.Setenv("CZAS_STRICT_YEAR", "maybe")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_AfterOverride(t *testing.T) {
	t.Setenv("CZAS_STYLE", "gothic")

	cfg, err := Load()
	require.NoError(t, err)
	require.Error(t, cfg.Validate())

	cfg.Style = "upper"
	assert.NoError(t, cfg.Validate())
}

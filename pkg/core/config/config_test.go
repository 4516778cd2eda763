package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/require"

	"github.com/rcarmo/go-timefmt/pkg/core/config"
	"github.com/rcarmo/go-timefmt/pkg/libctime"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"CONFIG", "TIMEZONE", "LOCALE", "BUFFER_SIZE", "LOG_LEVEL", "LOG_FORMAT", "FORMAT"} {
		t.Setenv("TIMEFMT_"+key, "")
		require.NoError(t, os.Unsetenv("TIMEFMT_"+key))
	}
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, libctime.DefaultBufferSize, cfg.BufferSize)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "logfmt", cfg.LogFormat)
	require.False(t, cfg.TimezoneSet)
	require.Empty(t, cfg.Locale)
	require.Len(t, cfg.Options(nil), 2)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("TIMEFMT_TIMEZONE", "UTC-3")
	t.Setenv("TIMEFMT_LOCALE", "C")
	t.Setenv("TIMEFMT_BUFFER_SIZE", "64")
	t.Setenv("TIMEFMT_LOG_LEVEL", "DEBUG")
	t.Setenv("TIMEFMT_FORMAT", "%F")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.True(t, cfg.TimezoneSet)
	require.Equal(t, "UTC-3", cfg.Timezone)
	require.Equal(t, "C", cfg.Locale)
	require.Equal(t, 64, cfg.BufferSize)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "%F", cfg.Format)
	require.Len(t, cfg.Options(nil), 4)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timefmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: POSIX\nbuffer_size: 32\nlog_format: json\n"), 0644))
	t.Setenv("TIMEFMT_CONFIG", path)
	t.Setenv("TIMEFMT_BUFFER_SIZE", "48")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "POSIX", cfg.Locale)
	require.Equal(t, 48, cfg.BufferSize, "environment wins over the file")
	require.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"TIMEFMT_BUFFER_SIZE", "0"},
		{"TIMEFMT_LOG_LEVEL", "loud"},
		{"TIMEFMT_LOG_FORMAT", "xml"},
		{"TIMEFMT_CONFIG", "/nonexistent/timefmt.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			require.Error(t, err)
		})
	}
}

func TestLoggerFiltersLevel(t *testing.T) {
	t.Setenv("TIMEFMT_LOG_LEVEL", "warn")
	cfg, err := config.Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := cfg.Logger(&buf)
	require.NoError(t, level.Debug(logger).Log("msg", "hidden"))
	require.NoError(t, level.Warn(logger).Log("msg", "shown"))
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown")
	require.Contains(t, buf.String(), "level=warn")
}

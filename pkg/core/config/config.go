// Package config loads timefmt settings from TIMEFMT_* environment variables
// and an optional configuration file named by TIMEFMT_CONFIG.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/viper"

	"github.com/rcarmo/go-timefmt/pkg/libctime"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TIMEFMT"

// Config holds the settings shared by all applets. Locale and timezone
// variables (LC_ALL, LC_TIME, LANG, TZ) are read by the C runtime itself;
// Timezone and Locale override them only when set.
type Config struct {
	Timezone    string
	TimezoneSet bool
	Locale      string
	BufferSize  int
	LogLevel    string
	LogFormat   string
	Format      string
}

// Load reads the process environment.
func Load() (*Config, error) {
	return FromViper(viper.New())
}

// FromViper reads settings through v, binding it to the environment first.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("buffer_size", libctime.DefaultBufferSize)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "logfmt")

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{
		Timezone:    v.GetString("timezone"),
		TimezoneSet: v.IsSet("timezone"),
		Locale:      v.GetString("locale"),
		BufferSize:  v.GetInt("buffer_size"),
		LogLevel:    strings.ToLower(v.GetString("log_level")),
		LogFormat:   strings.ToLower(v.GetString("log_format")),
		Format:      v.GetString("format"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.BufferSize <= 0 {
		return fmt.Errorf("config: buffer_size must be positive, got %d", c.BufferSize)
	}
	if _, ok := levels[c.LogLevel]; !ok {
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "logfmt", "json":
	default:
		return fmt.Errorf("config: unknown log_format %q", c.LogFormat)
	}
	return nil
}

var levels = map[string]level.Option{
	"debug": level.AllowDebug(),
	"info":  level.AllowInfo(),
	"warn":  level.AllowWarn(),
	"error": level.AllowError(),
	"none":  level.AllowNone(),
}

// Logger returns a leveled logger writing to w.
func (c *Config) Logger(w io.Writer) log.Logger {
	var logger log.Logger
	if c.LogFormat == "json" {
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	} else {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	allow, ok := levels[c.LogLevel]
	if !ok {
		allow = level.AllowWarn()
	}
	return level.NewFilter(logger, allow)
}

// Options translates c into libctime.Init options.
func (c *Config) Options(logger log.Logger) []libctime.Option {
	opts := []libctime.Option{
		libctime.WithBufferSize(c.BufferSize),
		libctime.WithLogger(logger),
	}
	if c.TimezoneSet {
		opts = append(opts, libctime.WithTimezone(c.Timezone))
	}
	if c.Locale != "" {
		opts = append(opts, libctime.WithLocale(c.Locale))
	}
	return opts
}

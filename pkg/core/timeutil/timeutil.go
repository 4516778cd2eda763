// Package timeutil provides shared helpers for time-based applets.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rcarmo/go-timefmt/pkg/core"
	"github.com/rcarmo/go-timefmt/pkg/core/config"
	"github.com/rcarmo/go-timefmt/pkg/libctime"
)

// OpenEnv loads the configuration and initializes the process locale and
// timezone for an applet. Diagnostics are logged to stderr.
func OpenEnv(stdio *core.Stdio) (*libctime.Env, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	env, err := libctime.Init(cfg.Options(cfg.Logger(stdio.Err))...)
	if err != nil {
		return nil, nil, err
	}
	return env, cfg, nil
}

// ParseEpoch parses BusyBox-style timestamps: "@SECONDS" or plain SECONDS.
func ParseEpoch(value string) (libctime.Epoch, error) {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "@")
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return libctime.Epoch(n), nil
}

// FormatDuration renders d seconds BusyBox uptime style: "N days, HH:MM"
// or " H:MM".
func FormatDuration(seconds uint64) string {
	totalMinutes := seconds / 60
	days := totalMinutes / (60 * 24)
	hours := (totalMinutes / 60) % 24
	minutes := totalMinutes % 60
	if days > 0 {
		return fmt.Sprintf("%d days, %2d:%02d", days, hours, minutes)
	}
	return fmt.Sprintf("%2d:%02d", hours, minutes)
}

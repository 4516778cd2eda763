// Package uptime implements the uptime command.
package uptime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rcarmo/go-timefmt/pkg/core"
	"github.com/rcarmo/go-timefmt/pkg/core/fs"
	"github.com/rcarmo/go-timefmt/pkg/core/timeutil"
)

// Proc files read by Run. Tests point them elsewhere.
var (
	uptimePath  = "/proc/uptime"
	loadavgPath = "/proc/loadavg"
)

// Run executes the uptime command. It displays the current local time,
// how long the system has been running, the number of users, and
// the system load averages. No flags are supported.
func Run(stdio *core.Stdio, args []string) int {
	if len(args) > 0 {
		return core.UsageError(stdio, "uptime", "invalid option -- '"+args[0]+"'")
	}
	env, _, err := timeutil.OpenEnv(stdio)
	if err != nil {
		return core.Failure(stdio, "uptime", err)
	}
	now, err := env.FormatLocal("%H:%M:%S", env.Epoch())
	if err != nil {
		return core.Failure(stdio, "uptime", err)
	}
	secs, err := readUptime()
	if err != nil {
		return core.Failure(stdio, "uptime", err)
	}
	users := 0
	load1, load5, load15 := readLoadavg()
	stdio.Printf("%s up %s,  %d users,  load average: %.2f, %.2f, %.2f\n",
		now,
		timeutil.FormatDuration(secs),
		users,
		load1, load5, load15,
	)
	return core.ExitSuccess
}

func readUptime() (uint64, error) {
	data, err := fs.ReadFile(uptimePath)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("invalid %s", uptimePath)
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("invalid %s", uptimePath)
	}
	return uint64(secs), nil
}

func readLoadavg() (float64, float64, float64) {
	data, err := fs.ReadFile(loadavgPath)
	if err != nil {
		return 0, 0, 0
	}
	fields := strings.Fields(string(data))
	if len(fields) < 3 {
		return 0, 0, 0
	}
	load1, _ := strconv.ParseFloat(fields[0], 64)
	load5, _ := strconv.ParseFloat(fields[1], 64)
	load15, _ := strconv.ParseFloat(fields[2], 64)
	return load1, load5, load15
}

// Package date implements the date command.
package date

import (
	"strings"

	"github.com/rcarmo/go-timefmt/pkg/core"
	"github.com/rcarmo/go-timefmt/pkg/core/fs"
	"github.com/rcarmo/go-timefmt/pkg/core/timeutil"
	"github.com/rcarmo/go-timefmt/pkg/libctime"
)

// DefaultFormat matches BusyBox date without arguments.
const DefaultFormat = "%a %b %e %H:%M:%S %Z %Y"

const rfc2822Format = "%a, %d %b %Y %H:%M:%S %z"

var isoFormats = map[string]string{
	"date":    "%Y-%m-%d",
	"hours":   "%Y-%m-%dT%H%z",
	"minutes": "%Y-%m-%dT%H:%M%z",
	"seconds": "%Y-%m-%dT%H:%M:%S%z",
}

type options struct {
	utc       bool
	formatSet bool
	format    string
	date      string
	reference string
}

// Run executes the date command.
//
// Supported flags:
//
//	-u           Print Coordinated Universal Time
//	-R           Output RFC-2822 compliant date string
//	-I[SPEC]     Output ISO-8601 date; SPEC is date (default), hours,
//	             minutes or seconds
//	-d @SECONDS  Display the given timestamp instead of now
//	-r FILE      Display the last modification time of FILE
//	+FORMAT      strftime(3) format for the output
//
// Setting the system clock is not supported.
func Run(stdio *core.Stdio, args []string) int {
	opts, code := parseArgs(stdio, args)
	if code != core.ExitSuccess {
		return code
	}

	env, cfg, err := timeutil.OpenEnv(stdio)
	if err != nil {
		return core.Failure(stdio, "date", err)
	}

	epoch := env.Epoch()
	switch {
	case opts.date != "":
		if !strings.HasPrefix(strings.TrimSpace(opts.date), "@") {
			stdio.Errorf("date: invalid date '%s'\n", opts.date)
			return core.ExitFailure
		}
		epoch, err = timeutil.ParseEpoch(opts.date)
		if err != nil {
			stdio.Errorf("date: invalid date '%s'\n", opts.date)
			return core.ExitFailure
		}
	case opts.reference != "":
		epoch, err = fs.ModTime(opts.reference)
		if err != nil {
			return core.FileError(stdio, "date", opts.reference, err)
		}
	}

	format := opts.format
	if !opts.formatSet && format == "" {
		format = cfg.Format
		if format == "" {
			format = DefaultFormat
		}
	}
	zone := libctime.Local
	if opts.utc {
		zone = libctime.UTC
	}

	out, err := env.Format(format, epoch, zone)
	if err != nil {
		return core.Failure(stdio, "date", err)
	}
	stdio.Println(out)
	return core.ExitSuccess
}

func parseArgs(stdio *core.Stdio, args []string) (*options, int) {
	opts := &options{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case strings.HasPrefix(arg, "+"):
			if opts.formatSet {
				return nil, core.UsageError(stdio, "date", "extra operand '"+arg+"'")
			}
			opts.format = arg[1:]
			opts.formatSet = true
		case arg == "--utc" || arg == "--universal":
			opts.utc = true
		case arg == "--rfc-2822" || arg == "--rfc-email":
			opts.format = rfc2822Format
		case strings.HasPrefix(arg, "--date="):
			opts.date = strings.TrimPrefix(arg, "--date=")
		case strings.HasPrefix(arg, "--reference="):
			opts.reference = strings.TrimPrefix(arg, "--reference=")
		case strings.HasPrefix(arg, "--iso-8601"):
			spec := strings.TrimPrefix(strings.TrimPrefix(arg, "--iso-8601"), "=")
			format, ok := isoFormat(spec)
			if !ok {
				return nil, core.UsageError(stdio, "date", "invalid argument '"+spec+"' for '--iso-8601'")
			}
			opts.format = format
		case arg == "--":
			continue
		case len(arg) > 1 && arg[0] == '-':
			next, code := parseShort(stdio, opts, args, i)
			if code != core.ExitSuccess {
				return nil, code
			}
			i = next
		default:
			stdio.Errorf("date: cannot set date: operation not supported\n")
			return nil, core.ExitFailure
		}
	}
	return opts, core.ExitSuccess
}

// parseShort handles a cluster of short flags starting at args[i] and
// returns the index of the last argument consumed.
func parseShort(stdio *core.Stdio, opts *options, args []string, i int) (int, int) {
	arg := args[i]
	for j := 1; j < len(arg); j++ {
		switch arg[j] {
		case 'u':
			opts.utc = true
		case 'R':
			opts.format = rfc2822Format
		case 'I':
			format, ok := isoFormat(arg[j+1:])
			if !ok {
				return i, core.UsageError(stdio, "date", "invalid argument '"+arg[j+1:]+"' for '-I'")
			}
			opts.format = format
			return i, core.ExitSuccess
		case 'd', 'r':
			val := arg[j+1:]
			if val == "" {
				if i+1 >= len(args) {
					return i, core.UsageError(stdio, "date", "option requires an argument -- '"+string(arg[j])+"'")
				}
				i++
				val = args[i]
			}
			if arg[j] == 'd' {
				opts.date = val
			} else {
				opts.reference = val
			}
			return i, core.ExitSuccess
		default:
			return i, core.UsageError(stdio, "date", "invalid option -- '"+string(arg[j])+"'")
		}
	}
	return i, core.ExitSuccess
}

func isoFormat(spec string) (string, bool) {
	if spec == "" {
		spec = "date"
	}
	format, ok := isoFormats[spec]
	return format, ok
}

// Package awk implements the awk applet on GoAWK, with the gawk time
// functions systime() and strftime() backed by the C library.
package awk

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/benhoyt/goawk/interp"
	"github.com/benhoyt/goawk/parser"

	"github.com/rcarmo/go-timefmt/pkg/core"
	"github.com/rcarmo/go-timefmt/pkg/core/fs"
	"github.com/rcarmo/go-timefmt/pkg/core/timeutil"
	"github.com/rcarmo/go-timefmt/pkg/libctime"
)

// DefaultFormat is the strftime() format used when none is given.
const DefaultFormat = "%a %b %e %H:%M:%S %Z %Y"

// Run executes the awk command with the given arguments.
//
// Supported flags:
//
//	-F SEP      Set field separator (default whitespace)
//	-v VAR=VAL  Assign variable before execution
//	-f FILE     Read program from FILE
//
// The first non-flag argument is the AWK program text (unless -f is used).
// Remaining arguments are input files or VAR=VAL assignments; stdin is read
// if there are none.
func Run(stdio *core.Stdio, args []string) int {
	opts, err := parseArgs(stdio, args)
	if err != nil {
		var ae *argError
		if errors.As(err, &ae) {
			return core.UsageError(stdio, "awk", err.Error())
		}
		return core.Failure(stdio, "awk", err)
	}

	env, _, err := timeutil.OpenEnv(stdio)
	if err != nil {
		return core.Failure(stdio, "awk", err)
	}
	funcs := timeFuncs(stdio, env)

	prog, err := parser.ParseProgram([]byte(opts.program), &parser.ParserConfig{Funcs: funcs})
	if err != nil {
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			stdio.Errorf("awk: cmd. line:%d: %s\n", pe.Position.Line, pe.Message)
			return core.ExitFailure
		}
		return core.Failure(stdio, "awk", err)
	}

	config := &interp.Config{
		Argv0:   "awk",
		Stdin:   stdio.In,
		Output:  stdio.Out,
		Error:   stdio.Err,
		Args:    opts.operands,
		Vars:    opts.vars,
		Funcs:   funcs,
		Environ: environ(),
	}
	status, err := interp.ExecProgram(prog, config)
	if err != nil {
		return core.Failure(stdio, "awk", err)
	}
	return status
}

// timeFuncs returns the native functions exposed to programs:
//
//	systime()                          current epoch seconds
//	strftime([fmt [, ts [, utc]]])     format ts (default now) in local
//	                                   time, or UTC when utc is non-zero
func timeFuncs(stdio *core.Stdio, env *libctime.Env) map[string]interface{} {
	return map[string]interface{}{
		"systime": func() float64 {
			return float64(env.Epoch())
		},
		"strftime": func(args ...string) string {
			format := DefaultFormat
			if len(args) > 0 {
				format = args[0]
			}
			epoch := env.Epoch()
			if len(args) > 1 {
				epoch = toEpoch(args[1])
			}
			zone := libctime.Local
			if len(args) > 2 && isTrue(args[2]) {
				zone = libctime.UTC
			}
			out, err := env.Format(format, epoch, zone)
			if err != nil {
				stdio.Errorf("awk: strftime: %v\n", err)
				return ""
			}
			return out
		},
	}
}

// toEpoch converts an awk number to an epoch the way gawk truncates it.
// Negative and non-numeric values become 0.
func toEpoch(s string) libctime.Epoch {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	if f >= 1<<64 {
		return libctime.Epoch(1<<64 - 1)
	}
	return libctime.Epoch(f)
}

func isTrue(s string) bool {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f != 0
	}
	return s != ""
}

func environ() []string {
	env := os.Environ()
	pairs := make([]string, 0, len(env)*2)
	for _, entry := range env {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		pairs = append(pairs, name, value)
	}
	return pairs
}

type options struct {
	program  string
	operands []string
	vars     []string
}

// parseArgs follows BusyBox awk CLI parsing semantics.
func parseArgs(stdio *core.Stdio, args []string) (*options, error) {
	opts := &options{}
	fromFile := false
	pos := 0
	for pos < len(args) {
		arg := args[pos]
		if arg == "--" {
			pos++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}
		val, usedNext, err := optValue(arg, pos, args)
		if err != nil {
			return nil, err
		}
		switch arg[1] {
		case 'F':
			opts.vars = append(opts.vars, "FS", unescape(val))
		case 'v':
			key, value, ok := strings.Cut(val, "=")
			if !ok || key == "" {
				return nil, errMissing("variable")
			}
			opts.vars = append(opts.vars, key, unescape(value))
		case 'f':
			var content []byte
			if val == "-" {
				content, err = io.ReadAll(stdio.In)
			} else {
				content, err = fs.ReadFile(val)
			}
			if err != nil {
				return nil, err
			}
			opts.program += string(content) + "\n"
			fromFile = true
		default:
			return nil, errInvalid(arg)
		}
		if usedNext {
			pos++
		}
		pos++
	}
	rest := args[pos:]
	if !fromFile {
		if len(rest) == 0 {
			return nil, errMissing("program")
		}
		opts.program, rest = rest[0], rest[1:]
	}
	opts.operands = rest
	if len(opts.operands) == 0 {
		opts.operands = []string{"-"}
	}
	return opts, nil
}

func optValue(arg string, pos int, args []string) (string, bool, error) {
	if len(arg) > 2 {
		return arg[2:], false, nil
	}
	if pos+1 >= len(args) {
		return "", false, errMissing("argument to " + arg)
	}
	return args[pos+1], true, nil
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return strings.NewReplacer(`\t`, "\t", `\n`, "\n", `\\`, `\`).Replace(s)
}

type argError struct {
	msg string
}

func (e *argError) Error() string { return e.msg }

func errMissing(what string) error {
	return &argError{msg: "missing " + what}
}

func errInvalid(arg string) error {
	return &argError{msg: "invalid option -- '" + strings.TrimPrefix(arg, "-")[:1] + "'"}
}

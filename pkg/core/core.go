// Package core provides shared functionality for timefmt applets.
package core

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Exit codes following POSIX conventions
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Stdio holds the standard I/O streams for an applet.
// This allows for easy testing by injecting mock streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStdio returns Stdio configured with os.Stdin, os.Stdout, os.Stderr.
func DefaultStdio() *Stdio {
	return &Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Errorf writes a formatted error message to stderr.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// Printf writes a formatted message to stdout.
func (s *Stdio) Printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

// Print writes a message to stdout.
func (s *Stdio) Print(args ...any) {
	fmt.Fprint(s.Out, args...)
}

// Println writes a message to stdout with a newline.
func (s *Stdio) Println(args ...any) {
	fmt.Fprintln(s.Out, args...)
}

// OutIsTerminal reports whether stdout is attached to a terminal.
func (s *Stdio) OutIsTerminal() bool {
	f, ok := s.Out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// UsageError prints a usage error and returns ExitUsage.
func UsageError(stdio *Stdio, applet, message string) int {
	stdio.Errorf("%s: %s\n", applet, message)
	return ExitUsage
}

// FileError prints a file-related error and returns ExitFailure.
func FileError(stdio *Stdio, applet, path string, err error) int {
	stdio.Errorf("%s: %s: %v\n", applet, path, err)
	return ExitFailure
}

// Failure prints err and returns ExitFailure.
func Failure(stdio *Stdio, applet string, err error) int {
	stdio.Errorf("%s: %v\n", applet, err)
	return ExitFailure
}

// ParseBoolFlags parses short boolean flags (e.g., -abc) and returns remaining args.
func ParseBoolFlags(stdio *Stdio, applet string, args []string, flags map[byte]*bool) ([]string, int) {
	var files []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			files = append(files, args[i+1:]...)
			break
		}
		if len(arg) > 1 && arg[0] == '-' {
			for _, c := range arg[1:] {
				target, ok := flags[byte(c)]
				if !ok {
					return nil, UsageError(stdio, applet, "invalid option -- '"+string(c)+"'")
				}
				if target != nil {
					*target = true
				}
			}
		} else {
			files = append(files, arg)
		}
	}
	return files, ExitSuccess
}

package testutil

import "os/exec"

// Command wraps exec.Command for helpers that run the reference busybox or
// a freshly built timefmt binary.
func Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...) // #nosec G204 -- test helper for external command
}

// Command cal is a standalone entry point for the cal applet.
package main

import (
	"os"

	"github.com/rcarmo/go-timefmt/pkg/applets/cal"
	"github.com/rcarmo/go-timefmt/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(cal.Run(stdio, os.Args[1:]))
}

// Command uptime is a standalone entry point for the uptime applet.
package main

import (
	"os"

	"github.com/rcarmo/go-timefmt/pkg/applets/uptime"
	"github.com/rcarmo/go-timefmt/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(uptime.Run(stdio, os.Args[1:]))
}

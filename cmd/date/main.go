// Command date is a standalone entry point for the date applet.
package main

import (
	"os"

	"github.com/rcarmo/go-timefmt/pkg/applets/date"
	"github.com/rcarmo/go-timefmt/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(date.Run(stdio, os.Args[1:]))
}

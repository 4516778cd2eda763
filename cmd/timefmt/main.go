// Command timefmt is a multi-call binary bundling the time formatting
// applets. Invoke it as "timefmt APPLET ..." or through a link named after
// the applet.
package main

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/rcarmo/go-timefmt/pkg/applets/awk"
	"github.com/rcarmo/go-timefmt/pkg/applets/cal"
	"github.com/rcarmo/go-timefmt/pkg/applets/date"
	"github.com/rcarmo/go-timefmt/pkg/applets/uptime"
	"github.com/rcarmo/go-timefmt/pkg/core"
)

const multiCall = "timefmt"

type appletFunc func(stdio *core.Stdio, args []string) int

var applets = map[string]appletFunc{
	"awk":    awk.Run,
	"cal":    cal.Run,
	"date":   date.Run,
	"uptime": uptime.Run,
}

func main() {
	os.Exit(run(core.DefaultStdio(), os.Args))
}

func run(stdio *core.Stdio, argv []string) int {
	applet, args := resolveApplet(argv)
	if applet == "" {
		printAppletList(stdio)
		return core.ExitUsage
	}

	fn, ok := applets[applet]
	if !ok {
		stdio.Errorf("%s: applet not found: %s\n", multiCall, applet)
		printAppletList(stdio)
		return core.ExitUsage
	}

	// Applets expect args without the applet name.
	return fn(stdio, args)
}

func resolveApplet(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}

	name := filepath.Base(args[0])
	if name == multiCall {
		if len(args) < 2 {
			return "", nil
		}
		return args[1], args[2:]
	}

	// Invoked through a link named after the applet.
	return name, args[1:]
}

func printAppletList(stdio *core.Stdio) {
	names := make([]string, 0, len(applets))
	for name := range applets {
		names = append(names, name)
	}
	sort.Strings(names)
	stdio.Println("Currently defined functions:")
	for _, name := range names {
		stdio.Print(" ", name)
	}
	stdio.Println()
}

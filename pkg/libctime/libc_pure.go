//go:build !cgo || !unix

package libctime

import (
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	lestrrat "github.com/lestrrat-go/strftime"
)

// Native reports whether formatting goes through the C library.
const Native = false

// maxBrokenDown is the last second whose year still fits the int tm_year of
// a C struct tm.
const maxBrokenDown = 67768036191676799

// pureLocation stands in for the C runtime's timezone state. Guarded by mu.
var pureLocation = time.Local

func cTzset() {
	tz, ok := os.LookupEnv("TZ")
	if !ok {
		pureLocation = time.Local
		return
	}
	pureLocation = loadZone(strings.TrimPrefix(tz, ":"))
}

func loadZone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}
	if loc, ok := parsePOSIXOffset(tz); ok {
		return loc
	}
	return time.UTC
}

// parsePOSIXOffset reads the standard-time part of a POSIX TZ string such as
// "UTC-3" or "<+0530>-5:30". Daylight saving rules are ignored.
func parsePOSIXOffset(tz string) (*time.Location, bool) {
	var name string
	if strings.HasPrefix(tz, "<") {
		end := strings.IndexByte(tz, '>')
		if end < 0 {
			return nil, false
		}
		name, tz = tz[1:end], tz[end+1:]
	} else {
		i := 0
		for i < len(tz) && (tz[i] >= 'a' && tz[i] <= 'z' || tz[i] >= 'A' && tz[i] <= 'Z') {
			i++
		}
		name, tz = tz[:i], tz[i:]
	}
	if len(name) < 3 || tz == "" {
		return nil, false
	}

	// POSIX offsets count hours west of Greenwich.
	sign := -1
	switch tz[0] {
	case '-':
		sign = 1
		tz = tz[1:]
	case '+':
		tz = tz[1:]
	}
	if end := strings.IndexFunc(tz, func(r rune) bool { return (r < '0' || r > '9') && r != ':' }); end >= 0 {
		tz = tz[:end]
	}
	if tz == "" {
		return nil, false
	}
	secs, unit := 0, 3600
	for _, part := range strings.SplitN(tz, ":", 3) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		secs += n * unit
		unit /= 60
	}
	return time.FixedZone(name, sign*secs), true
}

func cSetlocale(name string) (string, bool) {
	if name == "" {
		names := environLocales()
		for _, n := range names {
			if !pureLocaleKnown(n) {
				return "", false
			}
		}
		name = "C"
		if len(names) > 0 {
			name = names[0]
		}
	}
	if !pureLocaleKnown(name) {
		return "", false
	}
	pureLocale = name
	return name, true
}

func pureLocaleKnown(name string) bool {
	switch name {
	case "C", "POSIX", "C.UTF-8", "C.utf8":
		return true
	}
	return false
}

var pureLocale = "C"

func cCodeset() string {
	if strings.HasPrefix(pureLocale, "C.") {
		return "UTF-8"
	}
	return "ANSI_X3.4-1968"
}

func cFormat(spec string, epoch Epoch, zone Zone, capacity int) ([]byte, error) {
	if epoch > maxBrokenDown {
		return nil, &TimeConversionError{Epoch: epoch, Zone: zone}
	}
	t := epoch.Time()
	if zone == Local {
		t = t.In(pureLocation)
	}
	out, err := lestrrat.Format(spec, t)
	if err != nil {
		return nil, &InvalidSpecifierError{Spec: spec, Err: err}
	}
	if len(out) > capacity {
		return nil, &FormatOverflowError{Spec: spec, Capacity: capacity}
	}
	return []byte(out), nil
}

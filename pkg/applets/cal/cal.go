// Package cal implements the cal command.
package cal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rcarmo/go-timefmt/pkg/core"
	"github.com/rcarmo/go-timefmt/pkg/core/timeutil"
	"github.com/rcarmo/go-timefmt/pkg/libctime"
)

const (
	monthWidth = 20
	yearWidth  = 3*monthWidth + 2*len(gutter)
	gutter     = "  "
	weekLines  = 6

	reverseOn  = "\x1b[7m"
	reverseOff = "\x1b[0m"
)

// Run executes the cal command.
//
//	cal [-y] [[MONTH] YEAR]
//
// Month and weekday names come from the installed locale. The current day
// is shown in reverse video when stdout is a terminal.
func Run(stdio *core.Stdio, args []string) int {
	var wholeYear bool
	operands, code := core.ParseBoolFlags(stdio, "cal", args, map[byte]*bool{'y': &wholeYear})
	if code != core.ExitSuccess {
		return code
	}
	if len(operands) > 2 {
		return core.UsageError(stdio, "cal", "extra operand '"+operands[2]+"'")
	}

	env, _, err := timeutil.OpenEnv(stdio)
	if err != nil {
		return core.Failure(stdio, "cal", err)
	}
	today, err := currentDate(env)
	if err != nil {
		return core.Failure(stdio, "cal", err)
	}

	year, month := today.year, today.month
	switch len(operands) {
	case 1:
		if year, err = parseRange(operands[0], 1, 9999); err != nil {
			return core.Failure(stdio, "cal", err)
		}
		wholeYear = true
	case 2:
		if month, err = parseRange(operands[0], 1, 12); err != nil {
			return core.Failure(stdio, "cal", err)
		}
		if year, err = parseRange(operands[1], 1, 9999); err != nil {
			return core.Failure(stdio, "cal", err)
		}
	}

	names, err := localeNames(env)
	if err != nil {
		return core.Failure(stdio, "cal", err)
	}
	var mark *day
	if stdio.OutIsTerminal() {
		mark = &today
	}
	if wholeYear {
		printYear(stdio, names, year, mark)
	} else {
		printMonth(stdio, names, year, month, mark)
	}
	return core.ExitSuccess
}

type day struct {
	year, month, day int
}

func currentDate(env *libctime.Env) (day, error) {
	s, err := env.FormatLocal("%Y %m %d", env.Epoch())
	if err != nil {
		return day{}, err
	}
	var d day
	if _, err := fmt.Sscanf(s, "%d %d %d", &d.year, &d.month, &d.day); err != nil {
		return day{}, fmt.Errorf("cannot read current date from %q: %w", s, err)
	}
	return d, nil
}

func parseRange(s string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("number %s is not in %d..%d range", s, lo, hi)
	}
	return n, nil
}

type names struct {
	months   [12]string
	weekdays [7]string
}

// localeNames formats the month and weekday names of a reference year. Only
// the names are taken from it, so any calendar year can be shown.
func localeNames(env *libctime.Env) (*names, error) {
	n := &names{}
	for m := range n.months {
		s, err := env.FormatUTC("%B", noon(2000, m+1, 1))
		if err != nil {
			return nil, err
		}
		n.months[m] = s
	}
	// 2000-01-02 was a Sunday.
	for d := range n.weekdays {
		s, err := env.FormatUTC("%a", noon(2000, 1, 2+d))
		if err != nil {
			return nil, err
		}
		n.weekdays[d] = truncate(s, 2)
	}
	return n, nil
}

func noon(year, month, d int) libctime.Epoch {
	return libctime.Epoch(time.Date(year, time.Month(month), d, 12, 0, 0, 0, time.UTC).Unix())
}

func printMonth(stdio *core.Stdio, n *names, year, month int, mark *day) {
	title := n.months[month-1] + " " + strconv.Itoa(year)
	for _, line := range monthBlock(n, title, year, month, mark) {
		stdio.Println(strings.TrimRight(line, " "))
	}
}

func printYear(stdio *core.Stdio, n *names, year int, mark *day) {
	stdio.Println(strings.TrimRight(center(strconv.Itoa(year), yearWidth), " "))
	stdio.Println()
	for quarter := 0; quarter < 4; quarter++ {
		var blocks [3][]string
		for i := range blocks {
			month := quarter*3 + i + 1
			blocks[i] = monthBlock(n, n.months[month-1], year, month, mark)
		}
		for row := range blocks[0] {
			line := blocks[0][row] + gutter + blocks[1][row] + gutter + blocks[2][row]
			stdio.Println(strings.TrimRight(line, " "))
		}
	}
}

// monthBlock renders a title line, the weekday line and six week lines, each
// exactly monthWidth columns wide.
func monthBlock(n *names, title string, year, month int, mark *day) []string {
	lines := make([]string, 0, 2+weekLines)
	lines = append(lines, center(title, monthWidth))

	heads := make([]string, len(n.weekdays))
	for i, wd := range n.weekdays {
		heads[i] = pad(wd, 2)
	}
	lines = append(lines, strings.Join(heads, " "))

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	cells := make([]string, 7*weekLines)
	for i := range cells {
		cells[i] = "  "
	}
	offset := int(first.Weekday())
	for d := 1; d <= days; d++ {
		cell := fmt.Sprintf("%2d", d)
		if mark != nil && mark.year == year && mark.month == month && mark.day == d {
			cell = reverseOn + cell + reverseOff
		}
		cells[offset+d-1] = cell
	}
	for w := 0; w < weekLines; w++ {
		lines = append(lines, strings.Join(cells[w*7:w*7+7], " "))
	}
	return lines
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

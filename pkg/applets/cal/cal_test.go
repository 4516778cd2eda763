package cal_test

import (
	"testing"

	"github.com/rcarmo/go-timefmt/pkg/applets/cal"
	"github.com/rcarmo/go-timefmt/pkg/core"
	"github.com/rcarmo/go-timefmt/pkg/testutil"
)

func TestCal(t *testing.T) {
	tests := []testutil.AppletTestCase{
		{
			Name:     "month",
			Args:     []string{"8", "2019"},
			WantCode: core.ExitSuccess,
			WantOut: "    August 2019\n" +
				"Su Mo Tu We Th Fr Sa\n" +
				"             1  2  3\n" +
				" 4  5  6  7  8  9 10\n" +
				"11 12 13 14 15 16 17\n" +
				"18 19 20 21 22 23 24\n" +
				"25 26 27 28 29 30 31\n" +
				"\n",
		},
		{
			Name:     "leap_february",
			Args:     []string{"2", "2000"},
			WantCode: core.ExitSuccess,
			WantOut: "   February 2000\n" +
				"Su Mo Tu We Th Fr Sa\n" +
				"       1  2  3  4  5\n" +
				" 6  7  8  9 10 11 12\n" +
				"13 14 15 16 17 18 19\n" +
				"20 21 22 23 24 25 26\n" +
				"27 28 29\n" +
				"\n",
		},
		{
			Name:       "year",
			Args:       []string{"2019"},
			WantCode:   core.ExitSuccess,
			WantOutSub: "      January               February               March\nSu Mo Tu We Th Fr Sa  Su Mo Tu We Th Fr Sa  Su Mo Tu We Th Fr Sa\n",
		},
		{
			Name:       "year_flag",
			Args:       []string{"-y", "1970"},
			WantCode:   core.ExitSuccess,
			WantOutSub: "      October               November              December\n",
		},
		{
			Name:       "current_month",
			Args:       []string{},
			TZ:         "UTC-3",
			WantCode:   core.ExitSuccess,
			WantOutSub: "Su Mo Tu We Th Fr Sa\n",
		},
		{
			Name:     "bad_month",
			Args:     []string{"13", "2019"},
			WantCode: core.ExitFailure,
			WantErr:  "cal: number 13 is not in 1..12 range",
		},
		{
			Name:     "bad_year",
			Args:     []string{"0"},
			WantCode: core.ExitFailure,
			WantErr:  "cal: number 0 is not in 1..9999 range",
		},
		{
			Name:     "extra_operand",
			Args:     []string{"1", "2", "3"},
			WantCode: core.ExitUsage,
			WantErr:  "extra operand '3'",
		},
		{
			Name:     "bad_option",
			Args:     []string{"-x"},
			WantCode: core.ExitUsage,
			WantErr:  "invalid option",
		},
		{
			Name:     "bad_locale",
			Args:     []string{"1", "2000"},
			Locale:   "xx_NOWHERE.UTF-8",
			WantCode: core.ExitFailure,
			WantErr:  "xx_NOWHERE.UTF-8",
		},
	}
	testutil.RunAppletTests(t, cal.Run, tests)
}

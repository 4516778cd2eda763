package date_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rcarmo/go-timefmt/pkg/applets/date"
	"github.com/rcarmo/go-timefmt/pkg/core"
	"github.com/rcarmo/go-timefmt/pkg/core/fs"
	"github.com/rcarmo/go-timefmt/pkg/libctime"
	"github.com/rcarmo/go-timefmt/pkg/testutil"
)

func TestDate(t *testing.T) {
	tests := []testutil.AppletTestCase{
		{
			Name:     "epoch_zero",
			Args:     []string{"-d", "@0", "+%Y-%m-%d %H:%M:%S"},
			WantCode: core.ExitSuccess,
			WantOut:  "1970-01-01 00:00:00\n",
		},
		{
			Name:     "attached_date",
			Args:     []string{"-d@1565151596", "-u", "+%F %T"},
			WantCode: core.ExitSuccess,
			WantOut:  "2019-08-07 04:19:56\n",
		},
		{
			Name:     "long_date",
			Args:     []string{"--date=@1565151596", "--utc", "+%A %B %d"},
			WantCode: core.ExitSuccess,
			WantOut:  "Wednesday August 07\n",
		},
		{
			Name:     "local_offset",
			Args:     []string{"-d", "@0", "+%Y-%m-%d %H"},
			TZ:       "UTC-3",
			WantCode: core.ExitSuccess,
			WantOut:  "1970-01-01 03\n",
		},
		{
			Name:     "utc_ignores_offset",
			Args:     []string{"-u", "-d", "@0", "+%Y-%m-%d %H"},
			TZ:       "UTC-3",
			WantCode: core.ExitSuccess,
			WantOut:  "1970-01-01 00\n",
		},
		{
			Name:     "rollover_west",
			Args:     []string{"-d", "@0", "+%F %H"},
			TZ:       "UTC+5",
			WantCode: core.ExitSuccess,
			WantOut:  "1969-12-31 19\n",
		},
		{
			Name:     "rfc2822",
			Args:     []string{"-uR", "-d", "@0"},
			WantCode: core.ExitSuccess,
			WantOut:  "Thu, 01 Jan 1970 00:00:00 +0000\n",
		},
		{
			Name:     "iso_date",
			Args:     []string{"-I", "-d", "@1565151596"},
			WantCode: core.ExitSuccess,
			WantOut:  "2019-08-07\n",
		},
		{
			Name:     "iso_seconds",
			Args:     []string{"-Iseconds", "-u", "-d", "@1565151596"},
			WantCode: core.ExitSuccess,
			WantOut:  "2019-08-07T04:19:56+0000\n",
		},
		{
			Name:     "iso_long",
			Args:     []string{"--iso-8601=minutes", "-u", "-d", "@0"},
			WantCode: core.ExitSuccess,
			WantOut:  "1970-01-01T00:00+0000\n",
		},
		{
			Name:     "literal_format",
			Args:     []string{"+hello"},
			WantCode: core.ExitSuccess,
			WantOut:  "hello\n",
		},
		{
			Name:     "empty_format",
			Args:     []string{"+", "-d", "@42"},
			WantCode: core.ExitSuccess,
			WantOut:  "\n",
		},
		{
			Name:       "default_format",
			Args:       []string{"-d", "@0"},
			WantCode:   core.ExitSuccess,
			WantOutSub: "Thu Jan  1 00:00:00 ",
		},
		{
			Name:     "invalid_date",
			Args:     []string{"-d", "yesterday"},
			WantCode: core.ExitFailure,
			WantErr:  "invalid date 'yesterday'",
		},
		{
			Name:     "invalid_epoch",
			Args:     []string{"-d", "@x"},
			WantCode: core.ExitFailure,
			WantErr:  "invalid date '@x'",
		},
		{
			Name:     "out_of_range",
			Args:     []string{"-d", "@18446744073709551615", "+%Y"},
			WantCode: core.ExitFailure,
			WantErr:  "cannot convert epoch",
		},
		{
			Name:     "invalid_option",
			Args:     []string{"-Z"},
			WantCode: core.ExitUsage,
			WantErr:  "invalid option",
		},
		{
			Name:     "missing_argument",
			Args:     []string{"-d"},
			WantCode: core.ExitUsage,
			WantErr:  "option requires an argument",
		},
		{
			Name:     "invalid_iso",
			Args:     []string{"-Iweeks"},
			WantCode: core.ExitUsage,
			WantErr:  "invalid argument",
		},
		{
			Name:     "extra_format",
			Args:     []string{"+%Y", "+%m"},
			WantCode: core.ExitUsage,
			WantErr:  "extra operand",
		},
		{
			Name:     "set_time",
			Args:     []string{"010100001970"},
			WantCode: core.ExitFailure,
			WantErr:  "not supported",
		},
		{
			Name:     "missing_reference",
			Args:     []string{"-r", "missing.txt"},
			WantCode: core.ExitFailure,
			WantErr:  "date: missing.txt: no such file or directory",
		},
		{
			Name:     "locale_failure",
			Args:     []string{"+%Y"},
			Locale:   "xx_NOWHERE.UTF-8",
			WantCode: core.ExitFailure,
			WantErr:  "cannot install locale",
		},
	}
	testutil.RunAppletTests(t, date.Run, tests)
}

func TestDateReference(t *testing.T) {
	mtime := time.Unix(1565151596, 0)
	testutil.RunAppletTests(t, date.Run, []testutil.AppletTestCase{
		{
			Name:     "reference",
			Args:     []string{"-u", "-r", "stamp", "+%F %T"},
			Files:    map[string]string{"stamp": ""},
			WantCode: core.ExitSuccess,
			WantOut:  "2019-08-07 04:19:56\n",
			Setup: func(t *testing.T, dir string) {
				if err := fs.Chtimes(filepath.Join(dir, "stamp"), mtime, mtime); err != nil {
					t.Fatal(err)
				}
			},
		},
	})
}

func TestDateConfiguredFormat(t *testing.T) {
	testutil.RunAppletTests(t, date.Run, []testutil.AppletTestCase{
		{
			Name:     "configured",
			Args:     []string{"-d", "@0"},
			WantCode: core.ExitSuccess,
			WantOut:  "1970/01/01\n",
			Setup: func(t *testing.T, dir string) {
				t.Setenv("TIMEFMT_FORMAT", "%Y/%m/%d")
			},
		},
		{
			Name:     "small_buffer",
			Args:     []string{"-d", "@0", "+%Y-%m-%d"},
			WantCode: core.ExitFailure,
			WantErr:  "does not fit",
			Setup: func(t *testing.T, dir string) {
				t.Setenv("TIMEFMT_BUFFER_SIZE", "4")
			},
		},
	})
}

func TestDateNow(t *testing.T) {
	if !libctime.Native {
		t.Skip("epoch seconds directive needs the C library formatter")
	}
	testutil.SetTimeEnv(t, "UTC", "C")
	out, _, code := testutil.CaptureAndRun(t, date.Run, []string{"+%s"}, "")
	testutil.AssertExitCode(t, code, core.ExitSuccess)
	want := time.Now().Unix()
	var got int64
	for _, c := range out.String() {
		if c >= '0' && c <= '9' {
			got = got*10 + int64(c-'0')
		}
	}
	if got < want-5 || got > want+5 {
		t.Errorf("date +%%s = %d, want about %d", got, want)
	}
}

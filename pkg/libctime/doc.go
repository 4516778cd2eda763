// Package libctime formats times with the C library's strftime(3), honouring
// the process locale and timezone installed through setlocale(3) and tzset(3).
//
// The C runtime keeps locale and timezone state per process, and the broken
// down time conversions share it. Every call into the C runtime made by this
// package is serialized by a single package-level mutex, so an Env may be
// used from any goroutine. Settings applied through one Env are visible to
// all others; the last successful apply wins.
//
// An Env is only available from Init, which applies the timezone and the
// locale before returning:
//
//	os.Setenv("LC_ALL", "fr_BE.UTF-8")
//	os.Setenv("TZ", "Europe/Brussels")
//
//	env, err := libctime.Init()
//	if err != nil {
//		return err
//	}
//	s, err := env.FormatLocal("%c", env.Epoch())
//	// mer 07 aoû 2019 06:19:56 CEST
//
// Builds without cgo fall back to a pure Go formatter which only knows the
// C and POSIX locales; see Native.
package libctime

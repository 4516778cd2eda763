//go:build unix

package libctime

import (
	"time"

	"golang.org/x/sys/unix"
)

// systemClock reads the realtime clock the way time(2) does.
type systemClock struct{}

func (systemClock) Now() time.Time {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err != nil {
		return time.Now()
	}
	sec, nsec := tv.Unix()
	return time.Unix(sec, nsec)
}

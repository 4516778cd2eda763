//go:build !unix

package libctime

import "time"

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

package libctime

import "time"

// Clock is the time source of Env.Epoch. clockwork.Clock satisfies it.
type Clock interface {
	Now() time.Time
}

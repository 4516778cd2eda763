package libctime

import (
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
)

type options struct {
	timezone   string
	tzSet      bool
	locale     string
	capacity   int
	logger     log.Logger
	clock      Clock
	registerer prometheus.Registerer
}

// Option configures Init.
type Option func(*options)

// WithTimezone exports tz as TZ before every tzset. An empty tz selects UTC.
func WithTimezone(tz string) Option {
	return func(o *options) {
		o.timezone = tz
		o.tzSet = true
	}
}

// WithLocale passes name to setlocale instead of reading the environment.
func WithLocale(name string) Option {
	return func(o *options) { o.locale = name }
}

// WithBufferSize sets the largest formatted output, in bytes.
func WithBufferSize(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithLogger sets the go-kit logger for apply results and format failures.
// A nil logger is ignored.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock replaces the system clock read by Env.Epoch.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithRegisterer registers the format and apply counters with r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) { o.registerer = r }
}

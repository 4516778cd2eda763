package libctime

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultBufferSize is the output capacity used when WithBufferSize is not given.
const DefaultBufferSize = 256

// Epoch is a count of seconds since 1970-01-01T00:00:00Z.
type Epoch uint64

// Time returns e as a UTC time.Time.
func (e Epoch) Time() time.Time {
	return time.Unix(int64(e), 0).UTC()
}

// Zone selects how an epoch is broken down before formatting.
type Zone uint8

const (
	UTC   Zone = iota // gmtime_r, no timezone applied
	Local             // localtime_r, timezone from the last tzset
)

func (z Zone) String() string {
	if z == Local {
		return "local"
	}
	return "utc"
}

// mu serializes every call into the C runtime. The fields of process mirror
// what the C runtime currently has installed.
var (
	mu      sync.Mutex
	process struct {
		timezone  string
		locale    string
		charset   charset
		localeErr *LocaleInstallError
	}
)

// Env is the handle to an initialized process environment. It is only
// returned by Init and is safe for concurrent use. A zero Env formats
// nothing: its methods report ErrNotInitialized.
type Env struct {
	timezone string
	tzSet    bool
	locale   string
	capacity int
	logger   log.Logger
	clock    Clock
	metrics  *metrics
}

// Init applies the timezone and then the locale to the process and returns
// the resulting Env. Without options both are read from the environment (TZ,
// then LC_ALL, LC_TIME and LANG). A locale the system does not provide is
// reported as a *LocaleInstallError and no Env is returned.
func Init(opts ...Option) (*Env, error) {
	cfg := options{
		capacity: DefaultBufferSize,
		logger:   log.NewNopLogger(),
		clock:    systemClock{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity <= 0 {
		return nil, fmt.Errorf("libctime: buffer size must be positive, got %d", cfg.capacity)
	}
	env := &Env{
		timezone: cfg.timezone,
		tzSet:    cfg.tzSet,
		locale:   cfg.locale,
		capacity: cfg.capacity,
		logger:   log.With(cfg.logger, "component", "libctime"),
		clock:    cfg.clock,
		metrics:  newMetrics(cfg.registerer),
	}
	env.ApplyTimezone()
	if err := env.ApplyLocale(); err != nil {
		return nil, err
	}
	return env, nil
}

// ApplyTimezone exports the configured TZ, if any, and has the C runtime
// re-read its timezone rules. An unknown zone silently behaves as UTC.
func (e *Env) ApplyTimezone() {
	if !e.initialized() {
		return
	}
	mu.Lock()
	defer mu.Unlock()

	if e.tzSet {
		if err := os.Setenv("TZ", e.timezone); err != nil {
			level.Warn(e.logger).Log("msg", "cannot export TZ", "tz", e.timezone, "err", err)
		}
	}
	cTzset()
	process.timezone = os.Getenv("TZ")
	e.metrics.applied("timezone", nil)
	level.Debug(e.logger).Log("msg", "timezone applied", "tz", process.timezone)
}

// ApplyLocale installs the configured locale for all categories. When the C
// runtime refuses it the process is reset to the C locale and every later
// formatting call fails with the same *LocaleInstallError until a locale is
// installed successfully.
func (e *Env) ApplyLocale() error {
	if !e.initialized() {
		return ErrNotInitialized
	}
	mu.Lock()
	defer mu.Unlock()

	installed, ok := cSetlocale(e.locale)
	if !ok {
		err := &LocaleInstallError{Name: e.failedLocale()}
		installed, _ = cSetlocale("C")
		e.install(installed)
		process.localeErr = err
		e.metrics.applied("locale", err)
		level.Warn(e.logger).Log("msg", "locale not installed", "locale", err.Name, "fallback", installed)
		return err
	}
	e.install(installed)
	process.localeErr = nil
	e.metrics.applied("locale", nil)
	level.Debug(e.logger).Log("msg", "locale applied", "locale", installed, "codeset", process.charset.name)
	return nil
}

// install records the locale now active in the C runtime. Callers hold mu.
func (e *Env) install(name string) {
	process.locale = name
	cs, known := resolveCharset(cCodeset())
	if !known {
		level.Debug(e.logger).Log("msg", "unknown codeset, validating output as UTF-8", "codeset", cs.name)
	}
	process.charset = cs
}

// localeVars lists the variables setlocale(LC_ALL, "") consults when
// LC_ALL is unset, one per category, then LANG.
var localeVars = []string{
	"LC_CTYPE", "LC_NUMERIC", "LC_TIME", "LC_COLLATE", "LC_MONETARY",
	"LC_MESSAGES", "LC_PAPER", "LC_NAME", "LC_ADDRESS", "LC_TELEPHONE",
	"LC_MEASUREMENT", "LC_IDENTIFICATION", "LANG",
}

// environLocales returns the locale names setlocale(LC_ALL, "") would try
// to load: LC_ALL alone when set, otherwise every set category variable and
// LANG, in that order.
func environLocales() []string {
	if v := os.Getenv("LC_ALL"); v != "" {
		return []string{v}
	}
	var names []string
	for _, key := range localeVars {
		if v := os.Getenv(key); v != "" {
			names = append(names, v)
		}
	}
	return names
}

// failedLocale names the locale that made setlocale fail. For a locale
// taken from the environment each candidate is tried on its own, since any
// category can be the one the system lacks. Callers hold mu.
func (e *Env) failedLocale() string {
	if e.locale != "" {
		return e.locale
	}
	names := environLocales()
	for _, name := range names {
		if _, ok := cSetlocale(name); !ok {
			return name
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return ""
}

// Locale returns the name of the locale installed in the C runtime.
func (e *Env) Locale() string {
	mu.Lock()
	defer mu.Unlock()
	return process.locale
}

// Codeset returns the character encoding of the installed locale.
func (e *Env) Codeset() string {
	mu.Lock()
	defer mu.Unlock()
	return process.charset.name
}

// Timezone returns the TZ value seen by the last tzset.
func (e *Env) Timezone() string {
	mu.Lock()
	defer mu.Unlock()
	return process.timezone
}

// Epoch reads the wall clock. It is not monotonic; a clock set before 1970
// reads as 0.
func (e *Env) Epoch() Epoch {
	clock := e.clock
	if clock == nil {
		clock = systemClock{}
	}
	sec := clock.Now().Unix()
	if sec < 0 {
		return 0
	}
	return Epoch(sec)
}

// FormatUTC formats epoch with spec after breaking it down as UTC.
func (e *Env) FormatUTC(spec string, epoch Epoch) (string, error) {
	return e.Format(spec, epoch, UTC)
}

// FormatLocal formats epoch with spec after breaking it down in the
// timezone installed by ApplyTimezone.
func (e *Env) FormatLocal(spec string, epoch Epoch) (string, error) {
	return e.Format(spec, epoch, Local)
}

// Format formats epoch with the strftime(3) directives in spec. An empty spec
// always yields an empty string.
func (e *Env) Format(spec string, epoch Epoch, zone Zone) (string, error) {
	if !e.initialized() {
		return "", ErrNotInitialized
	}
	s, err := e.format(spec, epoch, zone)
	e.metrics.formatted(zone, err)
	if err != nil {
		level.Debug(e.logger).Log("msg", "format failed", "spec", spec, "epoch", uint64(epoch), "zone", zone, "err", err)
	}
	return s, err
}

func (e *Env) initialized() bool {
	return e != nil && e.metrics != nil
}

func (e *Env) format(spec string, epoch Epoch, zone Zone) (string, error) {
	if spec == "" {
		return "", nil
	}
	if strings.IndexByte(spec, 0) >= 0 {
		return "", &InvalidSpecifierError{Spec: spec}
	}

	mu.Lock()
	if err := process.localeErr; err != nil {
		mu.Unlock()
		return "", err
	}
	cs := process.charset
	raw, err := cFormat(spec, epoch, zone, e.capacity)
	mu.Unlock()
	if err != nil {
		return "", err
	}
	return cs.decode(raw)
}

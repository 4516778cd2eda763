package libctime

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors matched with errors.Is against the typed errors below.
var (
	ErrLocaleInstall    = errors.New("locale not installed")
	ErrTimeConversion   = errors.New("time conversion failed")
	ErrFormatOverflow   = errors.New("formatted time does not fit the buffer")
	ErrEncoding         = errors.New("formatted time is not valid text")
	ErrInvalidSpecifier = errors.New("invalid format specifier")

	// ErrNotInitialized is returned by an Env that did not come from Init.
	ErrNotInitialized = errors.New("libctime: Env not created by Init")
)

// LocaleInstallError reports that setlocale(3) refused a locale. Name is
// empty when the locale was taken from the environment and none of LC_ALL,
// LC_TIME or LANG were set.
type LocaleInstallError struct {
	Name string
}

func (e *LocaleInstallError) Error() string {
	if e.Name == "" {
		return "cannot install locale from environment"
	}
	return fmt.Sprintf("cannot install locale %q", e.Name)
}

func (e *LocaleInstallError) Unwrap() error { return ErrLocaleInstall }

// TimeConversionError reports an epoch outside the range of the broken-down
// time representation.
type TimeConversionError struct {
	Epoch Epoch
	Zone  Zone
}

func (e *TimeConversionError) Error() string {
	return fmt.Sprintf("cannot convert epoch %s to %s time", strconv.FormatUint(uint64(e.Epoch), 10), e.Zone)
}

func (e *TimeConversionError) Unwrap() error { return ErrTimeConversion }

// FormatOverflowError reports output longer than the configured buffer.
type FormatOverflowError struct {
	Spec     string
	Capacity int
}

func (e *FormatOverflowError) Error() string {
	return fmt.Sprintf("format %q does not fit in %d bytes", e.Spec, e.Capacity)
}

func (e *FormatOverflowError) Unwrap() error { return ErrFormatOverflow }

// EncodingError reports formatted bytes that are not valid in the codeset of
// the installed locale. Offset is the index of the first offending byte, or
// -1 when the decoder could not tell.
type EncodingError struct {
	Codeset string
	Offset  int
}

func (e *EncodingError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("formatted time is not valid %s", e.Codeset)
	}
	return fmt.Sprintf("formatted time is not valid %s at byte %d", e.Codeset, e.Offset)
}

func (e *EncodingError) Unwrap() error { return ErrEncoding }

// InvalidSpecifierError reports a format the formatter cannot accept, such
// as one containing a NUL byte.
type InvalidSpecifierError struct {
	Spec string
	Err  error
}

func (e *InvalidSpecifierError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid format %q: %v", e.Spec, e.Err)
	}
	return fmt.Sprintf("invalid format %q", e.Spec)
}

func (e *InvalidSpecifierError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidSpecifier, e.Err}
	}
	return []error{ErrInvalidSpecifier}
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrLocaleInstall):
		return "locale"
	case errors.Is(err, ErrTimeConversion):
		return "conversion"
	case errors.Is(err, ErrFormatOverflow):
		return "overflow"
	case errors.Is(err, ErrEncoding):
		return "encoding"
	case errors.Is(err, ErrInvalidSpecifier):
		return "invalid"
	default:
		return "error"
	}
}

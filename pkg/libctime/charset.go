package libctime

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

type charsetKind uint8

const (
	charsetUTF8 charsetKind = iota
	charsetASCII
	charsetIANA
)

// charset decodes strftime output produced under a locale codeset, as
// reported by nl_langinfo(CODESET).
type charset struct {
	name string
	kind charsetKind
	enc  encoding.Encoding
}

// resolveCharset maps a codeset name to a decoder. Codesets x/text does not
// know are validated as UTF-8 and reported with known == false.
func resolveCharset(name string) (cs charset, known bool) {
	cs.name = name
	switch normalizeCodeset(name) {
	case "utf8":
		return cs, true
	case "ansix3.41968", "ascii", "usascii", "646", "iso646us":
		cs.kind = charsetASCII
		return cs, true
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return cs, false
	}
	cs.kind = charsetIANA
	cs.enc = enc
	return cs, true
}

func normalizeCodeset(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '-' || r == '_':
			return -1
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		}
		return r
	}, name)
}

func (cs charset) decode(raw []byte) (string, error) {
	switch cs.kind {
	case charsetASCII:
		for i, b := range raw {
			if b >= utf8.RuneSelf {
				return "", &EncodingError{Codeset: cs.name, Offset: i}
			}
		}
		return string(raw), nil
	case charsetIANA:
		out, err := cs.enc.NewDecoder().Bytes(raw)
		if err != nil || strings.ContainsRune(string(out), utf8.RuneError) {
			return "", &EncodingError{Codeset: cs.name, Offset: -1}
		}
		return string(out), nil
	default:
		for i := 0; i < len(raw); {
			r, size := utf8.DecodeRune(raw[i:])
			if r == utf8.RuneError && size <= 1 {
				return "", &EncodingError{Codeset: cs.displayName(), Offset: i}
			}
			i += size
		}
		return string(raw), nil
	}
}

func (cs charset) displayName() string {
	if cs.name == "" {
		return "UTF-8"
	}
	return cs.name
}

package libctime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCharset(t *testing.T) {
	tests := []struct {
		name  string
		kind  charsetKind
		known bool
	}{
		{"UTF-8", charsetUTF8, true},
		{"utf8", charsetUTF8, true},
		{"ANSI_X3.4-1968", charsetASCII, true},
		{"US-ASCII", charsetASCII, true},
		{"ISO-8859-1", charsetIANA, true},
		{"KOI8-R", charsetIANA, true},
		{"NOT-A-CODESET", charsetUTF8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, known := resolveCharset(tt.name)
			require.Equal(t, tt.known, known)
			require.Equal(t, tt.kind, cs.kind)
			require.Equal(t, tt.name, cs.name)
		})
	}
}

func TestDecode(t *testing.T) {
	utf8cs, _ := resolveCharset("UTF-8")
	got, err := utf8cs.decode([]byte("mer 07 ao\xc3\xbbt 2019"))
	require.NoError(t, err)
	require.Equal(t, "mer 07 août 2019", got)

	latin1, _ := resolveCharset("ISO-8859-1")
	got, err = latin1.decode([]byte("mer 07 ao\xfbt 2019"))
	require.NoError(t, err)
	require.Equal(t, "mer 07 août 2019", got)

	ascii, _ := resolveCharset("ANSI_X3.4-1968")
	got, err = ascii.decode([]byte("Thu Jan  1"))
	require.NoError(t, err)
	require.Equal(t, "Thu Jan  1", got)
}

func TestDecodeRejectsInvalidBytes(t *testing.T) {
	tests := []struct {
		codeset string
		raw     string
		offset  int
	}{
		{"UTF-8", "ao\xfbt", 2},
		{"UTF-8", "\xff", 0},
		{"ANSI_X3.4-1968", "ao\xc3\xbbt", 2},
		{"NOT-A-CODESET", "ok\xc3", 2},
	}
	for _, tt := range tests {
		t.Run(tt.codeset, func(t *testing.T) {
			cs, _ := resolveCharset(tt.codeset)
			_, err := cs.decode([]byte(tt.raw))
			require.ErrorIs(t, err, ErrEncoding)

			var enc *EncodingError
			require.True(t, errors.As(err, &enc))
			require.Equal(t, tt.offset, enc.Offset)
		})
	}
}

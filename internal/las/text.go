package las

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/banshee-data/lasfield/internal/monitoring"
)

// Widths of the fixed-width text fields in a LAS header and VLR header.
const (
	SystemIdentifierLen   = 32
	GeneratingSoftwareLen = 32
	UserIDLen             = 16
	DescriptionLen        = 32
)

// DecodeString decodes a fixed-width text field. The text ends at the first
// zero byte, every byte after it must also be zero, and the text must be
// 7-bit ASCII. A field with no zero byte is all text.
func DecodeString(buf []byte) (string, error) {
	text := buf
	if p := bytes.IndexByte(buf, 0); p >= 0 {
		for _, c := range buf[p:] {
			if c != 0 {
				return "", &NotZeroFilledError{Bytes: bytes.Clone(buf)}
			}
		}
		text = buf[:p]
	}
	for _, c := range text {
		if c >= utf8.RuneSelf {
			return "", &NotASCIIError{Text: string(text)}
		}
	}
	return string(text), nil
}

// DecodeStringLossy decodes a field for display. It returns DecodeString's
// result when the field is well formed, and otherwise the bytes before the
// first zero with invalid UTF-8 replaced by U+FFFD. It never fails.
func DecodeStringLossy(buf []byte) string {
	s, err := DecodeString(buf)
	if err == nil {
		return s
	}
	monitoring.Logf("las: lossy decode of %d-byte field: %v", len(buf), err)

	text := buf
	if p := bytes.IndexByte(buf, 0); p >= 0 {
		text = buf[:p]
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(text)
	if err != nil {
		return strings.ToValidUTF8(string(text), string(utf8.RuneError))
	}
	return string(out)
}

// EncodeString copies s into the start of buf. Bytes of buf past len(s) are
// left as they were, so callers wanting a zero-padded field must pass a
// zeroed buffer (see NewField).
func EncodeString(s string, buf []byte) error {
	if len(s) > len(buf) {
		return &StringTooLongError{Text: s, Capacity: len(buf)}
	}
	copy(buf, s)
	return nil
}

// NewField returns a zeroed field of the given width holding s.
func NewField(s string, width int) ([]byte, error) {
	buf := make([]byte, width)
	if err := EncodeString(s, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

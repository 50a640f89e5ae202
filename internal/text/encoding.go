package text

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Replacement is written for runes the PDF core fonts cannot show.
const Replacement = '?'

// EncodeCP1252 converts s into Windows-1252 bytes, the encoding expected by
// the standard PDF core fonts (Helvetica, Times, Courier). Runes outside the
// code page, such as emoji, become Replacement. Character count is kept.
func EncodeCP1252(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r == utf8.RuneError {
			out = append(out, Replacement)
			continue
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = Replacement
		}
		out = append(out, b)
	}
	return string(out)
}

// Encodable reports whether every rune of s exists in Windows-1252.
func Encodable(s string) bool {
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}

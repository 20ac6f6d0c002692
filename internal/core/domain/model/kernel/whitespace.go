package kernel

import (
	"strings"
	"unicode"
)

// isWhitespace matches tab, line feed, vertical tab, form feed, carriage
// return, the byte order mark and every Unicode space or separator (category Z).
// Unlike unicode.IsSpace it does not match U+0085.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

// TrimSpace removes leading and trailing whitespace as matched by the
// `[\s\v\x{FEFF}\p{Z}]` class the value objects use in their patterns.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, isWhitespace)
}

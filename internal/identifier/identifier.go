package identifier

import (
	"go/token"
	"strings"
	"unicode"
)

// IsValid reports whether s is a valid Go identifier (and not a keyword)
func IsValid(s string) bool {
	return token.IsIdentifier(s)
}

// IsPart reports whether r may appear in an identifier
func IsPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Sanitize replaces every rune that cannot appear in an identifier with '_'
// A result that would start with a digit gets a leading underscore so the
// output is always usable as an identifier.
func Sanitize(s string) string {
	if s == "" {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + 1)

	for i, r := range s {
		if i == 0 && unicode.IsDigit(r) {
			builder.WriteByte('_')
		}
		if IsPart(r) {
			builder.WriteRune(r)
		} else {
			builder.WriteByte('_')
		}
	}

	return builder.String()
}

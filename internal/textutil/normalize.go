package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const byteOrderMark = "\ufeff"

// NormalizeLine trims surrounding whitespace and returns the NFC form of value.
func NormalizeLine(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if norm.NFC.IsNormalString(value) {
		return value
	}
	return norm.NFC.String(value)
}

// StripBOM removes a leading UTF-8 byte order mark.
func StripBOM(value string) string {
	return strings.TrimPrefix(value, byteOrderMark)
}

// FoldKey returns a case-folded, trimmed key suitable for map lookups.
// Casers are stateful, so each call builds its own.
func FoldKey(key string) string {
	return cases.Fold().String(strings.TrimSpace(key))
}

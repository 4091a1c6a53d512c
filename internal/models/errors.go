package models

import (
	"fmt"
	"unicode/utf8"
)

// ValidationError reports a field value that does not match any accepted value.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: value is empty", e.Field)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Value)
}

// checkText rejects values that cannot be stored and read back: empty
// strings, invalid UTF-8 and characters XML 1.0 does not allow.
func checkText(field, s string) error {
	if s == "" {
		return &ValidationError{Field: field}
	}
	if !utf8.ValidString(s) {
		return &ValidationError{Field: field, Value: fmt.Sprintf("%q", s)}
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return &ValidationError{Field: field, Value: fmt.Sprintf("%q", s)}
		}
	}
	return nil
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

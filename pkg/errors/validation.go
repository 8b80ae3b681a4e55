package errors

import (
	"strings"
	"unicode"
)

// MaxBrandNameLength is the longest brand name the engine accepts.
// Longer names still generate (algorithms only consume the leading runes),
// but unbounded input is rejected at the boundary.
const MaxBrandNameLength = 128

// ValidateBrandName checks a brand name for safety.
//
// An empty brand name is allowed: every algorithm falls back to a default
// letter rather than failing. Control characters and null bytes are rejected
// since they would end up verbatim in generated metadata.
func ValidateBrandName(name string) error {
	if len(name) > MaxBrandNameLength {
		return New(ErrCodeInvalidBrand, "brand name too long (max %d characters)", MaxBrandNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidBrand, "brand name contains control characters")
		}
	}
	return nil
}

// ValidateHexColor checks that s is a #rgb or #rrggbb hex color.
// The empty string is valid and means "use the default".
func ValidateHexColor(s string) error {
	if s == "" {
		return nil
	}
	if !strings.HasPrefix(s, "#") {
		return New(ErrCodeInvalidColor, "hex color must start with '#': %q", s)
	}
	digits := s[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return New(ErrCodeInvalidColor, "hex color must have 3 or 6 digits: %q", s)
	}
	for _, r := range digits {
		if !isHexDigit(r) {
			return New(ErrCodeInvalidColor, "invalid hex digit %q in color %q", r, s)
		}
	}
	return nil
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}

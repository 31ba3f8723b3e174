package errors

import (
	"unicode"
	"unicode/utf8"
)

// Input limits applied at the service boundary. The core accepts anything; these
// keep a single request from pinning a worker on pathological input.
const (
	MaxCollectionSize = 10000
	MaxElementLength  = 256
	MaxProductSize    = 1_000_000
)

// ValidateCollectionSize rejects collections larger than MaxCollectionSize.
// name identifies the collection ("A" or "B") in the error message.
func ValidateCollectionSize(name string, n int) error {
	if n > MaxCollectionSize {
		return New(ErrCodeInvalidInput, "collection %s too large: %d elements (max %d)", name, n, MaxCollectionSize)
	}
	return nil
}

// ValidateProductSize rejects Cartesian products with more than MaxProductSize
// pairs.
func ValidateProductSize(a, b int) error {
	if a > 0 && b > MaxProductSize/a {
		return New(ErrCodeInvalidInput, "cartesian product too large: %d×%d pairs (max %d)", a, b, MaxProductSize)
	}
	return nil
}

// ValidateElementText validates the textual form of a string element.
//
// The rules are intentionally conservative:
//   - Valid UTF-8
//   - No control characters other than tab
//   - Maximum length of MaxElementLength bytes
func ValidateElementText(s string) error {
	if len(s) > MaxElementLength {
		return New(ErrCodeInvalidInput, "element too long (max %d characters)", MaxElementLength)
	}
	if !utf8.ValidString(s) {
		return New(ErrCodeInvalidInput, "element is not valid UTF-8")
	}
	for _, r := range s {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "element contains invalid control characters")
		}
	}
	return nil
}

package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxTitleLength bounds window titles accepted from scripts and the HTTP API.
const maxTitleLength = 256

// ValidateTitle validates a window title supplied by a client.
//
// Titles are display strings, but scripts also use them as handles, so the
// rules keep them single-line and whitespace-free at the edges:
//   - No empty titles
//   - No control characters
//   - Maximum length of 256 characters
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return New(ErrCodeInvalidInput, "title cannot be empty")
	}

	if len(title) > maxTitleLength {
		return New(ErrCodeInvalidInput, "title too long (max %d characters)", maxTitleLength)
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains invalid control characters")
		}
	}

	if strings.TrimSpace(title) != title {
		return New(ErrCodeInvalidInput, "title cannot start or end with whitespace")
	}

	return nil
}

// ValidateWorkArea validates a work-area rectangle given as its components.
// Width and height must be positive; all components must be finite.
func ValidateWorkArea(x, y, w, h float64) error {
	for _, v := range []float64{x, y, w, h} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidInput, "work area must be finite")
		}
	}
	if w <= 0 || h <= 0 {
		return New(ErrCodeInvalidInput, "work area must have positive size, got %gx%g", w, h)
	}
	return nil
}

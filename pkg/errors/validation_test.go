package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "term", false},
		{"valid with spaces", "Firefox - Inbox", false},
		{"valid unicode", "édition", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 300), true},
		{"newline", "foo\nbar", true},
		{"null byte", "foo\x00bar", true},
		{"leading space", " foo", true},
		{"trailing space", "foo ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateTitle(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateWorkArea(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		wantErr    bool
	}{
		{"valid", 0, 0, 1920, 1080, false},
		{"negative origin", -1920, 0, 1920, 1080, false},
		{"zero width", 0, 0, 0, 100, true},
		{"negative height", 0, 0, 100, -1, true},
		{"nan", math.NaN(), 0, 100, 100, true},
		{"inf", 0, 0, math.Inf(1), 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWorkArea(tt.x, tt.y, tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWorkArea() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

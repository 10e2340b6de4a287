package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormatUserError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
		{
			name:     "parse error unwrapped from chain",
			err:      fmt.Errorf("loading: %w", &ParseError{File: "texts.json", Record: 0, Field: "name"}),
			expected: `parse error in texts.json: record 0 missing or invalid field "name"`,
		},
		{
			name:     "validation error",
			err:      &ValidationError{Field: "order", Message: "duplicate order 7"},
			expected: "validation error for field 'order': duplicate order 7",
		},
		{
			name:     "unknown action gains dropped-token note",
			err:      &UnknownActionError{Action: "BOGUS"},
			expected: `unknown action "BOGUS". The token was dropped from the rendered text.`,
		},
		{
			name:     "plain error passes through",
			err:      errors.New("something else"),
			expected: "something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUserError(tt.err); got != tt.expected {
				t.Errorf("FormatUserError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

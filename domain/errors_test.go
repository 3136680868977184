// ABOUTME: Tests for domain-level sentinel errors
// ABOUTME: Ensures error values work correctly with errors.Is
package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Defined(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrContentNotFound", ErrContentNotFound},
		{"ErrInvalidContentID", ErrInvalidContentID},
		{"ErrRedditClientNotConfigured", ErrRedditClientNotConfigured},
		{"ErrSubmissionNotFound", ErrSubmissionNotFound},
		{"ErrInvalidRequest", ErrInvalidRequest},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Errorf("%s should not be nil", s.name)
			}
			if s.err.Error() == "" {
				t.Errorf("%s should have non-empty message", s.name)
			}
		})
	}
}

func TestSentinelErrors_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "direct match ErrContentNotFound",
			err:    ErrContentNotFound,
			target: ErrContentNotFound,
			want:   true,
		},
		{
			name:   "wrapped ErrContentNotFound",
			err:    fmt.Errorf("load content item: %w", ErrContentNotFound),
			target: ErrContentNotFound,
			want:   true,
		},
		{
			name:   "wrapped reddit not configured",
			err:    fmt.Errorf("reddit fetch: %w", ErrRedditClientNotConfigured),
			target: ErrRedditClientNotConfigured,
			want:   true,
		},
		{
			name:   "different errors do not match",
			err:    ErrContentNotFound,
			target: ErrSubmissionNotFound,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.want)
			}
		})
	}
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
		ok   bool
	}{
		{"2024-03-01T10:00:00Z", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), true},
		{"2024-03-01T10:00:00.250Z", time.Date(2024, 3, 1, 10, 0, 0, 250000000, time.UTC), true},
		{"2024-03-01 10:00:00", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), true},
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"1709287200", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), true},
		{"1709287200000", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"yesterday", time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseTimestamp(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		if tt.ok {
			assert.True(t, tt.want.Equal(got), "%s: got %s", tt.raw, got)
		}
	}
}

func TestFormatShortDate(t *testing.T) {
	assert.Equal(t, "3/1/2024", FormatShortDate(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
}

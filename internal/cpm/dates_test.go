package cpm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationDays(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		finish string
		want   float64
	}{
		{"date only", "2025-01-01", "2025-01-06", 5},
		{"rfc3339", "2025-01-01T09:00:00Z", "2025-01-08T09:00:00Z", 7},
		{"datetime no zone", "2025-01-01T09:00:00", "2025-01-03T09:00:00", 2},
		{"space separated", "2025-01-01 09:00:00", "2025-01-02 09:00:00", 1},
		{"same day floors to one", "2025-01-01", "2025-01-01", 1},
		{"inverted dates floor to one", "2025-01-10", "2025-01-01", 1},
		{"bad start", "garbage", "2025-01-10", 1},
		{"bad finish", "2025-01-01", "garbage", 1},
		{"both bad", "", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, durationDays(tt.start, tt.finish))
		})
	}
}

func TestParseDate(t *testing.T) {
	_, ok := ParseDate("2025-03-15")
	assert.True(t, ok)

	_, ok = ParseDate("2025-03-15T10:30:00+02:00")
	assert.True(t, ok)

	_, ok = ParseDate("15/03/2025")
	assert.False(t, ok)
}

package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"hours and minutes", "8h 30m", 510},
		{"hours only", "8h", 480},
		{"zero", "0h 0m", 0},
		{"single digit", "1h 5m", 65},
		{"leading whitespace", "  7h 15m", 435},
		{"empty string", "", 0},
		{"garbage", "eight hours", 0},
		{"minutes only", "30m", 0},
		{"negative-looking", "-2h", 0},
		{"missing space", "8h30m", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMinutes(tt.input))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "8h 30m", Format(510))
	assert.Equal(t, "8h 0m", Format(480))
	assert.Equal(t, "0h 0m", Format(0))
	assert.Equal(t, "0h 0m", Format(-15))
}

package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:00", 540},
		{"9:5", 545},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "09", "24:00", "12:60", "-1:00", "ab:cd", "09:00:00extra:"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestFormatClockZeroPads(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestParseFormatRoundTrip(t *testing.T) {
	// "9:5" normalizes to "09:05" through the minute representation.
	m, err := ParseClock("9:5")
	assert.NoError(t, err)
	assert.Equal(t, "09:05", FormatClock(m))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"00:00:00", 0, true},
		{"08:30:00", 30600, true},
		{"19:30", 70200, true},
		{"23:59:59", 86399, true},
		{"24:00:00", 0, false},
		{"12:60:00", 0, false},
		{"9am", 0, false},
		{"", 0, false},
		{"12", 0, false},
	}

	for _, tc := range cases {
		got, err := ClockSeconds(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got, tc.in)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"8:5:3", "08:05:03", true},
		{"9:30", "09:30:00", true},
		{"19:30:00", "19:30:00", true},
		{" 7:00 ", "07:00:00", true},
		{"25:00:00", "", false},
		{"abc", "", false},
	}

	for _, tc := range cases {
		got, err := NormalizeClock(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got, tc.in)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("2024:05:01")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got)

	got, err = NormalizeDate("2024:5:1")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got)

	_, err = NormalizeDate("2024-05-01")
	assert.Error(t, err)
	_, err = NormalizeDate("2024:13:01")
	assert.Error(t, err)
}

func TestRoundToTwoDecimals(t *testing.T) {
	assert.Equal(t, 1.23, RoundToTwoDecimals(1.2345))
	assert.Equal(t, 1.24, RoundToTwoDecimals(1.235))
	assert.Equal(t, 0.0, RoundToTwoDecimals(0))
	assert.Equal(t, -1.24, RoundToTwoDecimals(-1.235))
	assert.Equal(t, 13.33, RoundToTwoDecimals(4.0/30.0*100))
}

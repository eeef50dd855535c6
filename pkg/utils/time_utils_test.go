package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTripDate(t *testing.T) {
	parsed, err := ParseTripDate("2026-03-15")

	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, "2026-03-15", FormatTripDate(parsed))
}

func TestParseTripDate_Invalid(t *testing.T) {
	for _, raw := range []string{"", "15-03-2026", "2026/03/15", "not a date"} {
		_, err := ParseTripDate(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestTripDurationDays_Inclusive(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2026-03-15", "2026-03-15", 1},
		{"weekend", "2026-03-14", "2026-03-15", 2},
		{"full week", "2026-03-09", "2026-03-15", 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, err := ParseTripDate(tc.start)
			require.NoError(t, err)
			end, err := ParseTripDate(tc.end)
			require.NoError(t, err)

			assert.Equal(t, tc.want, TripDurationDays(start, end))
		})
	}
}

package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 29, d.Day())
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("02/29/2024")
	assert.Error(t, err)
}

func TestBeginningOfMonth(t *testing.T) {
	d, _ := ParseDate("2024-03-15")
	assert.Equal(t, "2024-03-01", FormatDate(BeginningOfMonth(d)))
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2024-03-15", "2024-03-31"},
		{"2024-04-01", "2024-04-30"},
		{"2024-02-10", "2024-02-29"},
		{"2023-02-10", "2023-02-28"},
		{"2024-12-31", "2024-12-31"},
	}

	for _, tt := range tests {
		d, err := ParseDate(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, FormatDate(EndOfMonth(d)), "end of month for %s", tt.date)
	}
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseDate("2024-01-01")
	b, _ := ParseDate("2024-01-31")

	assert.Equal(t, 30, DaysBetween(a, b))
	assert.Equal(t, -30, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestWithinInclusive(t *testing.T) {
	start, _ := ParseDate("2024-01-01")
	end, _ := ParseDate("2024-01-31")

	tests := []struct {
		date     string
		expected bool
	}{
		{"2024-01-01", true},
		{"2024-01-15", true},
		{"2024-01-31", true},
		{"2023-12-31", false},
		{"2024-02-01", false},
	}

	for _, tt := range tests {
		d, _ := ParseDate(tt.date)
		assert.Equal(t, tt.expected, WithinInclusive(d, start, end), "date %s", tt.date)
	}
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(2023))
	assert.False(t, IsLeapYear(1900))
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2023))
}

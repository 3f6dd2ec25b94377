package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_AnchorsToLocalMidnight(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	d, err := ParseDate("2024-03-10", loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), d)
	assert.Equal(t, 10, d.Day(), "west-of-UTC zone must not shift to the previous day")
	assert.Equal(t, "2024-03-10", FormatDate(d))
}

func TestParseDate_RejectsDateTime(t *testing.T) {
	_, err := ParseDate("2024-03-10T12:00:00Z", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDate_NilLocationUsesLocal(t *testing.T) {
	d, err := ParseDate("2024-01-02", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Local, d.Location())
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 10, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), StartOfDay(in))
}

func TestSameDayAndCompareDays(t *testing.T) {
	morning := time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)
	night := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)
	next := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, next))
	assert.Equal(t, 0, CompareDays(morning, night))
	assert.Equal(t, -1, CompareDays(night, next))
	assert.Equal(t, 1, CompareDays(next, morning))
	assert.Equal(t, -1, CompareDays(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), next))
}

// Chile moves clocks from 00:00 to 01:00 on 2024-09-08, so that day has no midnight.
func santiago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)
	return loc
}

func TestParseDate_SkippedMidnight(t *testing.T) {
	loc := santiago(t)

	d, err := ParseDate("2024-09-08", loc)
	require.NoError(t, err)

	assert.Equal(t, "2024-09-08", FormatDate(d))
	assert.Equal(t, time.Date(2024, 9, 8, 1, 0, 0, 0, loc), d)
	assert.Equal(t, 0, CompareDays(d, time.Date(2024, 9, 8, 12, 0, 0, 0, loc)))
}

func TestStartOfDay_SkippedMidnight(t *testing.T) {
	loc := santiago(t)

	got := StartOfDay(time.Date(2024, 9, 8, 15, 30, 0, 0, loc))
	assert.Equal(t, "2024-09-08", FormatDate(got))
	assert.Equal(t, 1, got.Hour())
}

func TestAddDays(t *testing.T) {
	loc := santiago(t)
	start := time.Date(2024, 9, 7, 18, 0, 0, 0, loc)

	assert.Equal(t, "2024-09-08", FormatDate(AddDays(start, 1)))
	assert.Equal(t, "2024-09-09", FormatDate(AddDays(start, 2)))
	assert.Equal(t, "2024-08-31", FormatDate(AddDays(start, -7)))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), AddDays(time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC), 1))
}

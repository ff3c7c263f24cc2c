package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonthJanuary2025(t *testing.T) {
	days := DaysInMonth(2025, time.January)

	// January 2025 starts on a Wednesday: three leading placeholders.
	require.GreaterOrEqual(t, len(days), 34)
	assert.Equal(t, 0, len(days)%7, "grid must be whole weeks")
	for i := 0; i < 3; i++ {
		assert.Nil(t, days[i])
	}
	for d := 1; d <= 31; d++ {
		day := days[2+d]
		require.NotNil(t, day, "day %d", d)
		assert.Equal(t, d, day.Day())
		assert.Equal(t, time.January, day.Month())
		assert.Equal(t, 2025, day.Year())
	}
	for _, day := range days[34:] {
		assert.Nil(t, day)
	}
}

func TestDaysInMonthNoLeadingPaddingOnSunday(t *testing.T) {
	// June 2025 starts on a Sunday.
	days := DaysInMonth(2025, time.June)
	require.NotNil(t, days[0])
	assert.Equal(t, 1, days[0].Day())
	assert.Equal(t, 35, len(days))
}

func TestDateKey(t *testing.T) {
	d := time.Date(2025, time.January, 5, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-05", DateKey(d))

	parsed, err := ParseDateKey("2025-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-05", DateKey(parsed))

	_, err = ParseDateKey("05/01/2025")
	assert.Error(t, err)
}

func TestIsBookable(t *testing.T) {
	today := time.Date(2025, time.January, 15, 18, 30, 0, 0, time.UTC)
	slots := []string{"09:00", "10:00"}

	assert.True(t, IsBookable(slots, today, today), "same day stays bookable regardless of time of day")
	assert.True(t, IsBookable(slots, today.AddDate(0, 0, 1), today))
	assert.False(t, IsBookable(slots, today.AddDate(0, 0, -1), today))
	assert.False(t, IsBookable(nil, today.AddDate(0, 0, 1), today))
	assert.False(t, IsBookable([]string{}, today, today))
}

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekly_Recurring(t *testing.T) {
	start := time.Date(2025, 1, 6, 19, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 0, 28)

	got, err := NewExpander(time.UTC, 0).Weekly(start, end, true, from, until)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, time.Date(2025, 2, 3, 19, 0, 0, 0, time.UTC), got[0].Start)
	assert.Equal(t, time.Date(2025, 2, 3, 21, 0, 0, 0, time.UTC), got[0].End)
	assert.Equal(t, time.Date(2025, 2, 24, 19, 0, 0, 0, time.UTC), got[3].Start)
}

func TestWeekly_KeepsWallClockAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// 19:00 EST on Monday 3 March 2025; DST starts on 9 March.
	start := time.Date(2025, 3, 3, 19, 0, 0, 0, ny)

	got, err := NewExpander(ny, 0).Weekly(start, start.Add(time.Hour), true, start, start.AddDate(0, 0, 8))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 19, got[1].Start.In(ny).Hour())
	assert.Equal(t, time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC), got[1].Start)
}

func TestWeekly_SingleEvent(t *testing.T) {
	start := time.Date(2025, 2, 3, 19, 0, 0, 0, time.UTC)
	x := NewExpander(nil, 0)

	got, err := x.Weekly(start, start.Add(time.Hour), false, start.AddDate(0, 0, -1), start.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = x.Weekly(start, start.Add(time.Hour), false, start.AddDate(0, 0, 1), start.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWeekly_Cap(t *testing.T) {
	start := time.Date(2025, 1, 6, 19, 0, 0, 0, time.UTC)
	got, err := NewExpander(time.UTC, 3).Weekly(start, start.Add(time.Hour), true, start, start.AddDate(1, 0, 0))
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestWeekly_InvalidRange(t *testing.T) {
	now := time.Now()
	_, err := NewExpander(nil, 0).Weekly(now, now, true, now, now.Add(-time.Hour))
	require.Error(t, err)
}

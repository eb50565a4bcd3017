package timepoint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    time.Time
		wantErr bool
	}{
		{"evening start", "20250116T180000Z", time.Date(2025, 1, 16, 18, 0, 0, 0, time.UTC), false},
		{"seconds kept", "20251231T235959Z", time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), false},
		{"leap day", "20240229T120000Z", time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), false},
		{"iso form rejected", "2025-01-16T18:00:00Z", time.Time{}, true},
		{"missing Z", "20250116T180000", time.Time{}, true},
		{"too short", "20250116T1800Z", time.Time{}, true},
		{"month 13", "20251316T180000Z", time.Time{}, true},
		{"feb 30", "20250230T180000Z", time.Time{}, true},
		{"hour 25", "20250116T250000Z", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedTimestamp)
				assert.True(t, got.IsZero(), "failed parse must not produce an instant")
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	tokens := []string{
		"20250116T180000Z",
		"20250303T190000Z",
		"19991231T235900Z",
		"20000101T000000Z",
		"20240229T123456Z",
	}
	for _, tok := range tokens {
		t.Run(tok, func(t *testing.T) {
			parsed, err := Parse(tok)
			require.NoError(t, err)
			out := Format(parsed)
			assert.Equal(t, tok, out)
			assert.Len(t, out, Length)

			again, err := Parse(out)
			require.NoError(t, err)
			assert.True(t, parsed.Equal(again))
		})
	}
}

func TestFormat_ConvertsToUTC(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	local := time.Date(2025, 1, 16, 13, 0, 0, 0, ny)
	assert.Equal(t, "20250116T180000Z", Format(local))
	assert.Equal(t, "20250116T180000Z", FormatForCalendarExport(local))
}

func TestParseRange(t *testing.T) {
	start, end, err := ParseRange("20250116T180000Z", "20250116T210000Z")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Hour, end.Sub(start))

	_, _, err = ParseRange("20250116T180000Z", "bogus")
	require.ErrorIs(t, err, ErrMalformedTimestamp)
	assert.Contains(t, err.Error(), "end")
}

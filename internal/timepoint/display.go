package timepoint

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Display holds the date and time strings shown on event and game cards.
type Display struct {
	Date string `json:"dateDisplay"`
	Time string `json:"timeDisplay"`
}

// FormatForDisplay renders a start/end pair in loc (nil means UTC):
//
//	same day:    "Jan 16"           "6pm - 9pm"
//	same month:  "Jan 16th-17th"    "6pm - 9:30pm"
//	otherwise:   "Jan 31 - Feb 1"
func FormatForDisplay(start, end time.Time, loc *time.Location) Display {
	if loc == nil {
		loc = time.UTC
	}
	start, end = start.In(loc), end.In(loc)
	return Display{
		Date: dateRange(start, end),
		Time: clock(start) + " - " + clock(end),
	}
}

// DisplayTokens parses both tokens and formats them.
func DisplayTokens(startToken, endToken string, loc *time.Location) (Display, error) {
	start, end, err := ParseRange(startToken, endToken)
	if err != nil {
		return Display{}, err
	}
	return FormatForDisplay(start, end, loc), nil
}

func dateRange(start, end time.Time) string {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	switch {
	case sy == ey && sm == em && sd == ed:
		return start.Format("Jan 2")
	case sy == ey && sm == em:
		return fmt.Sprintf("%s %s-%s", start.Format("Jan"), Ordinal(sd), Ordinal(ed))
	default:
		return start.Format("Jan 2") + " - " + end.Format("Jan 2")
	}
}

func clock(t time.Time) string {
	return strings.Replace(t.Format("3:04pm"), ":00", "", 1)
}

// Ordinal renders n with its English suffix: 1st, 2nd, 3rd, 4th, 11th, 21st.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

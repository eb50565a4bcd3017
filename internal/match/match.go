// Package match decides whether catalogue filter input matches stored values
// that may be a single number or an inclusive "min-max" range.
package match

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// WeightTolerance is how far a difficulty filter may be from a game's weight
// and still match.
const WeightTolerance = 0.55

var (
	rangePattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	leadingInt   = regexp.MustCompile(`^\s*([+-]?\d+)`)
	leadingFloat = regexp.MustCompile(`^\s*([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
)

// Range reports whether filter, read as an integer, matches stored.
// A stored "2-6" matches 2 through 6 inclusive; a stored "8" matches only 8.
// Trailing text on either side is ignored ("60-90 mins", "4 players").
// A filter without a leading integer never matches.
func Range(stored, filter string) bool {
	want, ok := Int(filter)
	if !ok {
		return false
	}
	if m := rangePattern.FindStringSubmatch(stored); m != nil {
		lo, err := strconv.Atoi(m[1])
		if err != nil {
			return false
		}
		hi, err := strconv.Atoi(m[2])
		if err != nil {
			return false
		}
		return want >= lo && want <= hi
	}
	got, ok := Int(stored)
	return ok && got == want
}

// Weight reports whether two difficulty weights are within WeightTolerance.
func Weight(stored, filter string) bool {
	got, ok := Float(stored)
	if !ok {
		return false
	}
	want, ok := Float(filter)
	if !ok {
		return false
	}
	return math.Abs(got-want) <= WeightTolerance
}

// TitleContains is the case-insensitive substring test used by title search
// and autocomplete. An empty query matches every title.
func TitleContains(title, query string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(query))
}

// Int reads the leading integer of s, skipping leading whitespace.
func Int(s string) (int, bool) {
	m := leadingInt.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float reads the leading decimal of s, skipping leading whitespace.
func Float(s string) (float64, bool) {
	m := leadingFloat.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

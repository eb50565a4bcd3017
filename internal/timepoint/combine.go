package timepoint

import (
	"fmt"
	"strings"
	"time"
)

// Form field layouts as produced by HTML date and time inputs.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Policy decides how separate date and time form fields become a token.
type Policy int

const (
	// Literal stores the typed wall-clock digits as-is, with no zone conversion.
	Literal Policy = iota
	// UTCConversion reads the fields as wall-clock time in the configured
	// location and stores the equivalent UTC instant.
	UTCConversion
)

func (p Policy) String() string {
	switch p {
	case UTCConversion:
		return "utc"
	default:
		return "literal"
	}
}

// ParsePolicy accepts "literal" or "utc". Empty selects Literal.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "literal":
		return Literal, nil
	case "utc", "utc-conversion":
		return UTCConversion, nil
	default:
		return Literal, fmt.Errorf("unknown combine policy %q", s)
	}
}

// Combiner applies a single Policy everywhere date/time fields are combined
// or split, so create and edit forms never disagree.
type Combiner struct {
	policy Policy
	loc    *time.Location
}

// NewCombiner returns a Combiner. loc is only used by UTCConversion; nil means UTC.
func NewCombiner(policy Policy, loc *time.Location) *Combiner {
	if loc == nil {
		loc = time.UTC
	}
	return &Combiner{policy: policy, loc: loc}
}

func (c *Combiner) Policy() Policy { return c.policy }

// Location is the zone the form fields are read in.
func (c *Combiner) Location() *time.Location {
	if c.policy == UTCConversion {
		return c.loc
	}
	return time.UTC
}

// Combine joins "YYYY-MM-DD" and "HH:MM" into a token.
func (c *Combiner) Combine(date, clock string) (string, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	wall, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, c.Location())
	if err != nil {
		return "", fmt.Errorf("%w: %q %q", ErrInvalidField, date, clock)
	}
	return Format(wall), nil
}

// Split is the inverse of Combine: it renders a token back into form fields.
func (c *Combiner) Split(token string) (date, clock string, err error) {
	t, err := Parse(token)
	if err != nil {
		return "", "", err
	}
	t = t.In(c.Location())
	return t.Format(DateLayout), t.Format(ClockLayout), nil
}

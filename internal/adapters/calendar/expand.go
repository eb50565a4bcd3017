package calendar

import (
	"errors"
	"fmt"
	"time"

	"boardbevy/internal/domain"

	"github.com/teambition/rrule-go"
)

const defaultMaxOccurrences = 520

// Expander lists the weekly repeats of recurring events within a range.
// Repeats keep their wall-clock time in the venue's zone across DST changes.
type Expander struct {
	loc *time.Location
	max int
}

var _ domain.RecurrenceExpander = (*Expander)(nil)

// NewExpander returns an Expander for loc (UTC when nil). max caps the
// occurrences per event; zero means the default.
func NewExpander(loc *time.Location, max int) *Expander {
	if loc == nil {
		loc = time.UTC
	}
	if max <= 0 {
		max = defaultMaxOccurrences
	}
	return &Expander{loc: loc, max: max}
}

// Weekly returns the occurrences of an event starting at start and ending at
// end that overlap [from, until]. A non-recurring event yields at most itself.
func (x *Expander) Weekly(start, end time.Time, recurring bool, from, until time.Time) ([]domain.Window, error) {
	if until.Before(from) {
		return nil, errors.New("expand: until is before from")
	}
	length := end.Sub(start)
	if !recurring {
		if overlaps(start, end, from, until) {
			return []domain.Window{{Start: start.UTC(), End: end.UTC()}}, nil
		}
		return nil, nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Dtstart: start.In(x.loc),
	})
	if err != nil {
		return nil, fmt.Errorf("expand: %w", err)
	}

	// Include repeats that started before from but are still running.
	starts := rule.Between(from.Add(-length), until, true)
	out := make([]domain.Window, 0, len(starts))
	for _, s := range starts {
		if len(out) == x.max {
			break
		}
		e := s.Add(length)
		if !overlaps(s, e, from, until) {
			continue
		}
		out = append(out, domain.Window{Start: s.UTC(), End: e.UTC()})
	}
	return out, nil
}

func overlaps(start, end, from, until time.Time) bool {
	return !end.Before(from) && !start.After(until)
}

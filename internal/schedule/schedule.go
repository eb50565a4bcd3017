// Package schedule decides when an open-table game may start. Opening hours
// are standard five-field cron expressions; every activation is a start slot.
package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultOpeningHours allows starts every 15 minutes from 16:00 on Wednesday
// to Friday and from 12:00 on Saturday, until midnight.
var DefaultOpeningHours = []string{
	"*/15 16-23 * * 3-5",
	"*/15 12-23 * * 6",
}

// LabelLayout is how slots are shown in the start/end time pickers.
const LabelLayout = "3:04 PM"

// Policy is a set of opening-hour schedules in the venue's time zone.
type Policy struct {
	specs     []string
	schedules []cron.Schedule
	loc       *time.Location
}

// New parses the given cron specs. loc nil means UTC.
func New(loc *time.Location, specs ...string) (*Policy, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one opening-hours spec is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	p := &Policy{loc: loc}
	for _, spec := range specs {
		s, err := cron.ParseStandard(spec)
		if err != nil {
			return nil, fmt.Errorf("opening hours %q: %w", spec, err)
		}
		p.specs = append(p.specs, spec)
		p.schedules = append(p.schedules, s)
	}
	return p, nil
}

// Location is the venue time zone slots are expressed in.
func (p *Policy) Location() *time.Location { return p.loc }

// Specs returns the cron expressions the policy was built from.
func (p *Policy) Specs() []string { return append([]string(nil), p.specs...) }

// Slots lists the allowed start times on date ("YYYY-MM-DD").
func (p *Policy) Slots(date string) ([]time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), p.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", date)
	}
	return p.SlotsOn(day), nil
}

// SlotsOn lists the allowed start times on the calendar day containing day.
func (p *Policy) SlotsOn(day time.Time) []time.Time {
	day = day.In(p.loc)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, p.loc)
	end := start.AddDate(0, 0, 1)

	seen := make(map[int64]struct{})
	var out []time.Time
	for _, s := range p.schedules {
		for t := s.Next(start.Add(-time.Second)); !t.IsZero() && t.Before(end); t = s.Next(t) {
			if _, ok := seen[t.Unix()]; ok {
				continue
			}
			seen[t.Unix()] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// OpenOn reports whether any slot exists on the day containing day.
func (p *Policy) OpenOn(day time.Time) bool {
	return len(p.SlotsOn(day)) > 0
}

// Allowed reports whether t is exactly one of the start slots.
func (p *Policy) Allowed(t time.Time) bool {
	t = t.In(p.loc)
	for _, s := range p.schedules {
		if s.Next(t.Add(-time.Second)).Equal(t) {
			return true
		}
	}
	return false
}

// Label renders a slot the way the time pickers show it, e.g. "4:00 PM".
func Label(t time.Time) string {
	return t.Format(LabelLayout)
}

// ParseLabel accepts "16:00" or "4:00 PM" and returns "16:00".
func ParseLabel(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", LabelLayout, "3:04PM", "3:04 pm", "3:04pm"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("invalid time %q", s)
}

package domain

import (
	"context"
	"time"
)

// CalendarItem is an event or game reduced to what a calendar entry needs.
type CalendarItem struct {
	Kind        ItemKind
	ID          ID
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Recurring   bool
}

// CalendarExporter renders calendar items for external calendar apps.
type CalendarExporter interface {
	ICS(item *CalendarItem) (string, error)
	GoogleLink(item *CalendarItem) string
}

// CalendarService exports an event or game by id.
type CalendarService interface {
	ICS(ctx context.Context, kind ItemKind, id ID) (string, error)
	GoogleLink(ctx context.Context, kind ItemKind, id ID) (string, error)
}

// Window is the span of one occurrence.
type Window struct {
	Start time.Time
	End   time.Time
}

// RecurrenceExpander lists the weekly repeats of an event that overlap
// [from, until]. A non-recurring event yields at most itself.
type RecurrenceExpander interface {
	Weekly(start, end time.Time, recurring bool, from, until time.Time) ([]Window, error)
}

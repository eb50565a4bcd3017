// Package calendar renders events and games for external calendar apps.
package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"boardbevy/internal/domain"
	"boardbevy/internal/timepoint"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	productID     = "-//Board & Bevy//Hub//EN"
	googleBaseURL = "https://calendar.google.com/calendar/render"
	weeklyRule    = "FREQ=WEEKLY"
)

type exporter struct {
	location string
	now      func() time.Time
}

// NewExporter returns a CalendarExporter that stamps every entry with the
// venue's street address. now defaults to time.Now.
func NewExporter(location string, now func() time.Time) domain.CalendarExporter {
	if now == nil {
		now = time.Now
	}
	return &exporter{location: location, now: now}
}

// UID is stable for a given item so re-importing replaces instead of duplicating.
func UID(kind domain.ItemKind, id domain.ID) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("boardbevy:"+string(kind)+":"+string(id))).String() + "@boardbevy"
}

func (e *exporter) ICS(item *domain.CalendarItem) (string, error) {
	if item == nil {
		return "", fmt.Errorf("%w: nothing to export", domain.ErrValidation)
	}
	if item.End.Before(item.Start) {
		return "", fmt.Errorf("%w: %s %s ends before it starts", domain.ErrValidation, item.Kind, item.ID)
	}

	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)

	ev := cal.AddEvent(UID(item.Kind, item.ID))
	ev.SetDtStampTime(e.now().UTC())
	ev.SetStartAt(item.Start.UTC())
	ev.SetEndAt(item.End.UTC())
	ev.SetSummary(item.Title)
	ev.SetDescription(item.Description)
	ev.SetLocation(e.location)
	if item.Recurring {
		ev.SetProperty(ical.ComponentPropertyRrule, weeklyRule)
	}
	return cal.Serialize(), nil
}

func (e *exporter) GoogleLink(item *domain.CalendarItem) string {
	dates := timepoint.FormatForCalendarExport(item.Start) + "/" + timepoint.FormatForCalendarExport(item.End)
	var b strings.Builder
	b.WriteString(googleBaseURL)
	b.WriteString("?action=TEMPLATE")
	b.WriteString("&text=" + encodeComponent(item.Title))
	b.WriteString("&dates=" + dates)
	b.WriteString("&details=" + encodeComponent(item.Description))
	b.WriteString("&location=" + encodeComponent(e.location))
	return b.String()
}

// encodeComponent escapes s for a query value with spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

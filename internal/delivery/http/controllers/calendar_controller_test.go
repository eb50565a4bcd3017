package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"boardbevy/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarController_ICS(t *testing.T) {
	tests := []struct {
		name         string
		handler      func(*CalendarController) http.HandlerFunc
		wantKind     domain.ItemKind
		wantFilename string
	}{
		{"event", func(c *CalendarController) http.HandlerFunc { return c.EventICS }, domain.KindEvent, `attachment; filename="event-42.ics"`},
		{"game", func(c *CalendarController) http.HandlerFunc { return c.GameICS }, domain.KindGame, `attachment; filename="game-42.ics"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCalendarService{ics: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"}
			ctrl := NewCalendarController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/x/42/calendar.ics", nil)
			req.SetPathValue("id", "42")
			rr := httptest.NewRecorder()

			tt.handler(ctrl)(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantKind, fake.lastKind)
			assert.Equal(t, domain.ID("42"), fake.lastID)
			assert.Equal(t, "text/calendar; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantFilename, rr.Header().Get("Content-Disposition"))
			assert.Equal(t, fake.ics, rr.Body.String())
		})
	}
}

func TestCalendarController_ICS_NotFound(t *testing.T) {
	ctrl := NewCalendarController(testLogger, &fakeCalendarService{err: domain.ErrNotFound})
	req := httptest.NewRequest(http.MethodGet, "/events/9/calendar.ics", nil)
	req.SetPathValue("id", "9")
	rr := httptest.NewRecorder()

	ctrl.EventICS(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
}

func TestCalendarController_GoogleLink(t *testing.T) {
	link := "https://calendar.google.com/calendar/render?action=TEMPLATE&text=Catan"
	fake := &fakeCalendarService{link: link}
	ctrl := NewCalendarController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/games/7/calendar/google", nil)
	req.SetPathValue("id", "7")
	rr := httptest.NewRecorder()

	ctrl.GameGoogle(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.KindGame, fake.lastKind)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, map[string]any{"url": link}, envelope.Data)
}

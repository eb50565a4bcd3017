package controllers

import (
	"log/slog"
	"net/http"

	"boardbevy/internal/delivery/http/helpers"
	"boardbevy/internal/domain"
)

// GoogleLinkResponse is the response body for the Google Calendar link endpoints.
type GoogleLinkResponse struct {
	URL string `json:"url"`
}

type CalendarController struct {
	Logger  *slog.Logger
	Service domain.CalendarService
}

func NewCalendarController(logger *slog.Logger, svc domain.CalendarService) *CalendarController {
	return &CalendarController{
		Logger:  logger,
		Service: svc,
	}
}

// EventICS godoc
// @Summary Download an event as iCalendar
// @Tags calendar
// @Produce text/calendar
// @Param id path string true "Event ID"
// @Success 200 {string} string "VCALENDAR body"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{id}/calendar.ics [get]
func (c *CalendarController) EventICS(w http.ResponseWriter, r *http.Request) {
	c.ics(w, r, domain.KindEvent)
}

// GameICS godoc
// @Summary Download a game as iCalendar
// @Tags calendar
// @Produce text/calendar
// @Param id path string true "Game ID"
// @Success 200 {string} string "VCALENDAR body"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /games/{id}/calendar.ics [get]
func (c *CalendarController) GameICS(w http.ResponseWriter, r *http.Request) {
	c.ics(w, r, domain.KindGame)
}

// EventGoogle godoc
// @Summary Google Calendar link for an event
// @Tags calendar
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse{data=GoogleLinkResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{id}/calendar/google [get]
func (c *CalendarController) EventGoogle(w http.ResponseWriter, r *http.Request) {
	c.google(w, r, domain.KindEvent)
}

// GameGoogle godoc
// @Summary Google Calendar link for a game
// @Tags calendar
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} helpers.APIResponse{data=GoogleLinkResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /games/{id}/calendar/google [get]
func (c *CalendarController) GameGoogle(w http.ResponseWriter, r *http.Request) {
	c.google(w, r, domain.KindGame)
}

func (c *CalendarController) ics(w http.ResponseWriter, r *http.Request, kind domain.ItemKind) {
	id := r.PathValue("id")
	body, err := c.Service.ICS(r.Context(), kind, domain.ID(id))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteCalendar(w, string(kind)+"-"+id+".ics", body)
}

func (c *CalendarController) google(w http.ResponseWriter, r *http.Request, kind domain.ItemKind) {
	link, err := c.Service.GoogleLink(r.Context(), kind, domain.ID(r.PathValue("id")))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GoogleLinkResponse{URL: link})
}

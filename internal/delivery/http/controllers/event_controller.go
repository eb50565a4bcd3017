package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"boardbevy/internal/delivery/http/helpers"
	"boardbevy/internal/delivery/http/middleware"
	"boardbevy/internal/domain"
)

// EventRequest is the request body for POST /events and PUT /events/{id}.
// Dates are "YYYY-MM-DD" and times "HH:MM"; endDate defaults to startDate.
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	StartTime   string `json:"startTime"`
	EndDate     string `json:"endDate"`
	EndTime     string `json:"endTime"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Game        string `json:"game"`
	Recurring   bool   `json:"recurring"`
}

// Validate implements Validator.
func (e EventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Title) == "" {
		errs = append(errs, "title is required")
	}
	if e.StartDate == "" {
		errs = append(errs, "startDate is required")
	}
	if e.StartTime == "" {
		errs = append(errs, "startTime is required")
	}
	if e.EndTime == "" {
		errs = append(errs, "endTime is required")
	}
	return errs
}

func (e EventRequest) input() *domain.EventInput {
	return &domain.EventInput{
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate,
		StartTime:   e.StartTime,
		EndDate:     e.EndDate,
		EndTime:     e.EndTime,
		Price:       e.Price,
		Image:       e.Image,
		Game:        e.Game,
		Recurring:   e.Recurring,
	}
}

// RSVPRequest is the request body for the RSVP endpoints.
type RSVPRequest struct {
	Participant string `json:"participant"`
}

// Validate implements Validator.
func (r RSVPRequest) Validate() []string {
	if strings.TrimSpace(r.Participant) == "" {
		return []string{"participant is required"}
	}
	return nil
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Now     func() time.Time
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Now:     time.Now,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event sorted by start time, with the date and time strings an event card shows.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.EventView}
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	views, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, views)
}

// Upcoming godoc
// @Summary Upcoming occurrences
// @Description Expands recurring events weekly and lists every occurrence from now over the next N weeks.
// @Tags events
// @Produce json
// @Param weeks query int false "Number of weeks (1-52, default 4)"
// @Success 200 {object} helpers.APIResponse{data=[]domain.Occurrence}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /events/upcoming [get]
func (c *EventController) Upcoming(w http.ResponseWriter, r *http.Request) {
	weeks := 0
	if s := r.URL.Query().Get("weeks"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "weeks must be a number")
			return
		}
		weeks = v
	}
	occ, err := c.Service.UpcomingOccurrences(r.Context(), c.Now(), weeks)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if occ == nil {
		occ = []*domain.Occurrence{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, occ)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Admin only. Date and time fields are combined into TimePoint tokens.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event form"
// @Success 201 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), middleware.AuthFromContext(r.Context()), req.input())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Admin only. Replaces every field of the event.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param event body EventRequest true "Event form"
// @Success 200 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), middleware.AuthFromContext(r.Context()), domain.ID(id), req.input())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Admin only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), middleware.AuthFromContext(r.Context()), domain.ID(id)); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RSVP godoc
// @Summary RSVP to an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body RSVPRequest true "Participant name"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /events/{id}/rsvp [post]
func (c *EventController) RSVP(w http.ResponseWriter, r *http.Request) {
	var req RSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.RSVP(r.Context(), domain.ID(r.PathValue("id")), req.Participant); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, map[string]string{"status": "registered"})
}

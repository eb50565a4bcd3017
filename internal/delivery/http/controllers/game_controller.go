package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"boardbevy/internal/delivery/http/helpers"
	"boardbevy/internal/delivery/http/middleware"
	"boardbevy/internal/domain"
)

// GamePasswordHeader carries the game's password on edit and delete requests.
const GamePasswordHeader = "X-Game-Password"

// GameRequest is the request body for POST /games and PUT /games/{id}.
// Times are "HH:MM" or a slot label such as "4:00 PM". The room fields are
// required when players reaches the room booking threshold.
type GameRequest struct {
	Title         string `json:"title"`
	Organizer     string `json:"organizer"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Players       string `json:"players"`
	Description   string `json:"description"`
	Password      string `json:"password"`
	Catalogue     string `json:"catalogue"`
	Room          string `json:"halfPrivateRoom"`
	BookingEmail  string `json:"email"`
	FirstLastName string `json:"firstLastName"`
}

// Validate implements Validator.
func (g GameRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(g.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(g.Organizer) == "" {
		errs = append(errs, "organizer is required")
	}
	if g.Date == "" {
		errs = append(errs, "date is required")
	}
	if g.StartTime == "" || g.EndTime == "" {
		errs = append(errs, "startTime and endTime are required")
	}
	if strings.TrimSpace(g.Players) == "" {
		errs = append(errs, "players is required")
	}
	return errs
}

func (g GameRequest) input() *domain.GameInput {
	in := &domain.GameInput{
		Title:       g.Title,
		Organizer:   g.Organizer,
		Date:        g.Date,
		StartTime:   g.StartTime,
		EndTime:     g.EndTime,
		Players:     g.Players,
		Description: g.Description,
		Password:    g.Password,
		Catalogue:   g.Catalogue,
	}
	if g.Room != "" || g.BookingEmail != "" {
		in.Booking = &domain.RoomBooking{Room: g.Room, Email: g.BookingEmail, Name: g.FirstLastName}
	}
	return in
}

type GameController struct {
	Logger  *slog.Logger
	Service domain.GameService
}

func NewGameController(logger *slog.Logger, svc domain.GameService) *GameController {
	return &GameController{
		Logger:  logger,
		Service: svc,
	}
}

func grant(r *http.Request) domain.EditGrant {
	return domain.EditGrant{
		Auth:     middleware.AuthFromContext(r.Context()),
		Password: r.Header.Get(GamePasswordHeader),
	}
}

// ListGames godoc
// @Summary List open-table games
// @Description Filters by a case-insensitive title substring and sorts by title or start time.
// @Tags games
// @Produce json
// @Param title query string false "Title contains"
// @Param sort query string false "title or start (default start)"
// @Success 200 {object} helpers.APIResponse{data=[]domain.GameView}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /games [get]
func (c *GameController) ListGames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	views, err := c.Service.ListGames(r.Context(), q.Get("title"), q.Get("sort"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, views)
}

// Slots godoc
// @Summary Start slots for a date
// @Description Lists the 15-minute start slots open on the given date; empty on closed days.
// @Tags games
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} helpers.APIResponse{data=[]string}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /games/slots [get]
func (c *GameController) Slots(w http.ResponseWriter, r *http.Request) {
	slots, err := c.Service.SlotsForDate(r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slots)
}

// CreateGame godoc
// @Summary Post an open-table game
// @Description Anyone may post a game. Large parties must include the room booking fields.
// @Tags games
// @Accept json
// @Produce json
// @Param game body GameRequest true "Game form"
// @Success 201 {object} helpers.APIResponse{data=domain.Game}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /games [post]
func (c *GameController) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	game, err := c.Service.CreateGame(r.Context(), req.input())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, game)
}

// UpdateGame godoc
// @Summary Edit a game
// @Description Allowed for admins or with the game's password in the X-Game-Password header.
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Param X-Game-Password header string false "Game password"
// @Param game body GameRequest true "Game form"
// @Success 200 {object} helpers.APIResponse{data=domain.Game}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /games/{id} [put]
func (c *GameController) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req GameRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	game, err := c.Service.UpdateGame(r.Context(), grant(r), domain.ID(id), req.input())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, game)
}

// DeleteGame godoc
// @Summary Delete a game
// @Description Allowed for admins or with the game's password in the X-Game-Password header.
// @Tags games
// @Security BearerAuth
// @Param id path string true "Game ID"
// @Param X-Game-Password header string false "Game password"
// @Success 204
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /games/{id} [delete]
func (c *GameController) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.DeleteGame(r.Context(), grant(r), domain.ID(id)); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RSVP godoc
// @Summary Join a game
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param body body RSVPRequest true "Participant name"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /games/{id}/rsvp [post]
func (c *GameController) RSVP(w http.ResponseWriter, r *http.Request) {
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

package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"boardbevy/internal/delivery/http/helpers"
	"boardbevy/internal/delivery/http/middleware"
	"boardbevy/internal/domain"
)

// CatalogueRequest is the request body for POST /catalogue and PUT /catalogue/{id}.
type CatalogueRequest struct {
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	ReleaseYear string `json:"releaseYear"`
	Image       string `json:"image"`
	Players     string `json:"players"`
	Difficulty  string `json:"difficulty"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Validate implements Validator.
func (c CatalogueRequest) Validate() []string {
	if strings.TrimSpace(c.Title) == "" {
		return []string{"title is required"}
	}
	return nil
}

func (c CatalogueRequest) entry() *domain.CatalogueEntry {
	return &domain.CatalogueEntry{
		Title:       c.Title,
		Publisher:   strings.TrimSpace(c.Publisher),
		ReleaseYear: domain.Text(strings.TrimSpace(c.ReleaseYear)),
		Image:       strings.TrimSpace(c.Image),
		Players:     domain.Text(strings.TrimSpace(c.Players)),
		Difficulty:  domain.Text(strings.TrimSpace(c.Difficulty)),
		Duration:    domain.Text(strings.TrimSpace(c.Duration)),
		Description: c.Description,
	}
}

type CatalogueController struct {
	Logger  *slog.Logger
	Service domain.CatalogueService
}

func NewCatalogueController(logger *slog.Logger, svc domain.CatalogueService) *CatalogueController {
	return &CatalogueController{
		Logger:  logger,
		Service: svc,
	}
}

// Browse godoc
// @Summary Browse the board game catalogue
// @Description Filters by title substring, player count within the stored range, difficulty within 0.55 and duration within the stored range.
// @Tags catalogue
// @Produce json
// @Param title query string false "Title contains"
// @Param players query string false "Player count"
// @Param difficulty query string false "Weight, e.g. 2.5"
// @Param duration query string false "Minutes"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse{data=helpers.Page[domain.CatalogueEntry]}
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /catalogue [get]
func (c *CatalogueController) Browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := domain.CatalogueQuery{
		Title:      q.Get("title"),
		Players:    q.Get("players"),
		Difficulty: q.Get("difficulty"),
		Duration:   q.Get("duration"),
	}
	page := helpers.ParsePagination(r)
	entries, total, err := c.Service.Browse(r.Context(), query, page)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if entries == nil {
		entries = []*domain.CatalogueEntry{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.Page[*domain.CatalogueEntry]{
		Items:      entries,
		Pagination: helpers.NewPaginationMeta(page.Page, page.PageSize, total),
	})
}

// Suggest godoc
// @Summary Autocomplete catalogue titles
// @Tags catalogue
// @Produce json
// @Param q query string true "Title prefix or substring"
// @Param limit query int false "Maximum suggestions (default 10)"
// @Success 200 {object} helpers.APIResponse{data=[]domain.CatalogueTitle}
// @Router /catalogue/suggest [get]
func (c *CatalogueController) Suggest(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	titles, err := c.Service.Suggest(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, titles)
}

// Lookup godoc
// @Summary Search BoardGameGeek
// @Tags catalogue
// @Produce json
// @Param q query string true "Game name"
// @Success 200 {object} helpers.APIResponse{data=[]domain.LookupResult}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /catalogue/lookup [get]
func (c *CatalogueController) Lookup(w http.ResponseWriter, r *http.Request) {
	results, err := c.Service.Lookup(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, results)
}

// Details godoc
// @Summary BoardGameGeek details as a catalogue entry
// @Description Pre-fills the add-game form from a BoardGameGeek id.
// @Tags catalogue
// @Produce json
// @Param bggID path string true "BoardGameGeek id"
// @Success 200 {object} helpers.APIResponse{data=domain.CatalogueEntry}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /catalogue/lookup/{bggID} [get]
func (c *CatalogueController) Details(w http.ResponseWriter, r *http.Request) {
	entry, err := c.Service.Details(r.Context(), r.PathValue("bggID"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entry)
}

// Create godoc
// @Summary Add a catalogue entry
// @Description Admin only.
// @Tags catalogue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body CatalogueRequest true "Catalogue entry"
// @Success 201 {object} helpers.APIResponse{data=domain.CatalogueEntry}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /catalogue [post]
func (c *CatalogueController) Create(w http.ResponseWriter, r *http.Request) {
	var req CatalogueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	entry := req.entry()
	if err := c.Service.Create(r.Context(), middleware.AuthFromContext(r.Context()), entry); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, entry)
}

// Update godoc
// @Summary Edit a catalogue entry
// @Description Admin only.
// @Tags catalogue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Catalogue ID"
// @Param entry body CatalogueRequest true "Catalogue entry"
// @Success 200 {object} helpers.APIResponse{data=domain.CatalogueEntry}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /catalogue/{id} [put]
func (c *CatalogueController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req CatalogueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	entry, err := c.Service.Update(r.Context(), middleware.AuthFromContext(r.Context()), domain.ID(id), req.entry())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entry)
}

// Delete godoc
// @Summary Remove a catalogue entry
// @Description Admin only.
// @Tags catalogue
// @Security BearerAuth
// @Param id path string true "Catalogue ID"
// @Success 204
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /catalogue/{id} [delete]
func (c *CatalogueController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.Delete(r.Context(), middleware.AuthFromContext(r.Context()), domain.ID(id)); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

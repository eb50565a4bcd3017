package http

import (
	"log/slog"
	"net/http"

	"boardbevy/internal/delivery/http/controllers"
	"boardbevy/internal/delivery/http/helpers"
	"boardbevy/internal/delivery/http/middleware"
	"boardbevy/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth      *controllers.AuthController
	Events    *controllers.EventController
	Games     *controllers.GameController
	Catalogue *controllers.CatalogueController
	Calendar  *controllers.CalendarController
}

// NewRouter initializes the HTTP router with all application routes.
// Routes that read the caller's session are wrapped with ResolveAuth; the rest
// are public.
func NewRouter(c Controllers, auth domain.AuthService, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	session := middleware.ResolveAuth(auth, logger)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("GET /auth/session", session(c.Auth.Session))

	// Events
	mux.HandleFunc("GET /events", c.Events.ListEvents)
	mux.HandleFunc("GET /events/upcoming", c.Events.Upcoming)
	mux.HandleFunc("POST /events", session(c.Events.CreateEvent))
	mux.HandleFunc("PUT /events/{id}", session(c.Events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{id}", session(c.Events.DeleteEvent))
	mux.HandleFunc("POST /events/{id}/rsvp", c.Events.RSVP)
	mux.HandleFunc("GET /events/{id}/calendar.ics", c.Calendar.EventICS)
	mux.HandleFunc("GET /events/{id}/calendar/google", c.Calendar.EventGoogle)

	// Games
	mux.HandleFunc("GET /games", c.Games.ListGames)
	mux.HandleFunc("GET /games/slots", c.Games.Slots)
	mux.HandleFunc("POST /games", c.Games.CreateGame)
	mux.HandleFunc("PUT /games/{id}", session(c.Games.UpdateGame))
	mux.HandleFunc("DELETE /games/{id}", session(c.Games.DeleteGame))
	mux.HandleFunc("POST /games/{id}/rsvp", c.Games.RSVP)
	mux.HandleFunc("GET /games/{id}/calendar.ics", c.Calendar.GameICS)
	mux.HandleFunc("GET /games/{id}/calendar/google", c.Calendar.GameGoogle)

	// Catalogue
	mux.HandleFunc("GET /catalogue", c.Catalogue.Browse)
	mux.HandleFunc("GET /catalogue/suggest", c.Catalogue.Suggest)
	mux.HandleFunc("GET /catalogue/lookup", c.Catalogue.Lookup)
	mux.HandleFunc("GET /catalogue/lookup/{bggID}", c.Catalogue.Details)
	mux.HandleFunc("POST /catalogue", session(c.Catalogue.Create))
	mux.HandleFunc("PUT /catalogue/{id}", session(c.Catalogue.Update))
	mux.HandleFunc("DELETE /catalogue/{id}", session(c.Catalogue.Delete))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with CORS and request logging.
func NewHandler(mux http.Handler, allowedOrigins []string, logger *slog.Logger) http.Handler {
	return middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux))
}

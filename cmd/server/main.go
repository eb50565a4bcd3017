package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boardbevy/config"
	"boardbevy/internal/adapters/auth"
	"boardbevy/internal/adapters/bgg"
	"boardbevy/internal/adapters/calendar"
	"boardbevy/internal/adapters/hubapi"
	httpDelivery "boardbevy/internal/delivery/http"
	"boardbevy/internal/delivery/http/controllers"
	"boardbevy/internal/schedule"
	"boardbevy/internal/services"
	"boardbevy/internal/timepoint"
)

// @title Board & Bevy hub API
// @version 1.0
// @description Events, open-table games and the board game catalogue for the Board & Bevy hub.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	venue, err := config.LoadVenue(cfg.VenueFile)
	if err != nil {
		return err
	}
	policy, err := timepoint.ParsePolicy(cfg.CombinePolicy)
	if err != nil {
		return err
	}
	hours, err := schedule.New(cfg.Timezone, venue.OpeningHours...)
	if err != nil {
		return err
	}

	// Adapters
	httpClient := &http.Client{Timeout: cfg.HubTimeout}
	hub := hubapi.NewClient(cfg.HubAPIURL, httpClient, logger)
	eventRepo := hubapi.NewEventRepository(hub)
	gameRepo := hubapi.NewGameRepository(hub)
	catalogueRepo := hubapi.NewCatalogueRepository(hub)
	participantRepo := hubapi.NewParticipantRepository(hub)
	sessions := hubapi.NewSessionGateway(hub)
	lookup := bgg.NewClient(cfg.BGGAPIURL, httpClient)
	exporter := calendar.NewExporter(venue.Location, time.Now)
	expander := calendar.NewExpander(cfg.Timezone, 0)
	combiner := timepoint.NewCombiner(policy, cfg.Timezone)

	// Services
	authService := services.NewAuthService(sessions, auth.NewJWTInspector(), time.Now, cfg.HubTimeout)
	eventService := services.NewEventService(eventRepo, participantRepo, expander, combiner, cfg.DisplayTimezone, cfg.HubTimeout)
	gameService := services.NewGameService(gameRepo, participantRepo, combiner, hours, venue.RoomBookingThreshold, cfg.DisplayTimezone, cfg.HubTimeout)
	catalogueService := services.NewCatalogueService(catalogueRepo, lookup, cfg.HubTimeout)
	calendarService := services.NewCalendarService(eventRepo, gameRepo, exporter, cfg.HubTimeout)

	mux := httpDelivery.NewRouter(httpDelivery.Controllers{
		Auth:      controllers.NewAuthController(logger, authService),
		Events:    controllers.NewEventController(logger, eventService),
		Games:     controllers.NewGameController(logger, gameService),
		Catalogue: controllers.NewCatalogueController(logger, catalogueService),
		Calendar:  controllers.NewCalendarController(logger, calendarService),
	}, authService, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpDelivery.NewHandler(mux, cfg.CORSOrigins, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"port", cfg.Port,
			"env", cfg.Environment,
			"hub_api", cfg.HubAPIURL,
			"combine_policy", combiner.Policy().String(),
			"timezone", cfg.Timezone.String(),
			"venue", venue.Name,
			"opening_hours", hours.Specs(),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

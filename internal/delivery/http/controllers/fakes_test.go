package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"boardbevy/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var adminCtx = domain.AuthContext{Token: "tok", IsAdmin: true}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	views       []*domain.EventView
	occurrences []*domain.Occurrence
	err         error

	lastAuth        domain.AuthContext
	lastInput       *domain.EventInput
	lastID          domain.ID
	lastFrom        time.Time
	lastWeeks       int
	lastParticipant string
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.EventView, error) {
	return f.views, f.err
}

func (f *fakeEventService) UpcomingOccurrences(ctx context.Context, from time.Time, weeks int) ([]*domain.Occurrence, error) {
	f.lastFrom, f.lastWeeks = from, weeks
	return f.occurrences, f.err
}

func (f *fakeEventService) CreateEvent(ctx context.Context, auth domain.AuthContext, in *domain.EventInput) (*domain.Event, error) {
	f.lastAuth, f.lastInput = auth, in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Event{ID: "ev-1", Title: in.Title, StartTime: "20250301T180000Z", EndTime: "20250301T210000Z"}, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, auth domain.AuthContext, id domain.ID, in *domain.EventInput) (*domain.Event, error) {
	f.lastAuth, f.lastID, f.lastInput = auth, id, in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Event{ID: id, Title: in.Title}, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, auth domain.AuthContext, id domain.ID) error {
	f.lastAuth, f.lastID = auth, id
	return f.err
}

func (f *fakeEventService) RSVP(ctx context.Context, id domain.ID, participant string) error {
	f.lastID, f.lastParticipant = id, participant
	return f.err
}

// fakeGameService implements domain.GameService for handler tests.
type fakeGameService struct {
	views []*domain.GameView
	slots []string
	err   error

	lastQuery, lastSort string
	lastDate            string
	lastGrant           domain.EditGrant
	lastInput           *domain.GameInput
	lastID              domain.ID
	lastParticipant     string
}

func (f *fakeGameService) ListGames(ctx context.Context, query, sortBy string) ([]*domain.GameView, error) {
	f.lastQuery, f.lastSort = query, sortBy
	return f.views, f.err
}

func (f *fakeGameService) SlotsForDate(date string) ([]string, error) {
	f.lastDate = date
	return f.slots, f.err
}

func (f *fakeGameService) CreateGame(ctx context.Context, in *domain.GameInput) (*domain.Game, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Game{ID: "g-1", Title: in.Title, Organizer: in.Organizer}, nil
}

func (f *fakeGameService) UpdateGame(ctx context.Context, grant domain.EditGrant, id domain.ID, in *domain.GameInput) (*domain.Game, error) {
	f.lastGrant, f.lastID, f.lastInput = grant, id, in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Game{ID: id, Title: in.Title}, nil
}

func (f *fakeGameService) DeleteGame(ctx context.Context, grant domain.EditGrant, id domain.ID) error {
	f.lastGrant, f.lastID = grant, id
	return f.err
}

func (f *fakeGameService) RSVP(ctx context.Context, id domain.ID, participant string) error {
	f.lastID, f.lastParticipant = id, participant
	return f.err
}

// fakeCatalogueService implements domain.CatalogueService for handler tests.
type fakeCatalogueService struct {
	entries []*domain.CatalogueEntry
	total   int
	titles  []*domain.CatalogueTitle
	results []*domain.LookupResult
	details *domain.CatalogueEntry
	err     error

	lastQuery domain.CatalogueQuery
	lastPage  domain.PaginationParams
	lastText  string
	lastLimit int
	lastAuth  domain.AuthContext
	lastID    domain.ID
	lastEntry *domain.CatalogueEntry
}

func (f *fakeCatalogueService) Browse(ctx context.Context, query domain.CatalogueQuery, page domain.PaginationParams) ([]*domain.CatalogueEntry, int, error) {
	f.lastQuery, f.lastPage = query, page
	return f.entries, f.total, f.err
}

func (f *fakeCatalogueService) Suggest(ctx context.Context, query string, limit int) ([]*domain.CatalogueTitle, error) {
	f.lastText, f.lastLimit = query, limit
	return f.titles, f.err
}

func (f *fakeCatalogueService) Lookup(ctx context.Context, query string) ([]*domain.LookupResult, error) {
	f.lastText = query
	return f.results, f.err
}

func (f *fakeCatalogueService) Details(ctx context.Context, bggID string) (*domain.CatalogueEntry, error) {
	f.lastText = bggID
	return f.details, f.err
}

func (f *fakeCatalogueService) Create(ctx context.Context, auth domain.AuthContext, entry *domain.CatalogueEntry) error {
	f.lastAuth, f.lastEntry = auth, entry
	if f.err == nil {
		entry.ID = "c-1"
	}
	return f.err
}

func (f *fakeCatalogueService) Update(ctx context.Context, auth domain.AuthContext, id domain.ID, entry *domain.CatalogueEntry) (*domain.CatalogueEntry, error) {
	f.lastAuth, f.lastID, f.lastEntry = auth, id, entry
	if f.err != nil {
		return nil, f.err
	}
	entry.ID = id
	return entry, nil
}

func (f *fakeCatalogueService) Delete(ctx context.Context, auth domain.AuthContext, id domain.ID) error {
	f.lastAuth, f.lastID = auth, id
	return f.err
}

// fakeCalendarService implements domain.CalendarService for handler tests.
type fakeCalendarService struct {
	ics  string
	link string
	err  error

	lastKind domain.ItemKind
	lastID   domain.ID
}

func (f *fakeCalendarService) ICS(ctx context.Context, kind domain.ItemKind, id domain.ID) (string, error) {
	f.lastKind, f.lastID = kind, id
	return f.ics, f.err
}

func (f *fakeCalendarService) GoogleLink(ctx context.Context, kind domain.ItemKind, id domain.ID) (string, error) {
	f.lastKind, f.lastID = kind, id
	return f.link, f.err
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token string
	err   error

	lastUsername, lastPassword string
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, error) {
	f.lastUsername, f.lastPassword = username, password
	return f.token, f.err
}

func (f *fakeAuthService) Resolve(ctx context.Context, token string) (domain.AuthContext, error) {
	return domain.AuthContext{Token: token, IsAdmin: true}, f.err
}

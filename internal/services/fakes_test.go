package services

import (
	"context"
	"fmt"
	"time"

	"boardbevy/internal/domain"
	"boardbevy/internal/schedule"
	"boardbevy/internal/timepoint"
)

const testTimeout = 2 * time.Second

var admin = domain.AuthContext{Token: "tok", IsAdmin: true}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	events  []*domain.Event
	nextID  int
	err     error // returned by every call when set
	updated *domain.Event
	deleted domain.ID
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Event, len(f.events))
	copy(out, f.events)
	return out, nil
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	e.ID = domain.ID(fmt.Sprintf("%d", f.nextID))
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.events {
		if existing.ID == e.ID {
			f.events[i] = e
			f.updated = e
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeEventRepo) Delete(ctx context.Context, id domain.ID) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.events {
		if existing.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			f.deleted = id
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeGameRepo is an in-memory GameRepository for tests.
type fakeGameRepo struct {
	games       []*domain.Game
	nextID      int
	err         error
	booking     *domain.RoomBooking
	passwords   map[domain.ID]string
	verifyCalls int
}

func (f *fakeGameRepo) List(ctx context.Context) ([]*domain.Game, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Game, len(f.games))
	copy(out, f.games)
	return out, nil
}

func (f *fakeGameRepo) Create(ctx context.Context, g *domain.Game) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	g.ID = domain.ID(fmt.Sprintf("g%d", f.nextID))
	stored := *g
	f.games = append(f.games, &stored)
	return nil
}

func (f *fakeGameRepo) CreateWithRoom(ctx context.Context, g *domain.Game, b *domain.RoomBooking) error {
	f.booking = b
	return f.Create(ctx, g)
}

func (f *fakeGameRepo) Update(ctx context.Context, g *domain.Game) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.games {
		if existing.ID == g.ID {
			stored := *g
			f.games[i] = &stored
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeGameRepo) Delete(ctx context.Context, id domain.ID) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.games {
		if existing.ID == id {
			f.games = append(f.games[:i], f.games[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeGameRepo) VerifyPassword(ctx context.Context, id domain.ID, password string) (bool, error) {
	f.verifyCalls++
	if f.err != nil {
		return false, f.err
	}
	return f.passwords[id] != "" && f.passwords[id] == password, nil
}

// fakeParticipantRepo records RSVPs.
type fakeParticipantRepo struct {
	added []*domain.Participant
	err   error
}

func (f *fakeParticipantRepo) Add(ctx context.Context, p *domain.Participant) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, p)
	return nil
}

// fakeCatalogueRepo is an in-memory CatalogueRepository for tests.
type fakeCatalogueRepo struct {
	entries []*domain.CatalogueEntry
	titles  []*domain.CatalogueTitle
	err     error
	created *domain.CatalogueEntry
	updated *domain.CatalogueEntry
	deleted domain.ID
}

func (f *fakeCatalogueRepo) List(ctx context.Context) ([]*domain.CatalogueEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.CatalogueEntry, 0, len(f.entries))
	for _, e := range f.entries {
		c := *e
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeCatalogueRepo) Titles(ctx context.Context) ([]*domain.CatalogueTitle, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.titles, nil
}

func (f *fakeCatalogueRepo) Create(ctx context.Context, e *domain.CatalogueEntry) error {
	if f.err != nil {
		return f.err
	}
	e.ID = "new"
	f.created = e
	return nil
}

func (f *fakeCatalogueRepo) Update(ctx context.Context, e *domain.CatalogueEntry) error {
	if f.err != nil {
		return f.err
	}
	f.updated = e
	return nil
}

func (f *fakeCatalogueRepo) Delete(ctx context.Context, id domain.ID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = id
	return nil
}

// fakeLookup is a canned BoardGameLookup.
type fakeLookup struct {
	results []*domain.LookupResult
	entry   *domain.CatalogueEntry
	err     error
}

func (f *fakeLookup) Search(ctx context.Context, query string) ([]*domain.LookupResult, error) {
	return f.results, f.err
}

func (f *fakeLookup) Details(ctx context.Context, id string) (*domain.CatalogueEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entry, nil
}

// weeklyExpander repeats recurring events every 7 days without rrule.
type weeklyExpander struct{}

func (weeklyExpander) Weekly(start, end time.Time, recurring bool, from, until time.Time) ([]domain.Window, error) {
	var out []domain.Window
	for s := start; !s.After(until); s = s.AddDate(0, 0, 7) {
		e := s.Add(end.Sub(start))
		if !e.Before(from) {
			out = append(out, domain.Window{Start: s, End: e})
		}
		if !recurring {
			break
		}
	}
	return out, nil
}

func literalCombiner() *timepoint.Combiner {
	return timepoint.NewCombiner(timepoint.Literal, nil)
}

func openingHours() *schedule.Policy {
	p, err := schedule.New(time.UTC, schedule.DefaultOpeningHours...)
	if err != nil {
		panic(err)
	}
	return p
}

package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"boardbevy/internal/domain"
	"boardbevy/internal/match"
	"boardbevy/internal/schedule"
	"boardbevy/internal/timepoint"
)

// DefaultRoomBookingThreshold is the party size that needs the back room.
const DefaultRoomBookingThreshold = 10

type gameService struct {
	gameRepo        domain.GameRepository
	participantRepo domain.ParticipantRepository
	combiner        *timepoint.Combiner
	hours           *schedule.Policy
	roomThreshold   int
	displayLoc      *time.Location
	contextTimeout  time.Duration
}

func NewGameService(gameRepo domain.GameRepository,
	participantRepo domain.ParticipantRepository,
	combiner *timepoint.Combiner,
	hours *schedule.Policy,
	roomThreshold int,
	displayLoc *time.Location,
	timeout time.Duration,
) domain.GameService {
	if roomThreshold <= 0 {
		roomThreshold = DefaultRoomBookingThreshold
	}
	if displayLoc == nil {
		displayLoc = time.UTC
	}
	return &gameService{
		gameRepo:        gameRepo,
		participantRepo: participantRepo,
		combiner:        combiner,
		hours:           hours,
		roomThreshold:   roomThreshold,
		displayLoc:      displayLoc,
		contextTimeout:  timeout,
	}
}

func (s *gameService) ListGames(ctx context.Context, query, sortBy string) ([]*domain.GameView, error) {
	sortBy = strings.ToLower(strings.TrimSpace(sortBy))
	if sortBy == "" {
		sortBy = domain.SortByStart
	}
	if sortBy != domain.SortByStart && sortBy != domain.SortByTitle {
		return nil, invalid("sort must be %q or %q", domain.SortByTitle, domain.SortByStart)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	views := make([]*domain.GameView, 0, len(games))
	for _, g := range games {
		if !match.TitleContains(g.Title, query) {
			continue
		}
		public := *g
		public.Password = ""
		d := display(g.StartTime, g.EndTime, s.displayLoc)
		views = append(views, &domain.GameView{
			Game:        &public,
			DateDisplay: d.Date,
			TimeDisplay: d.Time,
			Attendees:   g.Participants.WithOrganizer(g.Organizer),
			Form:        formFields(s.combiner, g.StartTime, g.EndTime),
		})
	}

	if sortBy == domain.SortByTitle {
		sort.SliceStable(views, func(i, j int) bool {
			return strings.ToLower(views[i].Title) < strings.ToLower(views[j].Title)
		})
	} else {
		sort.SliceStable(views, func(i, j int) bool {
			return startsBefore(views[i].StartTime, views[j].StartTime)
		})
	}
	return views, nil
}

func (s *gameService) SlotsForDate(date string) ([]string, error) {
	slots, err := s.hours.Slots(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	labels := make([]string, 0, len(slots))
	for _, t := range slots {
		labels = append(labels, schedule.Label(t))
	}
	return labels, nil
}

func (s *gameService) CreateGame(ctx context.Context, in *domain.GameInput) (*domain.Game, error) {
	game, players, err := s.fromInput(in)
	if err != nil {
		return nil, err
	}

	var booking *domain.RoomBooking
	if players >= s.roomThreshold {
		if booking, err = s.roomBooking(in); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if booking != nil {
		err = s.gameRepo.CreateWithRoom(ctx, game, booking)
	} else {
		err = s.gameRepo.Create(ctx, game)
	}
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	game.Password = ""
	return game, nil
}

func (s *gameService) UpdateGame(ctx context.Context, grant domain.EditGrant, id domain.ID, in *domain.GameInput) (*domain.Game, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	game, _, err := s.fromInput(in)
	if err != nil {
		return nil, err
	}
	game.ID = id

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.authorize(ctx, grant, id); err != nil {
		return nil, err
	}
	if err := s.gameRepo.Update(ctx, game); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update game: %w", err)
	}
	game.Password = ""
	return game, nil
}

func (s *gameService) DeleteGame(ctx context.Context, grant domain.EditGrant, id domain.ID) error {
	if err := requireID(id); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.authorize(ctx, grant, id); err != nil {
		return err
	}
	if err := s.gameRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

func (s *gameService) RSVP(ctx context.Context, id domain.ID, participant string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return addParticipant(ctx, s.participantRepo, domain.KindGame, id, participant)
}

// authorize lets admins through and otherwise asks the backend to check the
// game's password.
func (s *gameService) authorize(ctx context.Context, grant domain.EditGrant, id domain.ID) error {
	if grant.Auth.IsAdmin {
		return nil
	}
	if grant.Password == "" {
		return fmt.Errorf("game password or admin session required: %w", domain.ErrForbidden)
	}
	ok, err := s.gameRepo.VerifyPassword(ctx, id, grant.Password)
	if err != nil {
		return fmt.Errorf("verify game password: %w", err)
	}
	if !ok {
		return fmt.Errorf("wrong game password: %w", domain.ErrForbidden)
	}
	return nil
}

// fromInput validates the game form against the opening hours and returns
// the record with its parsed player count.
func (s *gameService) fromInput(in *domain.GameInput) (*domain.Game, int, error) {
	if in == nil {
		return nil, 0, invalid("game is required")
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, 0, invalid("title is required")
	}
	organizer := strings.TrimSpace(in.Organizer)
	if organizer == "" {
		return nil, 0, invalid("organizer is required")
	}
	players, ok := match.Int(in.Players)
	if !ok || players < 1 {
		return nil, 0, invalid("players must be a positive number")
	}

	date := strings.TrimSpace(in.Date)
	startClock, err := s.slot(date, in.StartTime, "start")
	if err != nil {
		return nil, 0, err
	}
	endClock, err := s.slot(date, in.EndTime, "end")
	if err != nil {
		return nil, 0, err
	}
	start, end, err := span(s.combiner, date, startClock, date, endClock)
	if err != nil {
		return nil, 0, err
	}
	if start == end {
		return nil, 0, invalid("end time must be after the start time")
	}

	return &domain.Game{
		Title:       title,
		Organizer:   organizer,
		StartTime:   start,
		EndTime:     end,
		Players:     domain.Text(strings.TrimSpace(in.Players)),
		Description: strings.TrimSpace(in.Description),
		Password:    in.Password,
		Catalogue:   domain.ID(strings.TrimSpace(in.Catalogue)),
	}, players, nil
}

// slot normalizes a picker value and checks it against the opening hours.
func (s *gameService) slot(date, value, field string) (string, error) {
	clock, err := schedule.ParseLabel(value)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrValidation, field, err)
	}
	t, err := time.ParseInLocation(timepoint.DateLayout+" "+timepoint.ClockLayout, date+" "+clock, s.hours.Location())
	if err != nil {
		return "", invalid("invalid date %q", date)
	}
	if !s.hours.OpenOn(t) {
		return "", invalid("no open-table games on %s", t.Weekday())
	}
	if !s.hours.Allowed(t) {
		return "", invalid("%s time %s is outside opening hours", field, schedule.Label(t))
	}
	return clock, nil
}

func (s *gameService) roomBooking(in *domain.GameInput) (*domain.RoomBooking, error) {
	if in.Booking == nil {
		return nil, invalid("parties of %d or more players must book a room", s.roomThreshold)
	}
	b := *in.Booking
	b.Room = strings.ToLower(strings.TrimSpace(b.Room))
	b.Email = strings.TrimSpace(b.Email)
	b.Name = strings.TrimSpace(b.Name)
	if b.Room != domain.RoomHalf && b.Room != domain.RoomFull {
		return nil, invalid("room must be %q or %q", domain.RoomHalf, domain.RoomFull)
	}
	if b.Email == "" {
		return nil, invalid("booking email is required")
	}
	if b.Name == "" {
		b.Name = strings.TrimSpace(in.Organizer)
	}
	return &b, nil
}

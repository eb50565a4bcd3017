package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"boardbevy/internal/domain"
	"boardbevy/internal/timepoint"
)

const (
	defaultUpcomingWeeks = 4
	maxUpcomingWeeks     = 52
)

type eventService struct {
	eventRepo       domain.EventRepository
	participantRepo domain.ParticipantRepository
	expander        domain.RecurrenceExpander
	combiner        *timepoint.Combiner
	displayLoc      *time.Location
	contextTimeout  time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	participantRepo domain.ParticipantRepository,
	expander domain.RecurrenceExpander,
	combiner *timepoint.Combiner,
	displayLoc *time.Location,
	timeout time.Duration,
) domain.EventService {
	if displayLoc == nil {
		displayLoc = time.UTC
	}
	return &eventService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		expander:        expander,
		combiner:        combiner,
		displayLoc:      displayLoc,
		contextTimeout:  timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return startsBefore(events[i].StartTime, events[j].StartTime)
	})

	views := make([]*domain.EventView, 0, len(events))
	for _, e := range events {
		d := display(e.StartTime, e.EndTime, s.displayLoc)
		views = append(views, &domain.EventView{
			Event:       e,
			DateDisplay: d.Date,
			TimeDisplay: d.Time,
			Form:        formFields(s.combiner, e.StartTime, e.EndTime),
		})
	}
	return views, nil
}

func (s *eventService) UpcomingOccurrences(ctx context.Context, from time.Time, weeks int) ([]*domain.Occurrence, error) {
	if weeks == 0 {
		weeks = defaultUpcomingWeeks
	}
	if weeks < 0 || weeks > maxUpcomingWeeks {
		return nil, invalid("weeks must be between 1 and %d", maxUpcomingWeeks)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	until := from.AddDate(0, 0, 7*weeks)
	var out []*domain.Occurrence
	for _, e := range events {
		start, end, err := timepoint.ParseRange(e.StartTime, e.EndTime)
		if err != nil {
			continue
		}
		windows, err := s.expander.Weekly(start, end, e.Recurring, from, until)
		if err != nil {
			return nil, fmt.Errorf("expand event %s: %w", e.ID, err)
		}
		for _, w := range windows {
			d := timepoint.FormatForDisplay(w.Start, w.End, s.displayLoc)
			out = append(out, &domain.Occurrence{
				EventID:     e.ID,
				Title:       e.Title,
				StartTime:   timepoint.Format(w.Start),
				EndTime:     timepoint.Format(w.End),
				DateDisplay: d.Date,
				TimeDisplay: d.Time,
				Recurring:   e.Recurring,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (s *eventService) CreateEvent(ctx context.Context, auth domain.AuthContext, in *domain.EventInput) (*domain.Event, error) {
	if err := requireAdmin(auth); err != nil {
		return nil, err
	}
	event, err := s.fromInput(in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, auth domain.AuthContext, id domain.ID, in *domain.EventInput) (*domain.Event, error) {
	if err := requireAdmin(auth); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}
	event, err := s.fromInput(in)
	if err != nil {
		return nil, err
	}
	event.ID = id

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, auth domain.AuthContext, id domain.ID) error {
	if err := requireAdmin(auth); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) RSVP(ctx context.Context, id domain.ID, participant string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return addParticipant(ctx, s.participantRepo, domain.KindEvent, id, participant)
}

// fromInput builds the backend record from the event form. An empty end date
// means the event ends on its start date.
func (s *eventService) fromInput(in *domain.EventInput) (*domain.Event, error) {
	if in == nil {
		return nil, invalid("event is required")
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalid("title is required")
	}
	endDate := in.EndDate
	if strings.TrimSpace(endDate) == "" {
		endDate = in.StartDate
	}
	start, end, err := span(s.combiner, in.StartDate, in.StartTime, endDate, in.EndTime)
	if err != nil {
		return nil, err
	}
	return &domain.Event{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		StartTime:   start,
		EndTime:     end,
		Price:       domain.Text(strings.TrimSpace(in.Price)),
		Image:       strings.TrimSpace(in.Image),
		Game:        domain.Text(strings.TrimSpace(in.Game)),
		Recurring:   in.Recurring,
	}, nil
}

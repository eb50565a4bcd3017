package services

import (
	"context"
	"fmt"
	"time"

	"boardbevy/internal/domain"
	"boardbevy/internal/timepoint"
)

type calendarService struct {
	eventRepo      domain.EventRepository
	gameRepo       domain.GameRepository
	exporter       domain.CalendarExporter
	contextTimeout time.Duration
}

func NewCalendarService(eventRepo domain.EventRepository, gameRepo domain.GameRepository, exporter domain.CalendarExporter, timeout time.Duration) domain.CalendarService {
	return &calendarService{
		eventRepo:      eventRepo,
		gameRepo:       gameRepo,
		exporter:       exporter,
		contextTimeout: timeout,
	}
}

func (s *calendarService) ICS(ctx context.Context, kind domain.ItemKind, id domain.ID) (string, error) {
	item, err := s.item(ctx, kind, id)
	if err != nil {
		return "", err
	}
	return s.exporter.ICS(item)
}

func (s *calendarService) GoogleLink(ctx context.Context, kind domain.ItemKind, id domain.ID) (string, error) {
	item, err := s.item(ctx, kind, id)
	if err != nil {
		return "", err
	}
	return s.exporter.GoogleLink(item), nil
}

// item finds the event or game in the backend's list. The backend has no
// single-item endpoint.
func (s *calendarService) item(ctx context.Context, kind domain.ItemKind, id domain.ID) (*domain.CalendarItem, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var item *domain.CalendarItem
	var startToken, endToken string
	switch kind {
	case domain.KindEvent:
		events, err := s.eventRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		for _, e := range events {
			if e.ID == id {
				item = &domain.CalendarItem{Kind: kind, ID: id, Title: e.Title, Description: e.Description, Recurring: e.Recurring}
				startToken, endToken = e.StartTime, e.EndTime
				break
			}
		}
	case domain.KindGame:
		games, err := s.gameRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list games: %w", err)
		}
		for _, g := range games {
			if g.ID == id {
				item = &domain.CalendarItem{Kind: kind, ID: id, Title: g.Title, Description: g.Description}
				startToken, endToken = g.StartTime, g.EndTime
				break
			}
		}
	default:
		return nil, invalid("unknown item kind %q", kind)
	}
	if item == nil {
		return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}

	start, end, err := timepoint.ParseRange(startToken, endToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s has unusable times: %w", domain.ErrUpstream, kind, id, err)
	}
	item.Start, item.End = start, end
	return item, nil
}

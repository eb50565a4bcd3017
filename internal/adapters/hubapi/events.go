package hubapi

import (
	"context"
	"net/http"

	"boardbevy/internal/domain"
)

type eventRepository struct {
	c *Client
}

// NewEventRepository returns the backend's /events collection.
func NewEventRepository(c *Client) domain.EventRepository {
	return &eventRepository{c: c}
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	var events []*domain.Event
	if err := r.c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	var created idBody
	if err := r.c.do(ctx, http.MethodPost, "/events", event, &created); err != nil {
		return err
	}
	if created.ID != "" {
		event.ID = created.ID
	}
	return nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	return r.c.do(ctx, http.MethodPut, itemPath("events", event.ID), event, nil)
}

func (r *eventRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.c.do(ctx, http.MethodDelete, "/events", idBody{ID: id}, nil)
}

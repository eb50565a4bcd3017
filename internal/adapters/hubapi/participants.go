package hubapi

import (
	"context"
	"net/http"

	"boardbevy/internal/domain"
)

type participantRepository struct {
	c *Client
}

// NewParticipantRepository returns the backend's RSVP endpoint.
func NewParticipantRepository(c *Client) domain.ParticipantRepository {
	return &participantRepository{c: c}
}

func (r *participantRepository) Add(ctx context.Context, p *domain.Participant) error {
	return r.c.do(ctx, http.MethodPost, "/participants/add", p, nil)
}

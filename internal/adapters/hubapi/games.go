package hubapi

import (
	"context"
	"net/http"

	"boardbevy/internal/domain"
)

type gameRepository struct {
	c *Client
}

// NewGameRepository returns the backend's /games collection.
func NewGameRepository(c *Client) domain.GameRepository {
	return &gameRepository{c: c}
}

func (r *gameRepository) List(ctx context.Context) ([]*domain.Game, error) {
	var games []*domain.Game
	if err := r.c.do(ctx, http.MethodGet, "/games", nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepository) Create(ctx context.Context, game *domain.Game) error {
	return r.create(ctx, "/games", game, game)
}

type gameWithRoom struct {
	*domain.Game
	*domain.RoomBooking
}

// CreateWithRoom posts a large game together with its room request to
// /games_with_room.
func (r *gameRepository) CreateWithRoom(ctx context.Context, game *domain.Game, booking *domain.RoomBooking) error {
	return r.create(ctx, "/games_with_room", gameWithRoom{Game: game, RoomBooking: booking}, game)
}

func (r *gameRepository) create(ctx context.Context, path string, body any, game *domain.Game) error {
	var created idBody
	if err := r.c.do(ctx, http.MethodPost, path, body, &created); err != nil {
		return err
	}
	if created.ID != "" {
		game.ID = created.ID
	}
	return nil
}

func (r *gameRepository) Update(ctx context.Context, game *domain.Game) error {
	return r.c.do(ctx, http.MethodPut, itemPath("games", game.ID), game, nil)
}

func (r *gameRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.c.do(ctx, http.MethodDelete, "/games", idBody{ID: id}, nil)
}

type verifyPasswordRequest struct {
	GameID   domain.ID `json:"gameId"`
	Password string    `json:"password"`
}

type verifyPasswordResponse struct {
	IsValid bool `json:"isValid"`
}

func (r *gameRepository) VerifyPassword(ctx context.Context, id domain.ID, password string) (bool, error) {
	var resp verifyPasswordResponse
	if err := r.c.do(ctx, http.MethodPost, "/games/verify-password", verifyPasswordRequest{GameID: id, Password: password}, &resp); err != nil {
		return false, err
	}
	return resp.IsValid, nil
}

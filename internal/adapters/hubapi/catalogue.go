package hubapi

import (
	"context"
	"net/http"

	"boardbevy/internal/domain"
)

type catalogueRepository struct {
	c *Client
}

// NewCatalogueRepository returns the backend's /catalogue collection.
func NewCatalogueRepository(c *Client) domain.CatalogueRepository {
	return &catalogueRepository{c: c}
}

func (r *catalogueRepository) List(ctx context.Context) ([]*domain.CatalogueEntry, error) {
	var entries []*domain.CatalogueEntry
	if err := r.c.do(ctx, http.MethodGet, "/catalogue", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *catalogueRepository) Titles(ctx context.Context) ([]*domain.CatalogueTitle, error) {
	var titles []*domain.CatalogueTitle
	if err := r.c.do(ctx, http.MethodGet, "/catalogue/titles", nil, &titles); err != nil {
		return nil, err
	}
	return titles, nil
}

func (r *catalogueRepository) Create(ctx context.Context, entry *domain.CatalogueEntry) error {
	var created idBody
	if err := r.c.do(ctx, http.MethodPost, "/catalogue", entry, &created); err != nil {
		return err
	}
	if created.ID != "" {
		entry.ID = created.ID
	}
	return nil
}

func (r *catalogueRepository) Update(ctx context.Context, entry *domain.CatalogueEntry) error {
	return r.c.do(ctx, http.MethodPut, itemPath("catalogue", entry.ID), entry, nil)
}

func (r *catalogueRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.c.do(ctx, http.MethodDelete, "/catalogue", idBody{ID: id}, nil)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"boardbevy/internal/domain"
	"boardbevy/internal/match"
)

const (
	defaultSuggestLimit = 10
	maxPageSize         = 100
)

type catalogueService struct {
	catalogueRepo  domain.CatalogueRepository
	lookup         domain.BoardGameLookup
	contextTimeout time.Duration
}

func NewCatalogueService(catalogueRepo domain.CatalogueRepository, lookup domain.BoardGameLookup, timeout time.Duration) domain.CatalogueService {
	return &catalogueService{
		catalogueRepo:  catalogueRepo,
		lookup:         lookup,
		contextTimeout: timeout,
	}
}

// Browse filters the whole catalogue and returns the requested page together
// with the number of matching entries.
func (s *catalogueService) Browse(ctx context.Context, query domain.CatalogueQuery, page domain.PaginationParams) ([]*domain.CatalogueEntry, int, error) {
	if page.PageSize > maxPageSize {
		return nil, 0, invalid("page_size must be at most %d", maxPageSize)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entries, err := s.catalogueRepo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list catalogue: %w", err)
	}

	filter := match.CatalogueFilter{
		Title:      query.Title,
		Players:    query.Players,
		Difficulty: query.Difficulty,
		Duration:   query.Duration,
	}
	matched := match.Apply(filter, entries, func(e *domain.CatalogueEntry) (string, string, string, string) {
		return e.Title, string(e.Players), string(e.Difficulty), string(e.Duration)
	})

	start, end := page.Window(len(matched))
	out := matched[start:end]
	for _, e := range out {
		if e.Image == "" {
			e.Image = domain.DefaultCatalogueImage
		}
	}
	return out, len(matched), nil
}

func (s *catalogueService) Suggest(ctx context.Context, query string, limit int) ([]*domain.CatalogueTitle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*domain.CatalogueTitle{}, nil
	}
	if limit <= 0 {
		limit = defaultSuggestLimit
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	titles, err := s.catalogueRepo.Titles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalogue titles: %w", err)
	}
	out := make([]*domain.CatalogueTitle, 0, limit)
	for _, t := range titles {
		if len(out) == limit {
			break
		}
		if match.TitleContains(t.Title, query) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *catalogueService) Lookup(ctx context.Context, query string) ([]*domain.LookupResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	results, err := s.lookup.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search boardgamegeek: %w", err)
	}
	return results, nil
}

func (s *catalogueService) Details(ctx context.Context, bggID string) (*domain.CatalogueEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entry, err := s.lookup.Details(ctx, bggID)
	if err != nil {
		return nil, fmt.Errorf("boardgamegeek details: %w", err)
	}
	if entry.Image == "" {
		entry.Image = domain.DefaultCatalogueImage
	}
	return entry, nil
}

func (s *catalogueService) Create(ctx context.Context, auth domain.AuthContext, entry *domain.CatalogueEntry) error {
	if err := requireAdmin(auth); err != nil {
		return err
	}
	if err := normalizeEntry(entry); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.catalogueRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("create catalogue entry: %w", err)
	}
	return nil
}

func (s *catalogueService) Update(ctx context.Context, auth domain.AuthContext, id domain.ID, entry *domain.CatalogueEntry) (*domain.CatalogueEntry, error) {
	if err := requireAdmin(auth); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := normalizeEntry(entry); err != nil {
		return nil, err
	}
	entry.ID = id

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.catalogueRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update catalogue entry: %w", err)
	}
	return entry, nil
}

func (s *catalogueService) Delete(ctx context.Context, auth domain.AuthContext, id domain.ID) error {
	if err := requireAdmin(auth); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.catalogueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete catalogue entry: %w", err)
	}
	return nil
}

func normalizeEntry(entry *domain.CatalogueEntry) error {
	if entry == nil {
		return invalid("catalogue entry is required")
	}
	entry.Title = strings.TrimSpace(entry.Title)
	if entry.Title == "" {
		return invalid("title is required")
	}
	if entry.Image == "" {
		entry.Image = domain.DefaultCatalogueImage
	}
	if d := strings.TrimSpace(string(entry.Difficulty)); d != "" {
		if _, ok := match.Float(d); !ok {
			return invalid("difficulty must be a number")
		}
	}
	return nil
}

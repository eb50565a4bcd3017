// Package bgg looks up board games on BoardGameGeek's XML API (v1) to
// pre-fill catalogue entries.
package bgg

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"boardbevy/internal/domain"
)

// DefaultBaseURL is the public XML API root.
const DefaultBaseURL = "https://boardgamegeek.com/xmlapi"

type client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a BoardGameLookup against baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, c *http.Client) domain.BoardGameLookup {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if c == nil {
		c = http.DefaultClient
	}
	return &client{baseURL: strings.TrimRight(baseURL, "/"), client: c}
}

type searchResponse struct {
	Games []struct {
		ObjectID string `xml:"objectid,attr"`
		Names    []name `xml:"name"`
	} `xml:"boardgame"`
}

type name struct {
	Primary string `xml:"primary,attr"`
	Value   string `xml:",chardata"`
}

type detailsResponse struct {
	Games []boardGame `xml:"boardgame"`
}

type boardGame struct {
	ObjectID      string   `xml:"objectid,attr"`
	Names         []name   `xml:"name"`
	Publishers    []string `xml:"boardgamepublisher"`
	Description   *string  `xml:"description"`
	YearPublished *string  `xml:"yearpublished"`
	Thumbnail     *string  `xml:"thumbnail"`
	MinPlayers    *string  `xml:"minplayers"`
	MaxPlayers    *string  `xml:"maxplayers"`
	MinPlaytime   *string  `xml:"minplaytime"`
	MaxPlaytime   *string  `xml:"maxplaytime"`
	AverageWeight *string  `xml:"statistics>ratings>averageweight"`
}

func (c *client) Search(ctx context.Context, query string) ([]*domain.LookupResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrValidation)
	}
	var resp searchResponse
	if err := c.get(ctx, "/search?search="+url.QueryEscape(query), &resp); err != nil {
		return nil, err
	}
	results := make([]*domain.LookupResult, 0, len(resp.Games))
	for _, g := range resp.Games {
		if g.ObjectID == "" {
			continue
		}
		results = append(results, &domain.LookupResult{ID: g.ObjectID, Name: title(g.Names)})
	}
	return results, nil
}

func (c *client) Details(ctx context.Context, id string) (*domain.CatalogueEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: boardgamegeek id is required", domain.ErrValidation)
	}
	var resp detailsResponse
	if err := c.get(ctx, "/boardgame/"+url.PathEscape(id)+"?stats=1", &resp); err != nil {
		return nil, err
	}
	if len(resp.Games) == 0 || len(resp.Games[0].Names) == 0 {
		return nil, fmt.Errorf("boardgamegeek game %s: %w", id, domain.ErrNotFound)
	}
	return toEntry(&resp.Games[0]), nil
}

func (c *client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to fetch from boardgamegeek: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: boardgamegeek api returned status: %d", domain.ErrUpstream, resp.StatusCode)
	}
	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode boardgamegeek response: %v", domain.ErrUpstream, err)
	}
	return nil
}

func toEntry(g *boardGame) *domain.CatalogueEntry {
	entry := &domain.CatalogueEntry{
		Title:       title(g.Names),
		Description: text(g.Description),
		ReleaseYear: domain.Text(text(g.YearPublished)),
		Image:       text(g.Thumbnail),
		Difficulty:  domain.Text(text(g.AverageWeight)),
	}
	if len(g.Publishers) > 0 {
		entry.Publisher = strings.TrimSpace(g.Publishers[0])
	}
	if g.MinPlayers != nil && g.MaxPlayers != nil {
		entry.Players = domain.Text(span(text(g.MinPlayers), text(g.MaxPlayers)))
	}
	entry.Duration = "Unknown"
	if g.MinPlaytime != nil && g.MaxPlaytime != nil {
		entry.Duration = domain.Text(span(playtime(text(g.MinPlaytime)), playtime(text(g.MaxPlaytime))))
	}
	return entry
}

// title prefers the primary name and falls back to the first one listed.
func title(names []name) string {
	for _, n := range names {
		if n.Primary == "true" {
			return strings.TrimSpace(n.Value)
		}
	}
	if len(names) > 0 {
		return strings.TrimSpace(names[0].Value)
	}
	return ""
}

func span(lo, hi string) string {
	if lo == hi {
		return lo
	}
	return lo + "-" + hi
}

func playtime(s string) string {
	if s == "0" || s == "" {
		return "Unknown"
	}
	return s
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

package domain

import "context"

// DefaultCatalogueImage is used when a catalogue entry is created without an image.
const DefaultCatalogueImage = "https://picsum.photos/200/300"

// CatalogueEntry is a board game in the shop's library.
// Players and Duration are range strings ("2-6", "60-90" or a bare number);
// Difficulty is the BoardGameGeek weight.
// swagger:model CatalogueEntry
type CatalogueEntry struct {
	ID          ID     `json:"id,omitempty"`
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	ReleaseYear Text   `json:"releaseYear"`
	Image       string `json:"image"`
	Players     Text   `json:"players"`
	Difficulty  Text   `json:"difficulty"`
	Duration    Text   `json:"duration"`
	Description string `json:"description"`
}

// CatalogueTitle is the lightweight row used for autocomplete.
// swagger:model CatalogueTitle
type CatalogueTitle struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
}

// CatalogueQuery holds the catalogue tab's filter fields. Empty fields match everything.
type CatalogueQuery struct {
	Title      string
	Players    string
	Difficulty string
	Duration   string
}

// LookupResult is a BoardGameGeek search hit.
// swagger:model LookupResult
type LookupResult struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CatalogueRepository is the hub backend's catalogue collection.
type CatalogueRepository interface {
	List(ctx context.Context) ([]*CatalogueEntry, error)
	Titles(ctx context.Context) ([]*CatalogueTitle, error)
	Create(ctx context.Context, entry *CatalogueEntry) error
	Update(ctx context.Context, entry *CatalogueEntry) error
	Delete(ctx context.Context, id ID) error
}

// BoardGameLookup searches an external board game database.
type BoardGameLookup interface {
	Search(ctx context.Context, query string) ([]*LookupResult, error)
	Details(ctx context.Context, id string) (*CatalogueEntry, error)
}

// CatalogueService defines the board games tab and the admin catalogue forms.
type CatalogueService interface {
	Browse(ctx context.Context, query CatalogueQuery, page PaginationParams) ([]*CatalogueEntry, int, error)
	Suggest(ctx context.Context, query string, limit int) ([]*CatalogueTitle, error)
	Lookup(ctx context.Context, query string) ([]*LookupResult, error)
	Details(ctx context.Context, bggID string) (*CatalogueEntry, error)
	Create(ctx context.Context, auth AuthContext, entry *CatalogueEntry) error
	Update(ctx context.Context, auth AuthContext, id ID, entry *CatalogueEntry) (*CatalogueEntry, error)
	Delete(ctx context.Context, auth AuthContext, id ID) error
}

package match

// CatalogueFilter is the board games tab's filter row. An empty field does
// not constrain the result.
type CatalogueFilter struct {
	Title      string
	Players    string
	Difficulty string
	Duration   string
}

// Empty reports whether no field is set.
func (f CatalogueFilter) Empty() bool {
	return f == CatalogueFilter{}
}

// Matches applies every set field to one catalogue row.
func (f CatalogueFilter) Matches(title, players, difficulty, duration string) bool {
	if !TitleContains(title, f.Title) {
		return false
	}
	if f.Players != "" && !Range(players, f.Players) {
		return false
	}
	if f.Difficulty != "" && !Weight(difficulty, f.Difficulty) {
		return false
	}
	if f.Duration != "" && !Range(duration, f.Duration) {
		return false
	}
	return true
}

// Apply keeps the items whose fields, as returned by fields, match f.
// Order is preserved.
func Apply[T any](f CatalogueFilter, items []T, fields func(T) (title, players, difficulty, duration string)) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if f.Matches(fields(it)) {
			out = append(out, it)
		}
	}
	return out
}

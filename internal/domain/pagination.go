package domain

import "math"

// PaginationParams holds offset-based pagination parameters for list views.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize, saturating at math.MaxInt.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// Window returns the [start, end) bounds of the current page within a list of
// total items, clamped to the list.
func (p PaginationParams) Window(total int) (start, end int) {
	start = p.Offset()
	if start < 0 || start > total {
		start = total
	}
	end = total
	if p.PageSize > 0 && total-start > p.PageSize {
		end = start + p.PageSize
	}
	return start, end
}

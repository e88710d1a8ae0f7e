package domain

// PaginationParams carries page/limit values from the HTTP layer down to the
// repo layer. Page is 1-indexed; Limit is capped by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items per page.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional query params.
// Nil or out-of-range values fall back to page=1, limit=20, and the limit is
// capped at 100 to keep list queries bounded.
func NewPaginationParams(page, limit *int) PaginationParams {
	params := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		params.Page = *page
	}
	if limit != nil && *limit >= 1 {
		params.Limit = *limit
		if params.Limit > 100 {
			params.Limit = 100
		}
	}
	return params
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

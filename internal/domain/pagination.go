package domain

// PageInfo describes the position of a page within a larger collection.
// HasNextPage is approximated as "the requested page came back full", which
// over-reports by one page when the total is an exact multiple of the page
// size. Cheap and good enough for portal listings.
type PageInfo struct {
	HasNextPage bool   `json:"has_next_page"`
	EndCursor   string `json:"end_cursor,omitempty"`
}

// Connection is a page of records plus its PageInfo.
type Connection[T any] struct {
	Nodes    []T      `json:"nodes"`
	PageInfo PageInfo `json:"page_info"`
}

// NewConnection wraps nodes in a Connection, deriving PageInfo from the
// requested page size and the cursor of the last node.
func NewConnection[T any](nodes []T, perPage int, endCursor string) Connection[T] {
	if nodes == nil {
		nodes = []T{}
	}
	return Connection[T]{
		Nodes: nodes,
		PageInfo: PageInfo{
			HasNextPage: perPage > 0 && len(nodes) >= perPage,
			EndCursor:   endCursor,
		},
	}
}

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

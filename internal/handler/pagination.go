package handler

import "gamecatalog/backend/internal/query"

// PaginationMeta defines the structure for pagination metadata.
type PaginationMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// PaginatedResponse defines the structure for a paginated list of any type.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResponse wraps data with the metadata of the page it came from.
func NewPaginatedResponse[T, U any](data []T, p query.Page[U]) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			TotalItems:  int64(p.TotalItems),
			TotalPages:  p.TotalPages,
			CurrentPage: p.Page,
			PageSize:    p.Limit,
		},
	}
}

package query

// Page limits.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Page is a window over an already filtered view.
type Page[T any] struct {
	Items      []T
	TotalItems int
	TotalPages int
	Page       int
	Limit      int
}

// Paginate returns the 1-based page of items. Out-of-range page and limit
// values are clamped to the defaults.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit
	// Pages past the end are compared before multiplying so huge values
	// cannot overflow.
	start := total
	if page-1 < totalPages {
		start = (page - 1) * limit
	}
	end := start + limit
	if end > total {
		end = total
	}

	window := make([]T, end-start)
	copy(window, items[start:end])
	return Page[T]{
		Items:      window,
		TotalItems: total,
		TotalPages: totalPages,
		Page:       page,
		Limit:      limit,
	}
}

package pagination

// Pagination is one page of results plus its paging metadata. Total is the
// size of the whole filtered set, not of this page.
type Pagination[T any] struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	Items       []T   `json:"items"`
}

func New[T any](currentPage, perPage int, total int64, items []T) Pagination[T] {
	return Pagination[T]{
		CurrentPage: currentPage,
		PerPage:     perPage,
		Total:       total,
		Items:       items,
	}
}

// Map converts the items of a page while keeping its metadata.
func Map[T, R any](page Pagination[T], mapper func(T) R) Pagination[R] {
	items := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, mapper(item))
	}
	return New(page.CurrentPage, page.PerPage, page.Total, items)
}

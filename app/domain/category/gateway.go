package category

import (
	"context"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/pagination"
)

// SearchQuery carries the parameters of a paginated category search. Terms
// filters case-insensitively on name or description; blank terms means no
// filter.
type SearchQuery struct {
	Page      int
	PerPage   int
	Terms     string
	Sort      string
	Direction string
}

// Gateway is the persistence boundary the core depends on. FindByID returns
// (nil, nil) when the id is unknown; DeleteByID of an unknown id is a no-op.
type Gateway interface {
	Create(ctx context.Context, aCategory *Category) (*Category, error)
	Update(ctx context.Context, aCategory *Category) (*Category, error)
	DeleteByID(ctx context.Context, id CategoryID) error
	FindByID(ctx context.Context, id CategoryID) (*Category, error)
	FindAll(ctx context.Context, query SearchQuery) (pagination.Pagination[*Category], error)
}

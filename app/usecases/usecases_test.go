package usecases

import (
	"context"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/category"
	"github.com/Rakhulsr/go-admin-catalog/app/domain/pagination"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func str(s string) *string {
	return &s
}

// memoryGateway implements category.Gateway over a map, with error hooks so
// infrastructure faults can be forced per operation.
type memoryGateway struct {
	store map[category.CategoryID]*category.Category
	order []category.CategoryID

	createErr error
	updateErr error
	findErr   error

	createCalls int
	updateCalls int
}

func newMemoryGateway() *memoryGateway {
	return &memoryGateway{store: map[category.CategoryID]*category.Category{}}
}

func (g *memoryGateway) Create(_ context.Context, aCategory *category.Category) (*category.Category, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.createCalls++
	g.store[aCategory.ID()] = aCategory.Clone()
	g.order = append(g.order, aCategory.ID())
	return aCategory.Clone(), nil
}

func (g *memoryGateway) Update(_ context.Context, aCategory *category.Category) (*category.Category, error) {
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	g.updateCalls++
	g.store[aCategory.ID()] = aCategory.Clone()
	return aCategory.Clone(), nil
}

func (g *memoryGateway) DeleteByID(_ context.Context, id category.CategoryID) error {
	if _, ok := g.store[id]; !ok {
		return nil
	}
	delete(g.store, id)
	for i, stored := range g.order {
		if stored == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return nil
}

func (g *memoryGateway) FindByID(_ context.Context, id category.CategoryID) (*category.Category, error) {
	if g.findErr != nil {
		return nil, g.findErr
	}
	if aCategory, ok := g.store[id]; ok {
		return aCategory.Clone(), nil
	}
	return nil, nil
}

func (g *memoryGateway) FindAll(_ context.Context, query category.SearchQuery) (pagination.Pagination[*category.Category], error) {
	var filtered []*category.Category
	terms := strings.ToLower(strings.TrimSpace(query.Terms))
	for _, id := range g.order {
		aCategory := g.store[id]
		if terms == "" || matches(aCategory, terms) {
			filtered = append(filtered, aCategory.Clone())
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if strings.EqualFold(query.Direction, "desc") {
			return compare(filtered[j], filtered[i], query.Sort)
		}
		return compare(filtered[i], filtered[j], query.Sort)
	})

	total := int64(len(filtered))
	start := query.Page * query.PerPage
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + query.PerPage
	if end > len(filtered) {
		end = len(filtered)
	}

	return pagination.New(query.Page, query.PerPage, total, filtered[start:end]), nil
}

func matches(aCategory *category.Category, terms string) bool {
	if strings.Contains(strings.ToLower(aCategory.Name()), terms) {
		return true
	}
	if description := aCategory.Description(); description != nil {
		return strings.Contains(strings.ToLower(*description), terms)
	}
	return false
}

func compare(a, b *category.Category, field string) bool {
	switch field {
	case "createdAt":
		return a.CreatedAt().Before(b.CreatedAt())
	case "updatedAt":
		return a.UpdatedAt().Before(b.UpdatedAt())
	case "description":
		return derefOrEmpty(a.Description()) < derefOrEmpty(b.Description())
	default:
		return a.Name() < b.Name()
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func seedCategory(t *testing.T, gateway *memoryGateway, name string, description *string, active bool) *category.Category {
	t.Helper()
	aCategory := category.NewCategory(str(name), description, active)
	if _, err := gateway.Create(context.Background(), aCategory); err != nil {
		t.Fatalf("seeding category %s: %v", name, err)
	}
	return aCategory
}

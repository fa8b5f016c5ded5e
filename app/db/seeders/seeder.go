package seeders

import (
	"context"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/category"
	"github.com/Rakhulsr/go-admin-catalog/app/repositories"
	"gorm.io/gorm"
)

func str(s string) *string {
	return &s
}

// DBSeed loads a small demo catalog through the domain factory so seeded rows
// carry the same stamps a created category would.
func DBSeed(ctx context.Context, db *gorm.DB) error {
	gateway := repositories.NewCategoryRepository(db)

	seeds := []*category.Category{
		category.NewCategory(str("Filmes"), str("A categoria mais assistida"), true),
		category.NewCategory(str("Séries"), str("Séries de todos os gêneros"), true),
		category.NewCategory(str("Animes"), str("Animações japonesas"), true),
		category.NewCategory(str("Documentários"), nil, false),
	}

	for _, seed := range seeds {
		if _, err := gateway.Create(ctx, seed); err != nil {
			return err
		}
	}
	return nil
}

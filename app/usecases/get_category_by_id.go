package usecases

import (
	"context"
	"time"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/category"
	"github.com/Rakhulsr/go-admin-catalog/app/domain/exceptions"
	"github.com/sirupsen/logrus"
)

// CategoryOutput is the read-only projection returned by Get and List.
type CategoryOutput struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Active      bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

func CategoryOutputFrom(aCategory *category.Category) CategoryOutput {
	return CategoryOutput{
		ID:          aCategory.ID().String(),
		Name:        aCategory.Name(),
		Description: aCategory.Description(),
		Active:      aCategory.IsActive(),
		CreatedAt:   aCategory.CreatedAt(),
		UpdatedAt:   aCategory.UpdatedAt(),
		DeletedAt:   aCategory.DeletedAt(),
	}
}

type GetCategoryByIDUseCase struct {
	gateway category.Gateway
	log     *logrus.Logger
}

func NewGetCategoryByIDUseCase(gateway category.Gateway, logger *logrus.Logger) *GetCategoryByIDUseCase {
	return &GetCategoryByIDUseCase{gateway: gateway, log: logger}
}

func (uc *GetCategoryByIDUseCase) Execute(ctx context.Context, id string) (*CategoryOutput, error) {
	aCategory, err := uc.gateway.FindByID(ctx, category.CategoryIDFrom(id))
	if err != nil {
		uc.log.Errorf("Gateway failed to load category %s: %v", id, err)
		return nil, err
	}
	if aCategory == nil {
		uc.log.Warnf("Category %s not found", id)
		return nil, exceptions.NewNotFoundError("Category", id)
	}

	output := CategoryOutputFrom(aCategory)
	return &output, nil
}

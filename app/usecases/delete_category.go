package usecases

import (
	"context"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/category"
	"github.com/sirupsen/logrus"
)

type DeleteCategoryUseCase struct {
	gateway category.Gateway
	log     *logrus.Logger
}

func NewDeleteCategoryUseCase(gateway category.Gateway, logger *logrus.Logger) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{gateway: gateway, log: logger}
}

// Execute removes the category unconditionally. Deleting an unknown id is a
// successful no-op.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id string) error {
	if err := uc.gateway.DeleteByID(ctx, category.CategoryIDFrom(id)); err != nil {
		uc.log.Errorf("Gateway failed to delete category %s: %v", id, err)
		return err
	}
	uc.log.Infof("Category %s deleted", id)
	return nil
}

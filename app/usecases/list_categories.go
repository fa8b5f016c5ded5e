package usecases

import (
	"context"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/category"
	"github.com/Rakhulsr/go-admin-catalog/app/domain/pagination"
	"github.com/sirupsen/logrus"
)

type ListCategoriesUseCase struct {
	gateway category.Gateway
	log     *logrus.Logger
}

func NewListCategoriesUseCase(gateway category.Gateway, logger *logrus.Logger) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{gateway: gateway, log: logger}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, query category.SearchQuery) (pagination.Pagination[CategoryOutput], error) {
	page, err := uc.gateway.FindAll(ctx, query)
	if err != nil {
		uc.log.Errorf("Gateway failed to search categories: %v", err)
		return pagination.Pagination[CategoryOutput]{}, err
	}

	uc.log.Debugf("Listed %d of %d categories (page %d)", len(page.Items), page.Total, page.CurrentPage)
	return pagination.Map(page, CategoryOutputFrom), nil
}

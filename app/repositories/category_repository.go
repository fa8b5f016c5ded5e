package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/category"
	"github.com/Rakhulsr/go-admin-catalog/app/domain/pagination"
	"github.com/Rakhulsr/go-admin-catalog/app/models"
	"gorm.io/gorm"
)

// sortColumns whitelists the sortable query fields against their columns.
var sortColumns = map[string]string{
	"name":        "name",
	"description": "description",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.Gateway {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, aCategory *category.Category) (*category.Category, error) {
	entity := models.CategoryFromAggregate(aCategory)
	if err := r.db.WithContext(ctx).Create(&entity).Error; err != nil {
		return nil, err
	}
	return entity.ToAggregate(), nil
}

func (r *categoryRepository) Update(ctx context.Context, aCategory *category.Category) (*category.Category, error) {
	entity := models.CategoryFromAggregate(aCategory)
	if err := r.db.WithContext(ctx).Save(&entity).Error; err != nil {
		return nil, err
	}
	return entity.ToAggregate(), nil
}

func (r *categoryRepository) DeleteByID(ctx context.Context, id category.CategoryID) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id.String()).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id category.CategoryID) (*category.Category, error) {
	var entity models.Category
	err := r.db.WithContext(ctx).First(&entity, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entity.ToAggregate(), nil
}

// FindAll filters case-insensitively on name or description, sorts by the
// whitelisted column and pages with offset semantics. Total counts the
// filtered set before paging.
func (r *categoryRepository) FindAll(ctx context.Context, query category.SearchQuery) (pagination.Pagination[*category.Category], error) {
	var entities []models.Category
	var total int64

	scope := r.db.WithContext(ctx).Model(&models.Category{})
	if terms := strings.TrimSpace(query.Terms); terms != "" {
		like := "%" + strings.ToLower(terms) + "%"
		scope = scope.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if err := scope.Count(&total).Error; err != nil {
		return pagination.Pagination[*category.Category]{}, err
	}

	column, ok := sortColumns[query.Sort]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if strings.EqualFold(query.Direction, "desc") {
		direction = "DESC"
	}

	err := scope.
		Order(column + " " + direction).
		Limit(query.PerPage).
		Offset(query.Page * query.PerPage).
		Find(&entities).Error
	if err != nil {
		return pagination.Pagination[*category.Category]{}, err
	}

	items := make([]*category.Category, 0, len(entities))
	for _, entity := range entities {
		items = append(items, entity.ToAggregate())
	}

	return pagination.New(query.Page, query.PerPage, total, items), nil
}

package models

import (
	"time"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/category"
)

// Category is the MySQL row backing the aggregate. Timestamps are stamped by
// the domain, so gorm's automatic tracking is disabled.
type Category struct {
	ID          string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string    `gorm:"size:255;not null"`
	Description *string   `gorm:"size:4000"`
	Active      bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
	DeletedAt   *time.Time
}

func CategoryFromAggregate(aCategory *category.Category) Category {
	return Category{
		ID:          aCategory.ID().String(),
		Name:        aCategory.Name(),
		Description: aCategory.Description(),
		Active:      aCategory.IsActive(),
		CreatedAt:   aCategory.CreatedAt(),
		UpdatedAt:   aCategory.UpdatedAt(),
		DeletedAt:   aCategory.DeletedAt(),
	}
}

func (m Category) ToAggregate() *category.Category {
	name := m.Name
	return category.With(
		category.CategoryIDFrom(m.ID),
		&name,
		m.Description,
		m.Active,
		m.CreatedAt,
		m.UpdatedAt,
		m.DeletedAt,
	)
}

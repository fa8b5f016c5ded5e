package migrations

import (
	"github.com/Rakhulsr/go-admin-catalog/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{})
}

package migrations

import (
	"gorm.io/gorm"

	"github.com/vishubh/bizbilling/app/models"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{}, &models.Customer{}, &models.Invoice{}, &models.InvoiceItem{})
}

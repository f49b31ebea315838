package seeders

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vishubh/bizbilling/app/models"
)

func dec(value string) decimal.Decimal {
	d, _ := decimal.NewFromString(value)
	return d
}

func sampleProducts() []models.Product {
	return []models.Product{
		{Name: "Apple normal", Category: "Fruits", Unit: models.UnitKG, PricePerUnit: dec("120.00"), TaxPercentage: dec("5.00"), IsActive: true},
		{Name: "Orange", Category: "Fruits", Unit: models.UnitKG, PricePerUnit: dec("80.00"), TaxPercentage: dec("5.00"), IsActive: true},
		{Name: "Banana", Category: "Fruits", Unit: models.UnitDozen, PricePerUnit: dec("60.00"), TaxPercentage: dec("5.00"), IsActive: true},
		{Name: "Tomato", Category: "Vegetables", Unit: models.UnitKG, PricePerUnit: dec("40.00"), TaxPercentage: dec("5.00"), IsActive: true},
		{Name: "Potato", Category: "Vegetables", Unit: models.UnitKG, PricePerUnit: dec("30.00"), TaxPercentage: dec("5.00"), IsActive: true},
		{Name: "Onion", Category: "Vegetables", Unit: models.UnitKG, PricePerUnit: dec("35.00"), TaxPercentage: dec("5.00"), IsActive: true},
		{Name: "Rice (Basmati)", Category: "Grains", Unit: models.UnitKG, PricePerUnit: dec("150.00"), TaxPercentage: dec("5.00"), IsActive: true},
		{Name: "Wheat Flour", Category: "Grains", Unit: models.UnitKG, PricePerUnit: dec("45.00"), TaxPercentage: dec("5.00"), IsActive: true},
		{Name: "Milk", Category: "Dairy", Unit: models.UnitLiter, PricePerUnit: dec("55.00"), TaxPercentage: dec("5.00"), IsActive: true},
		{Name: "Cooking Oil", Category: "Grocery", Unit: models.UnitLiter, PricePerUnit: dec("180.00"), TaxPercentage: dec("18.00"), IsActive: true},
	}
}

func sampleCustomer() models.Customer {
	return models.Customer{
		Name:          "Sampath Singh",
		Email:         "sampath@example.com",
		Phone:         "+91 98765 43210",
		Address:       "12 Market Road",
		City:          "Pune",
		State:         "Maharashtra",
		Pincode:       "411001",
		PlaceOfSupply: "Maharashtra",
	}
}

// DBSeed loads the demo catalog, one customer and one worked invoice.
// It refuses to run on a non-empty database.
func DBSeed(db *gorm.DB) error {
	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount > 0 {
		log.Info().Msg("seed: database already has products, skipping")
		return nil
	}

	products := sampleProducts()
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(products)).Msg("seed: products created")

	customer := sampleCustomer()
	if err := db.Create(&customer).Error; err != nil {
		return err
	}

	invoice := models.Invoice{
		InvoiceNumber:   "S01",
		CustomerID:      customer.ID,
		InvoiceDate:     time.Now(),
		Discount:        dec("100.00"),
		ReceivedAmount:  dec("500.00"),
		TermsConditions: "1. Customer will pay the GST\n2. Customer will pay the Delivery charges\n3. Pay due amount within 15 days",
	}

	for _, line := range []struct {
		name     string
		quantity string
	}{
		{"Apple normal", "2"},
		{"Rice (Basmati)", "5"},
		{"Milk", "3"},
	} {
		for i := range products {
			if products[i].Name != line.name {
				continue
			}
			item := models.InvoiceItem{}
			item.Snapshot(&products[i], dec(line.quantity))
			invoice.Items = append(invoice.Items, item)
		}
	}
	invoice.CalculateTotals()

	if err := db.Create(&invoice).Error; err != nil {
		return err
	}
	log.Info().Str("invoice", invoice.InvoiceNumber).Msg("seed: sample invoice created")

	return nil
}

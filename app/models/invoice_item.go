package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceItem snapshots the product's price and tax rate at the moment
// the invoice is generated, so later catalog edits never change an
// issued invoice.
type InvoiceItem struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	InvoiceID string  `gorm:"size:36;not null;index" json:"invoice_id"`
	ProductID string  `gorm:"size:36;not null;index" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`

	Quantity      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"`
	PricePerUnit  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_unit"`
	TaxPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"tax_percentage"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"tax_amount"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
}

func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	return
}

// BaseAmount is the line amount before tax.
func (it *InvoiceItem) BaseAmount() decimal.Decimal {
	return it.PricePerUnit.Mul(it.Quantity)
}

// TaxPerUnit is the tax charged per unit, shown on the invoice PDF.
func (it *InvoiceItem) TaxPerUnit() decimal.Decimal {
	return it.PricePerUnit.Mul(it.TaxPercentage).Div(decimal.NewFromInt(100))
}

// Snapshot copies price and tax from the product and derives the line
// amounts for the given quantity.
func (it *InvoiceItem) Snapshot(product *Product, quantity decimal.Decimal) {
	it.ProductID = product.ID
	it.Quantity = quantity
	it.PricePerUnit = product.PricePerUnit
	it.TaxPercentage = product.TaxPercentage
	base := it.BaseAmount()
	it.TaxAmount = base.Mul(it.TaxPercentage).Div(decimal.NewFromInt(100))
	it.Amount = base.Add(it.TaxAmount)
}

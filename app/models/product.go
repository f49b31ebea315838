package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Unit choices for Product.Unit.
const (
	UnitKG    = "KG"
	UnitPiece = "PIECE"
	UnitLiter = "LITER"
	UnitMeter = "METER"
	UnitBox   = "BOX"
	UnitDozen = "DOZEN"
)

var UnitChoices = []string{UnitKG, UnitPiece, UnitLiter, UnitMeter, UnitBox, UnitDozen}

type Product struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string          `gorm:"size:200;not null" json:"name"`
	Category      string          `gorm:"size:100" json:"category"`
	Unit          string          `gorm:"size:10;not null;default:PIECE" json:"unit"`
	PricePerUnit  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_unit"`
	TaxPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:5.00" json:"tax_percentage"`
	IsActive      bool            `gorm:"not null;default:true" json:"-"`
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// TaxAmount is the tax charged on the given quantity of this product.
func (p *Product) TaxAmount(quantity decimal.Decimal) decimal.Decimal {
	base := p.PricePerUnit.Mul(quantity)
	return base.Mul(p.TaxPercentage).Div(decimal.NewFromInt(100))
}

// TotalAmount is the tax-inclusive amount for the given quantity.
func (p *Product) TotalAmount(quantity decimal.Decimal) decimal.Decimal {
	return p.PricePerUnit.Mul(quantity).Add(p.TaxAmount(quantity))
}

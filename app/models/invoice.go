package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Invoice struct {
	ID            string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	InvoiceNumber string    `gorm:"size:50;not null;uniqueIndex" json:"invoice_number"`
	CustomerID    string    `gorm:"size:36;not null;index" json:"customer_id"`
	Customer      Customer  `gorm:"foreignKey:CustomerID" json:"customer"`
	InvoiceDate   time.Time `gorm:"not null" json:"invoice_date"`

	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);default:0.00" json:"subtotal"`
	TotalTax       decimal.Decimal `gorm:"type:decimal(10,2);default:0.00" json:"total_tax"`
	Discount       decimal.Decimal `gorm:"type:decimal(10,2);default:0.00" json:"discount"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(10,2);default:0.00" json:"grand_total"`
	ReceivedAmount decimal.Decimal `gorm:"type:decimal(10,2);default:0.00" json:"received_amount"`
	DueBalance     decimal.Decimal `gorm:"type:decimal(10,2);default:0.00" json:"due_balance"`

	Notes           string `gorm:"type:text" json:"notes"`
	TermsConditions string `gorm:"type:text" json:"terms_conditions"`

	WhatsappSent   bool       `gorm:"default:false" json:"whatsapp_sent"`
	WhatsappSentAt *time.Time `json:"whatsapp_sent_at,omitempty"`
	EmailSent      bool       `gorm:"default:false" json:"email_sent"`
	EmailSentAt    *time.Time `json:"email_sent_at,omitempty"`

	Items     []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`
	CreatedAt time.Time     `json:"-"`
	UpdatedAt time.Time     `json:"-"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}

// CalculateTotals recomputes the stored totals from the loaded items.
// Grand total is stored unclamped and goes negative when the discount
// exceeds subtotal plus tax.
func (i *Invoice) CalculateTotals() {
	subtotal := decimal.Zero
	totalTax := decimal.Zero
	for idx := range i.Items {
		subtotal = subtotal.Add(i.Items[idx].BaseAmount())
		totalTax = totalTax.Add(i.Items[idx].TaxAmount)
	}
	i.Subtotal = subtotal
	i.TotalTax = totalTax
	i.GrandTotal = subtotal.Add(totalTax).Sub(i.Discount)
	i.DueBalance = i.GrandTotal.Sub(i.ReceivedAmount)
}

// TotalQuantity sums line quantities, used by the PDF totals row.
func (i *Invoice) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for idx := range i.Items {
		total = total.Add(i.Items[idx].Quantity)
	}
	return total
}

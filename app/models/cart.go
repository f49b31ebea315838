package models

import (
	"github.com/shopspring/decimal"

	"github.com/vishubh/bizbilling/app/utils/calc"
)

// CartItem is one line of the visitor's in-progress bill. It carries a
// copy of the product fields it was added with; the catalog row is only
// consulted again when the invoice is generated.
type CartItem struct {
	ProductID     string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	TaxPercentage decimal.Decimal `json:"tax_percentage"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// Cart is the per-visitor shopping cart. It lives in the session cookie
// and is never persisted server-side. Items keep insertion order and no
// two items share a product id.
type Cart struct {
	Items          []CartItem      `json:"items"`
	Discount       decimal.Decimal `json:"discount"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
}

func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

func (c *Cart) find(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// AddProduct appends the product with quantity 1, or bumps the quantity
// by exactly 1 when the product is already in the cart.
func (c *Cart) AddProduct(p *Product) {
	if item := c.find(p.ID); item != nil {
		item.Quantity = item.Quantity.Add(decimal.NewFromInt(1))
		return
	}
	c.Items = append(c.Items, CartItem{
		ProductID:     p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Unit:          p.Unit,
		PricePerUnit:  p.PricePerUnit,
		TaxPercentage: p.TaxPercentage,
		Quantity:      decimal.NewFromInt(1),
	})
}

// RemoveProduct drops the item with the given product id. Removing an
// id that is not in the cart is a no-op.
func (c *Cart) RemoveProduct(productID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// UpdateQuantity sets the quantity of an existing item from raw input.
// Unparseable input counts as 0, and any quantity <= 0 removes the item.
func (c *Cart) UpdateQuantity(productID, value string) {
	item := c.find(productID)
	if item == nil {
		return
	}
	qty := calc.ParseAmount(value)
	if qty.LessThanOrEqual(decimal.Zero) {
		c.RemoveProduct(productID)
		return
	}
	item.Quantity = qty
}

// SetDiscount stores the flat discount, defaulting to 0 on bad input.
func (c *Cart) SetDiscount(value string) {
	c.Discount = calc.ParseAmount(value)
}

// SetReceivedAmount stores the amount already paid, defaulting to 0 on
// bad input.
func (c *Cart) SetReceivedAmount(value string) {
	c.ReceivedAmount = calc.ParseAmount(value)
}

// ItemTotal is the tax-inclusive amount for one line.
func (c *Cart) ItemTotal(item CartItem) decimal.Decimal {
	return calc.ItemTotal(item.PricePerUnit, item.Quantity, item.TaxPercentage)
}

// Subtotal sums the pre-tax line amounts.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(item.PricePerUnit.Mul(item.Quantity))
	}
	return sum
}

// TotalTax sums the tax across all lines.
func (c *Cart) TotalTax() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(calc.TaxAmount(item.PricePerUnit, item.Quantity, item.TaxPercentage))
	}
	return sum
}

// GrandTotal is subtotal + tax - discount, unclamped.
func (c *Cart) GrandTotal() decimal.Decimal {
	return calc.GrandTotal(c.Subtotal(), c.TotalTax(), c.Discount)
}

// DueBalance is what the customer still owes; negative means overpaid.
func (c *Cart) DueBalance() decimal.Decimal {
	return calc.DueBalance(c.GrandTotal(), c.ReceivedAmount)
}

// Clear empties the cart and resets discount and received amount.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.Discount = decimal.Zero
	c.ReceivedAmount = decimal.Zero
}

// CartSnapshotItem is the submission shape of one line: only the
// product id and quantity travel to the invoice endpoint.
type CartSnapshotItem struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CartSnapshot is the cart's contribution to the invoice payload.
type CartSnapshot struct {
	Items          []CartSnapshotItem `json:"items"`
	Discount       decimal.Decimal    `json:"discount"`
	ReceivedAmount decimal.Decimal    `json:"received_amount"`
}

// Snapshot produces the submission payload for invoice generation.
func (c *Cart) Snapshot() CartSnapshot {
	items := make([]CartSnapshotItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartSnapshotItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return CartSnapshot{Items: items, Discount: c.Discount, ReceivedAmount: c.ReceivedAmount}
}

package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ParseAmount parses user-entered decimal input. Anything that does not
// parse is treated as zero, matching how the billing form behaves.
func ParseAmount(value string) decimal.Decimal {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// TaxAmount is price * qty * taxPercent / 100.
func TaxAmount(pricePerUnit, quantity, taxPercent decimal.Decimal) decimal.Decimal {
	return pricePerUnit.Mul(quantity).Mul(taxPercent).Div(hundred)
}

// ItemTotal is the tax-inclusive amount for a single line.
func ItemTotal(pricePerUnit, quantity, taxPercent decimal.Decimal) decimal.Decimal {
	base := pricePerUnit.Mul(quantity)
	return base.Add(base.Mul(taxPercent).Div(hundred))
}

// GrandTotal is subtotal + tax - discount. The result is not clamped:
// a discount larger than subtotal + tax yields a negative total.
func GrandTotal(subtotal, taxAmount, discount decimal.Decimal) decimal.Decimal {
	return subtotal.Add(taxAmount).Sub(discount)
}

// DueBalance is grand total minus what the customer already paid.
func DueBalance(grandTotal, receivedAmount decimal.Decimal) decimal.Decimal {
	return grandTotal.Sub(receivedAmount)
}

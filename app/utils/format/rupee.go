package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var rupee = accounting.Accounting{Symbol: "Rs. ", Precision: 2}

// FormatRupees renders an amount the way invoices print it: "Rs. 1,234.50".
func FormatRupees(amount decimal.Decimal) string {
	return rupee.FormatMoneyDecimal(amount)
}

// FormatRupeesAny accepts the loose value types templates hand over.
func FormatRupeesAny(amount interface{}) string {
	switch v := amount.(type) {
	case decimal.Decimal:
		return FormatRupees(v)
	case float64:
		return FormatRupees(decimal.NewFromFloat(v))
	case int:
		return FormatRupees(decimal.NewFromInt(int64(v)))
	case int64:
		return FormatRupees(decimal.NewFromInt(v))
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return FormatRupees(decimal.Zero)
		}
		return FormatRupees(parsed)
	default:
		return FormatRupees(decimal.Zero)
	}
}

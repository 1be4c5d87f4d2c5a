package utils

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatAmount renders d with two decimals and thousands separators,
// e.g. 1234.5 -> "1,234.50".
func FormatAmount(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// FormatMoney appends the currency code to FormatAmount.
func FormatMoney(d decimal.Decimal, currency string) string {
	if currency == "" {
		return FormatAmount(d)
	}
	return FormatAmount(d) + " " + currency
}

// FormatOptionalAmount leaves zero amounts blank, the way payment and
// deposit columns are shown in transaction tables.
func FormatOptionalAmount(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return FormatAmount(d)
}

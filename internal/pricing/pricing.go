// Package pricing computes cart totals. All functions are pure: they take a
// cart snapshot and the discount table and return decimals, with display
// formatting kept strictly separate from the stored values.
package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/formesean/tilltally/internal/models"
)

var hundred = decimal.NewFromInt(100)

var printer = message.NewPrinter(language.English)

// Subtotal sums the item prices of a cart snapshot.
func Subtotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.Product.Price))
	}
	return total
}

// DiscountPercentage resolves a code against the discount table. Lookup is
// exact and case-sensitive; an empty or unmatched code is 0%, never an
// error. The result is clamped to [0,100].
func DiscountPercentage(code string, table []models.DiscountCode) decimal.Decimal {
	for _, entry := range table {
		if entry.Code == code {
			pct := decimal.NewFromFloat(entry.Discount)
			if pct.IsNegative() {
				return decimal.Zero
			}
			if pct.GreaterThan(hundred) {
				return hundred
			}
			return pct
		}
	}
	return decimal.Zero
}

// DiscountedTotal applies the code's percentage to the subtotal and rounds
// half-up to 2 fraction digits. The result is never negative.
func DiscountedTotal(items []models.CartItem, code string, table []models.DiscountCode) decimal.Decimal {
	subtotal := Subtotal(items)
	pct := DiscountPercentage(code, table)
	total := subtotal.Sub(subtotal.Mul(pct).Div(hundred)).Round(2)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Format renders an amount for display with thousands separators and a
// fixed 2-digit fraction ("1,234.50"). Presentation only; stored totals are
// untouched.
func Format(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

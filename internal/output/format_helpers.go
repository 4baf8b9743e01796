package output

import (
	"strconv"

	"github.com/rpgo/tvc-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a projected balance as USD with grouping and 2 decimals.
func FormatCurrency(amount float64) string { return money.FromFloat(amount).Format() }

// FormatCurrencyWhole formats a balance without cents, as used in chart annotations.
func FormatCurrencyWhole(amount float64) string { return money.FromFloat(amount).FormatWhole() }

// FormatPercentage formats a fraction (0.07) as a percentage with 2 decimals ("7.00%").
func FormatPercentage(fraction float64) string {
	return decimal.NewFromFloat(fraction).Mul(decimalHundred).StringFixed(2) + "%"
}

// FormatAge renders an optional age, "none" when undefined.
func FormatAge(age *int) string {
	if age == nil {
		return "none"
	}
	return strconv.Itoa(*age)
}

var decimalHundred = decimal.NewFromInt(100)

package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO code used when rendering projected balances
const DefaultCurrency = gomoney.USD

// Money is a projected balance rounded for display. Projections are computed in
// float64; Money is only used at the presentation boundary.
type Money struct {
	decimal.Decimal
}

// FromFloat converts a projected float balance to Money
func FromFloat(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Round rounds the amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// String returns the amount with two decimals and no grouping (CSV friendly)
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount in DefaultCurrency with grouping, e.g. "$1,234.50" or "-$12.00"
func (m Money) Format() string {
	return m.FormatIn(DefaultCurrency)
}

// FormatIn renders the amount in the given ISO currency
func (m Money) FormatIn(code string) string {
	cur := gomoney.GetCurrency(code)
	if cur == nil {
		cur = gomoney.GetCurrency(DefaultCurrency)
	}
	minor := m.Decimal.Abs().Shift(int32(cur.Fraction)).Round(0).IntPart()
	s := gomoney.New(minor, cur.Code).Display()
	if m.Decimal.Round(int32(cur.Fraction)).IsNegative() {
		return "-" + s
	}
	return s
}

// FormatWhole renders the amount without minor units, e.g. "$1,235". Used for chart annotations.
func (m Money) FormatWhole() string {
	whole := m.Decimal.Round(0)
	cur := gomoney.GetCurrency(DefaultCurrency)
	f := gomoney.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	s := f.Format(whole.Abs().IntPart())
	if whole.IsNegative() {
		return "-" + s
	}
	return s
}

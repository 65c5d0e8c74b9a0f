// Package money provides exact decimal amounts for prices, discounts and totals.
//
// Amounts are backed by shopspring/decimal and converted to and from
// *big.Rat at the Spanner boundary, where they are stored as NUMERIC.
package money

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

// NumericScale is the number of fractional digits a Spanner NUMERIC keeps.
const NumericScale = 9

// ErrInvalidAmount is returned when a textual amount cannot be parsed.
var ErrInvalidAmount = errors.New("invalid money amount")

// Money is an immutable decimal amount.
type Money struct {
	amount decimal.Decimal
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// FromDecimal wraps a decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// FromInt creates a whole amount.
func FromInt(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

// FromFloat creates an amount from a JSON number.
func FromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f)}
}

// Parse reads an amount such as "19.99".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: d}, nil
}

// FromRat converts a Spanner NUMERIC value.
func FromRat(r *big.Rat) Money {
	if r == nil {
		return Zero()
	}
	return Money{amount: decimal.NewFromBigRat(r, NumericScale)}
}

// Rat converts the amount for a Spanner NUMERIC column.
func (m Money) Rat() *big.Rat {
	return m.amount.Round(NumericScale).Rat()
}

// Decimal exposes the underlying decimal.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Times returns m multiplied by a quantity.
func (m Money) Times(qty int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(qty))}
}

// Percent returns pct percent of m.
func (m Money) Percent(pct decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(pct).Div(decimal.NewFromInt(100))}
}

// Max returns the larger of m and other.
func (m Money) Max(other Money) Money {
	if m.amount.LessThan(other.amount) {
		return other
	}
	return m
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Equal reports whether m and other represent the same amount.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Float64 returns the amount for JSON responses.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String formats the amount with two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

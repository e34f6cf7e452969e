// Package money provides the fixed-point amount type used throughout the
// ledger. Every value is rounded to the cent on construction and after every
// arithmetic operation, so no sub-cent drift can accumulate anywhere.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is the suffix appended to every rendered amount.
const Currency = "€"

// ErrInvalidSplit is returned by DivideInto when asked for zero parts.
var ErrInvalidSplit = fmt.Errorf("cannot split an amount into 0 parts")

// Money is an exact decimal amount with two fractional digits.
// The zero value is 0.00.
type Money struct {
	d decimal.Decimal
}

// New creates a Money from a float, rounding half away from zero to the cent.
func New(amount float64) Money {
	return Money{decimal.NewFromFloat(amount).Round(2)}
}

// FromDecimal creates a Money from a decimal value, re-rounding to the cent.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

// Parse creates a Money from a decimal string such as "12.50" or "-3".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return Money{d.Round(2)}, nil
}

// MustParse is Parse for test fixtures and constants; it panics on bad input.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns 0.00.
func Zero() Money {
	return Money{}
}

func (m Money) Add(o Money) Money { return Money{m.d.Add(o.d).Round(2)} }
func (m Money) Sub(o Money) Money { return Money{m.d.Sub(o.d).Round(2)} }
func (m Money) Neg() Money        { return Money{m.d.Neg()} }

// MulInt multiplies by a whole number of parts.
func (m Money) MulInt(n int64) Money {
	return Money{m.d.Mul(decimal.NewFromInt(n)).Round(2)}
}

// Div divides by n, rounding the quotient to the cent.
func (m Money) Div(n int64) Money {
	return Money{m.d.DivRound(decimal.NewFromInt(n), 2)}
}

// DivideInto splits the amount into exactly n parts that sum back to the
// amount. Each part is the cent-rounded quotient; the first part additionally
// absorbs the rounding remainder, which keeps the split deterministic.
func (m Money) DivideInto(n int) ([]Money, error) {
	if n < 1 {
		return nil, ErrInvalidSplit
	}
	quotient := m.Div(int64(n))
	remainder := m.Sub(quotient.MulInt(int64(n)))

	parts := make([]Money, n)
	parts[0] = quotient.Add(remainder)
	for i := 1; i < n; i++ {
		parts[i] = quotient
	}
	return parts, nil
}

func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }
func (m Money) Cmp(o Money) int    { return m.d.Cmp(o.d) }
func (m Money) IsZero() bool       { return m.d.IsZero() }
func (m Money) IsNegative() bool   { return m.d.IsNegative() }
func (m Money) IsPositive() bool   { return m.d.IsPositive() }

// Float64 returns the amount as a float, for serialization.
func (m Money) Float64() float64 {
	f, _ := m.d.Float64()
	return f
}

// String renders the amount without an explicit plus sign: "10.00€".
func (m Money) String() string {
	return m.d.StringFixed(2) + Currency
}

// SignedString always carries the sign: "+3.50€", "-0.01€", "+0.00€".
func (m Money) SignedString() string {
	if m.d.Sign() < 0 {
		return m.d.StringFixed(2) + Currency
	}
	return "+" + m.d.StringFixed(2) + Currency
}

package models

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MinorUnitExponent is the number of decimal places held by one major unit (cents)
const MinorUnitExponent = 2

var (
	ErrAmountOverflow  = fmt.Errorf("%w: amount exceeds representable range", ErrInvalidArgument)
	ErrFractionalMinor = fmt.Errorf("%w: amount has more precision than the minor unit", ErrInvalidArgument)
)

// Money is an exact amount expressed in integer minor currency units.
// Balances and amounts never pass through a floating point representation.
type Money int64

// Decimal returns the amount in major units, e.g. 1050 -> 10.50
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -MinorUnitExponent)
}

// String renders the amount with a fixed two-digit fraction
func (m Money) String() string {
	return m.Decimal().StringFixed(MinorUnitExponent)
}

// MinorUnits returns the raw integer value
func (m Money) MinorUnits() int64 {
	return int64(m)
}

func (m Money) IsPositive() bool {
	return m > 0
}

func (m Money) IsNegative() bool {
	return m < 0
}

// Add returns m+other, failing instead of wrapping around on overflow
func (m Money) Add(other Money) (Money, error) {
	if other > 0 && m > math.MaxInt64-other {
		return 0, ErrAmountOverflow
	}
	if other < 0 && m < math.MinInt64-other {
		return 0, ErrAmountOverflow
	}
	return m + other, nil
}

// Sub returns m-other, failing instead of wrapping around on overflow
func (m Money) Sub(other Money) (Money, error) {
	if other == math.MinInt64 {
		return 0, ErrAmountOverflow
	}
	return m.Add(-other)
}

// MoneyFromDecimal converts a major-unit decimal into minor units.
// Values finer than one minor unit are rejected rather than rounded.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	scaled := d.Shift(MinorUnitExponent)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, ErrFractionalMinor
	}
	if scaled.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || scaled.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, ErrAmountOverflow
	}
	return Money(scaled.IntPart()), nil
}

// ParseMoney parses a major-unit string such as "12.34"
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", ErrInvalidArgument, s)
	}
	return MoneyFromDecimal(d)
}

package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in fixed-point hundredths.
type Cents int64

// MaxAmount is the largest amount a single line or source document may carry.
// It matches the NUMERIC(14, 2) source columns.
const MaxAmount Cents = 99_999_999_999_999

var maxAmountDecimal = MaxAmount.Decimal()

// CentsFromDecimal rounds d half away from zero to two places and returns it as cents.
// Callers must check WithinMaxAmount first; larger values do not fit.
func CentsFromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Round(2).Shift(2).IntPart())
}

// WithinMaxAmount reports whether d, once rounded to cents, is no larger in
// magnitude than MaxAmount.
func WithinMaxAmount(d decimal.Decimal) bool {
	return d.Round(2).Abs().LessThanOrEqual(maxAmountDecimal)
}

// CentsFromDecimalChecked is CentsFromDecimal with the MaxAmount bound applied.
func CentsFromDecimalChecked(d decimal.Decimal) (Cents, bool) {
	if !WithinMaxAmount(d) {
		return 0, false
	}
	return CentsFromDecimal(d), true
}

// Add returns c+o and false when the sum overflows int64.
func (c Cents) Add(o Cents) (Cents, bool) {
	if (o > 0 && c > math.MaxInt64-o) || (o < 0 && c < math.MinInt64-o) {
		return 0, false
	}
	return c + o, true
}

// Decimal returns the amount as a decimal with two places.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// IsZero reports whether the amount is zero.
func (c Cents) IsZero() bool {
	return c == 0
}

// String formats the amount with two decimal places, e.g. "1500.00".
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// Package money does fixed-point price arithmetic in integer hundredths
// so stacked rates never accumulate float drift.
package money

import "math"

// Cents is a monetary amount in hundredths of the facility currency.
type Cents int64

// FromMajor converts a major-unit amount (e.g. an hourly rate column) to
// Cents, rounding half away from zero.
func FromMajor(v float64) Cents {
	return Cents(math.Round(v * 100))
}

// Major returns the amount in major units for JSON boundaries.
func (c Cents) Major() float64 {
	return float64(c) / 100
}

func (c Cents) Add(o Cents) Cents { return c + o }

// MulMinutes scales an hourly amount by a duration in minutes, rounding
// half up to the nearest cent.
func (c Cents) MulMinutes(minutes int64) Cents {
	return roundDiv(int64(c)*minutes, 60)
}

// MulQuantity multiplies by a unit count.
func (c Cents) MulQuantity(n int64) Cents { return Cents(int64(c) * n) }

// Percent applies a percentage given in basis points (15% = 1500),
// rounding half up to the nearest cent.
func (c Cents) Percent(basisPoints int64) Cents {
	return roundDiv(int64(c)*basisPoints, 10000)
}

// BasisPoints converts a percentage amount (15.0 for 15%) to basis points.
func BasisPoints(pct float64) int64 {
	return int64(math.Round(pct * 100))
}

func roundDiv(num, den int64) Cents {
	if num >= 0 {
		return Cents((num + den/2) / den)
	}
	return Cents(-((-num + den/2) / den))
}

// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/homelend/mortgage-engine/pkg/constants"
)

// RoundCents rounds a value to two decimals, i.e. to represent real currency.
// Decimal arithmetic keeps repeated roundings deterministic across platforms.
func RoundCents(val float64) float64 {
	f, _ := decimal.NewFromFloat(val).Round(constants.CentPlaces).Float64()
	return f
}

// RoundUpToThousand rounds a value up to the nearest whole thousand.
func RoundUpToThousand(val float64) float64 {
	step := decimal.NewFromInt(constants.AppraisalRoundingStep)
	f, _ := decimal.NewFromFloat(val).Div(step).Ceil().Mul(step).Float64()
	return f
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// Package payment provides standard amortization math.
package payment

import (
	"math"

	"github.com/homelend/mortgage-engine/pkg/constants"
)

// MonthlyPayment calculates the monthly principal-and-interest payment for a
// loan using the standard amortization formula. A zero interest rate is a
// legitimate input: the payment is simply principal divided by term.
func MonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if annualRate == 0 {
		return principal / float64(termMonths)
	}

	periodicRate := annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor
}

// InterestPortion calculates the interest share of a single payment against
// the remaining balance.
func InterestPortion(remainingBalance, annualRate float64) float64 {
	return remainingBalance * annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// RemainingBalance forward-amortizes a loan and returns the balance after the
// given number of monthly payments, using the closed-form expression rather
// than walking a schedule.
func RemainingBalance(principal, annualRate float64, termMonths, monthsElapsed int) float64 {
	if monthsElapsed <= 0 {
		return principal
	}
	if monthsElapsed >= termMonths {
		return 0
	}
	if annualRate == 0 {
		return principal * float64(termMonths-monthsElapsed) / float64(termMonths)
	}

	periodicRate := annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	monthly := MonthlyPayment(principal, annualRate, termMonths)
	growth := math.Pow(1.00+periodicRate, float64(monthsElapsed))
	balance := principal*growth - monthly*(growth-1.00)/periodicRate
	if balance < 0 {
		return 0
	}
	return balance
}

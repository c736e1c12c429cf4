package scenario

import (
	"time"

	"github.com/homelend/mortgage-engine/internal/errors"
	"github.com/homelend/mortgage-engine/pkg/constants"
)

// ValidatePurchase checks every purchase input field and returns a
// ValidationError naming the first offending field. No calculation runs
// against an invalid scenario.
func ValidatePurchase(s *LoanScenario) error {
	if s.PurchasePrice <= 0 {
		return errors.NewValidation("purchase_price", "must be greater than zero, got %.2f", s.PurchasePrice)
	}
	return validateShared(s)
}

// ValidateRefinance checks every refinance input field and returns a
// ValidationError naming the first offending field.
func ValidateRefinance(s *RefinanceScenario) error {
	if s.AppraisedValue <= 0 {
		return errors.NewValidation("appraised_value", "must be greater than zero, got %.2f", s.AppraisedValue)
	}
	if err := validateShared(&s.LoanScenario); err != nil {
		return err
	}

	if !s.RefinanceType.Valid() {
		return errors.NewValidation("refinance_type", "must be one of rate_term, cash_out; got %q", string(s.RefinanceType))
	}
	if s.RefinanceType == RefinanceCashOut && s.LoanType == LoanTypeUSDA {
		return errors.NewValidation("refinance_type", "usda loans have no cash-out program")
	}
	if s.CashOutAmount < 0 {
		return errors.NewValidation("cash_out_amount", "cannot be negative, got %.2f", s.CashOutAmount)
	}
	if s.RefinanceType == RefinanceRateTerm && s.CashOutAmount > 0 {
		return errors.NewValidation("cash_out_amount", "must be zero on a rate/term refinance, got %.2f", s.CashOutAmount)
	}
	if s.ExtraMonthlyPrincipal < 0 {
		return errors.NewValidation("extra_monthly_principal", "cannot be negative, got %.2f", s.ExtraMonthlyPrincipal)
	}

	if s.OriginalBalance < 0 {
		return errors.NewValidation("original_loan_balance", "cannot be negative, got %.2f", s.OriginalBalance)
	}
	if s.OriginalBalance == 0 {
		// Payoff has to be estimated from the original loan terms.
		if s.OriginalPrincipal <= 0 {
			return errors.NewValidation("original_principal", "required when original_loan_balance is not supplied")
		}
		if s.OriginalStartDate == "" {
			return errors.NewValidation("original_start_date", "required when original_loan_balance is not supplied")
		}
		if _, err := time.Parse(constants.MonthLayout, s.OriginalStartDate); err != nil {
			return errors.NewValidation("original_start_date", "must match %s, got %q", constants.MonthLayout, s.OriginalStartDate)
		}
	}
	if s.OriginalRate < 0 {
		return errors.NewValidation("original_rate", "cannot be negative, got %.2f", s.OriginalRate)
	}
	if s.OriginalTermMonths <= 0 {
		return errors.NewValidation("original_term", "must be greater than zero, got %d", s.OriginalTermMonths)
	}

	return nil
}

func validateShared(s *LoanScenario) error {
	if s.DownPaymentPercent < 0 || s.DownPaymentPercent > 100 {
		return errors.NewValidation("down_payment_percentage", "must be between 0 and 100, got %.2f", s.DownPaymentPercent)
	}
	if s.AnnualRate < 0 {
		return errors.NewValidation("annual_rate", "cannot be negative, got %.2f", s.AnnualRate)
	}
	if s.TermMonths <= 0 {
		return errors.NewValidation("loan_term", "must be greater than zero, got %d", s.TermMonths)
	}
	if !s.LoanType.Valid() {
		return errors.NewValidation("loan_type", "must be one of conventional, fha, va, usda; got %q", string(s.LoanType))
	}
	if !s.Occupancy.Valid() {
		return errors.NewValidation("occupancy", "must be one of primary, second_home, investment; got %q", string(s.Occupancy))
	}

	if err := validateRecurringCost("property_tax", s.PropertyTax); err != nil {
		return err
	}
	if err := validateRecurringCost("insurance", s.HomeInsurance); err != nil {
		return err
	}

	if s.MonthlyHOAFee < 0 {
		return errors.NewValidation("monthly_hoa_fee", "cannot be negative, got %.2f", s.MonthlyHOAFee)
	}
	if s.SellerCredit < 0 {
		return errors.NewValidation("seller_credit", "cannot be negative, got %.2f", s.SellerCredit)
	}
	if s.LenderCredit < 0 {
		return errors.NewValidation("lender_credit", "cannot be negative, got %.2f", s.LenderCredit)
	}
	if s.DiscountPoints < 0 {
		return errors.NewValidation("discount_points", "cannot be negative, got %.2f", s.DiscountPoints)
	}

	if s.ClosingDate == "" {
		return errors.NewValidation("closing_date", "is required")
	}
	if _, err := time.Parse(constants.DateLayout, s.ClosingDate); err != nil {
		return errors.NewValidation("closing_date", "must match %s, got %q", constants.DateLayout, s.ClosingDate)
	}

	if s.LoanType == LoanTypeVA {
		if !s.VAServiceType.Valid() {
			return errors.NewValidation("va_service_type", "must be one of active, reserves; got %q", string(s.VAServiceType))
		}
		if !s.VAUsage.Valid() {
			return errors.NewValidation("va_usage", "must be one of first, subsequent; got %q", string(s.VAUsage))
		}
	}

	return nil
}

func validateRecurringCost(field string, c RecurringCost) error {
	switch c.Basis {
	case CostBasisRateOfValue:
		if c.AnnualRate < 0 {
			return errors.NewValidation(field, "annual rate cannot be negative, got %.4f", c.AnnualRate)
		}
	case CostBasisFlatMonthly:
		if c.MonthlyAmount < 0 {
			return errors.NewValidation(field, "monthly amount cannot be negative, got %.2f", c.MonthlyAmount)
		}
	default:
		return errors.NewValidation(field, "basis must be one of rate_of_value, flat_monthly; got %q", string(c.Basis))
	}
	return nil
}

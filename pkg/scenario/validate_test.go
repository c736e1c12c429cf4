package scenario

import (
	"errors"
	"testing"

	engineerrors "github.com/homelend/mortgage-engine/internal/errors"
)

func validPurchase() *LoanScenario {
	return &LoanScenario{
		PurchasePrice:      300000,
		DownPaymentPercent: 20,
		AnnualRate:         6.5,
		TermMonths:         360,
		LoanType:           LoanTypeConventional,
		Occupancy:          OccupancyPrimary,
		PropertyTax:        RecurringCost{Basis: CostBasisRateOfValue, AnnualRate: 1.2},
		HomeInsurance:      RecurringCost{Basis: CostBasisFlatMonthly, MonthlyAmount: 125},
		ClosingDate:        "2026-03-15",
	}
}

func validRefinance() *RefinanceScenario {
	return &RefinanceScenario{
		LoanScenario: LoanScenario{
			AppraisedValue: 400000,
			AnnualRate:     5.5,
			TermMonths:     360,
			LoanType:       LoanTypeConventional,
			Occupancy:      OccupancyPrimary,
			PropertyTax:    RecurringCost{Basis: CostBasisFlatMonthly, MonthlyAmount: 350},
			HomeInsurance:  RecurringCost{Basis: CostBasisFlatMonthly, MonthlyAmount: 120},
			ClosingDate:    "2026-04-10",
		},
		OriginalBalance:    280000,
		OriginalRate:       7.25,
		OriginalTermMonths: 360,
		RefinanceType:      RefinanceRateTerm,
	}
}

func TestValidatePurchase(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*LoanScenario)
		expectedField string
	}{
		{"Valid scenario passes", func(s *LoanScenario) {}, ""},
		{"Zero purchase price", func(s *LoanScenario) { s.PurchasePrice = 0 }, "purchase_price"},
		{"Negative purchase price", func(s *LoanScenario) { s.PurchasePrice = -1 }, "purchase_price"},
		{"Down payment over 100", func(s *LoanScenario) { s.DownPaymentPercent = 101 }, "down_payment_percentage"},
		{"Negative down payment", func(s *LoanScenario) { s.DownPaymentPercent = -5 }, "down_payment_percentage"},
		{"Zero down payment allowed", func(s *LoanScenario) { s.DownPaymentPercent = 0 }, ""},
		{"Negative rate", func(s *LoanScenario) { s.AnnualRate = -0.5 }, "annual_rate"},
		{"Zero rate allowed", func(s *LoanScenario) { s.AnnualRate = 0 }, ""},
		{"Zero term", func(s *LoanScenario) { s.TermMonths = 0 }, "loan_term"},
		{"Unknown loan type", func(s *LoanScenario) { s.LoanType = "jumbo" }, "loan_type"},
		{"Unknown occupancy", func(s *LoanScenario) { s.Occupancy = "vacation" }, "occupancy"},
		{"Bad tax basis", func(s *LoanScenario) { s.PropertyTax.Basis = "percent" }, "property_tax"},
		{"Negative tax rate", func(s *LoanScenario) { s.PropertyTax.AnnualRate = -1 }, "property_tax"},
		{"Negative insurance amount", func(s *LoanScenario) { s.HomeInsurance.MonthlyAmount = -1 }, "insurance"},
		{"Negative HOA fee", func(s *LoanScenario) { s.MonthlyHOAFee = -50 }, "monthly_hoa_fee"},
		{"Negative seller credit", func(s *LoanScenario) { s.SellerCredit = -100 }, "seller_credit"},
		{"Negative lender credit", func(s *LoanScenario) { s.LenderCredit = -100 }, "lender_credit"},
		{"Negative discount points", func(s *LoanScenario) { s.DiscountPoints = -0.5 }, "discount_points"},
		{"Missing closing date", func(s *LoanScenario) { s.ClosingDate = "" }, "closing_date"},
		{"Malformed closing date", func(s *LoanScenario) { s.ClosingDate = "03/15/2026" }, "closing_date"},
		{"VA missing service type", func(s *LoanScenario) { s.LoanType = LoanTypeVA }, "va_service_type"},
		{"VA missing usage", func(s *LoanScenario) {
			s.LoanType = LoanTypeVA
			s.VAServiceType = VAServiceActive
		}, "va_usage"},
		{"VA fully specified passes", func(s *LoanScenario) {
			s.LoanType = LoanTypeVA
			s.VAServiceType = VAServiceActive
			s.VAUsage = VAUsageFirst
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validPurchase()
			tt.mutate(s)
			err := ValidatePurchase(s)
			checkValidation(t, err, tt.expectedField)
		})
	}
}

func TestValidateRefinance(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*RefinanceScenario)
		expectedField string
	}{
		{"Valid scenario passes", func(s *RefinanceScenario) {}, ""},
		{"Zero appraised value", func(s *RefinanceScenario) { s.AppraisedValue = 0 }, "appraised_value"},
		{"Unknown refinance type", func(s *RefinanceScenario) { s.RefinanceType = "streamline" }, "refinance_type"},
		{"USDA cash-out rejected", func(s *RefinanceScenario) {
			s.LoanType = LoanTypeUSDA
			s.RefinanceType = RefinanceCashOut
			s.CashOutAmount = 20000
		}, "refinance_type"},
		{"Negative cash out", func(s *RefinanceScenario) {
			s.RefinanceType = RefinanceCashOut
			s.CashOutAmount = -1
		}, "cash_out_amount"},
		{"Cash out on rate/term rejected", func(s *RefinanceScenario) { s.CashOutAmount = 20000 }, "cash_out_amount"},
		{"Negative extra principal", func(s *RefinanceScenario) { s.ExtraMonthlyPrincipal = -10 }, "extra_monthly_principal"},
		{"Negative original balance", func(s *RefinanceScenario) { s.OriginalBalance = -1 }, "original_loan_balance"},
		{"Missing balance needs original principal", func(s *RefinanceScenario) {
			s.OriginalBalance = 0
		}, "original_principal"},
		{"Missing balance needs start date", func(s *RefinanceScenario) {
			s.OriginalBalance = 0
			s.OriginalPrincipal = 300000
		}, "original_start_date"},
		{"Malformed start date", func(s *RefinanceScenario) {
			s.OriginalBalance = 0
			s.OriginalPrincipal = 300000
			s.OriginalStartDate = "2020-03-01"
		}, "original_start_date"},
		{"Estimated payoff fully specified passes", func(s *RefinanceScenario) {
			s.OriginalBalance = 0
			s.OriginalPrincipal = 300000
			s.OriginalStartDate = "2020-03"
		}, ""},
		{"Negative original rate", func(s *RefinanceScenario) { s.OriginalRate = -1 }, "original_rate"},
		{"Zero original term", func(s *RefinanceScenario) { s.OriginalTermMonths = 0 }, "original_term"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validRefinance()
			tt.mutate(s)
			err := ValidateRefinance(s)
			checkValidation(t, err, tt.expectedField)
		})
	}
}

func checkValidation(t *testing.T, err error, expectedField string) {
	t.Helper()
	if expectedField == "" {
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected validation error on %s, got nil", expectedField)
	}
	if !engineerrors.IsKind(err, engineerrors.KindValidation) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	var engErr *engineerrors.Error
	if !errors.As(err, &engErr) {
		t.Fatalf("error is not an engine error: %v", err)
	}
	if engErr.Field != expectedField {
		t.Errorf("error names field %q, expected %q", engErr.Field, expectedField)
	}
}

func TestRecurringCostMonthlyFor(t *testing.T) {
	tests := []struct {
		name     string
		cost     RecurringCost
		value    float64
		expected float64
	}{
		{"Rate of value", RecurringCost{Basis: CostBasisRateOfValue, AnnualRate: 1.2}, 300000, 300},
		{"Flat monthly ignores value", RecurringCost{Basis: CostBasisFlatMonthly, MonthlyAmount: 125}, 300000, 125},
		{"Zero rate", RecurringCost{Basis: CostBasisRateOfValue, AnnualRate: 0}, 300000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cost.MonthlyFor(tt.value); got != tt.expected {
				t.Errorf("MonthlyFor(%.2f) = %.2f, expected %.2f", tt.value, got, tt.expected)
			}
		})
	}
}

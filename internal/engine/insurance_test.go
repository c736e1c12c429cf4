package engine

import (
	"math"
	"testing"

	"github.com/homelend/mortgage-engine/internal/errors"
	"github.com/homelend/mortgage-engine/pkg/scenario"
	"github.com/homelend/mortgage-engine/pkg/testutil"
)

func TestUpfrontInsuranceFee(t *testing.T) {
	snap := testutil.Snapshot()

	tests := []struct {
		name     string
		mutate   func(*scenario.LoanScenario)
		baseLoan float64
		expected float64
	}{
		{"Conventional has no fee", func(s *scenario.LoanScenario) {}, 240000, 0},
		{"FHA upfront MIP", func(s *scenario.LoanScenario) {
			s.LoanType = scenario.LoanTypeFHA
		}, 270200, 4728.50},
		{"USDA guarantee fee", func(s *scenario.LoanScenario) {
			s.LoanType = scenario.LoanTypeUSDA
		}, 300000, 3000},
		{"VA active first use low down", func(s *scenario.LoanScenario) {
			s.LoanType = scenario.LoanTypeVA
			s.VAServiceType = scenario.VAServiceActive
			s.VAUsage = scenario.VAUsageFirst
			s.DownPaymentPercent = 0
		}, 300000, 6450},
		{"VA active subsequent low down", func(s *scenario.LoanScenario) {
			s.LoanType = scenario.LoanTypeVA
			s.VAServiceType = scenario.VAServiceActive
			s.VAUsage = scenario.VAUsageSubsequent
			s.DownPaymentPercent = 0
		}, 300000, 9900},
		{"VA fractional down payment rounds into a band", func(s *scenario.LoanScenario) {
			s.LoanType = scenario.LoanTypeVA
			s.VAServiceType = scenario.VAServiceActive
			s.VAUsage = scenario.VAUsageFirst
			s.DownPaymentPercent = 4.995 // rounds to 5.00, the 1.50 tier
		}, 300000, 4500},
		{"VA reserves first mid band", func(s *scenario.LoanScenario) {
			s.LoanType = scenario.LoanTypeVA
			s.VAServiceType = scenario.VAServiceReserves
			s.VAUsage = scenario.VAUsageFirst
			s.DownPaymentPercent = 5
		}, 285000, 4987.50},
		{"VA reserves subsequent high down", func(s *scenario.LoanScenario) {
			s.LoanType = scenario.LoanTypeVA
			s.VAServiceType = scenario.VAServiceReserves
			s.VAUsage = scenario.VAUsageSubsequent
			s.DownPaymentPercent = 10
		}, 270000, 4050},
		{"VA disability exemption overrides the matrix", func(s *scenario.LoanScenario) {
			s.LoanType = scenario.LoanTypeVA
			s.VAServiceType = scenario.VAServiceActive
			s.VAUsage = scenario.VAUsageFirst
			s.DownPaymentPercent = 0
			s.VADisabilityExempt = true
		}, 300000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := testutil.PurchaseScenario()
			tt.mutate(sc)
			fee, err := UpfrontInsuranceFee(snap, sc, tt.baseLoan)
			if err != nil {
				t.Fatalf("UpfrontInsuranceFee returned error: %v", err)
			}
			if math.Abs(fee-tt.expected) > 0.01 {
				t.Errorf("fee = %.2f, expected %.2f", fee, tt.expected)
			}
		})
	}
}

func TestMonthlyInsurancePremiumConventional(t *testing.T) {
	snap := testutil.Snapshot()

	tests := []struct {
		name     string
		loan     float64
		ltv      float64
		expected float64
	}{
		{"Exactly 80 percent is PMI free", 240000, 80.00, 0},
		{"Just over the cutoff", 240030, 80.01, 240030 * 0.0030 / 12},
		{"Mid band", 255000, 85.00, 255000 * 0.0030 / 12},
		{"Next band", 270000, 90.00, 270000 * 0.0049 / 12},
		{"High LTV band", 291000, 97.00, 291000 * 0.0088 / 12},
		{"Over program max band", 294000, 98.00, 294000 * 0.0105 / 12},
		{"Well below cutoff", 150000, 50.00, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := testutil.PurchaseScenario()
			premium, err := MonthlyInsurancePremium(snap, sc, tt.loan, tt.ltv)
			if err != nil {
				t.Fatalf("MonthlyInsurancePremium returned error: %v", err)
			}
			if math.Abs(premium-tt.expected) > 0.005 {
				t.Errorf("premium = %.4f, expected %.4f", premium, tt.expected)
			}
		})
	}

	// LTV in a gap above the top PMI band must fail, not default.
	sc := testutil.PurchaseScenario()
	_, err := MonthlyInsurancePremium(snap, sc, 312000, 104.00)
	if err == nil {
		t.Fatal("expected a calculation error above the top PMI band")
	}
	if !errors.IsKind(err, errors.KindCalculation) {
		t.Errorf("expected a calculation error, got %v", err)
	}
}

func TestMonthlyInsurancePremiumFHA(t *testing.T) {
	snap := testutil.Snapshot()

	tests := []struct {
		name       string
		termMonths int
		loan       float64
		ltv        float64
		rate       float64
	}{
		{"Long term standard balance low LTV", 360, 400000, 90.00, 0.50},
		{"Long term standard balance high LTV", 360, 400000, 96.50, 0.55},
		{"Long term high balance low LTV", 360, 800000, 90.00, 0.70},
		{"Long term high balance high LTV", 360, 800000, 96.50, 0.75},
		{"Short term standard balance low LTV", 180, 400000, 85.00, 0.15},
		{"Short term standard balance high LTV", 180, 400000, 95.00, 0.40},
		{"Short term high balance low LTV", 180, 800000, 85.00, 0.40},
		{"Short term high balance high LTV", 180, 800000, 95.00, 0.65},
		{"Term boundary is short", 180, 400000, 85.00, 0.15},
		{"Balance boundary is standard", 360, 726200, 90.00, 0.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := testutil.PurchaseScenario()
			sc.LoanType = scenario.LoanTypeFHA
			sc.TermMonths = tt.termMonths
			premium, err := MonthlyInsurancePremium(snap, sc, tt.loan, tt.ltv)
			if err != nil {
				t.Fatalf("MonthlyInsurancePremium returned error: %v", err)
			}
			expected := tt.loan * tt.rate / 100 / 12
			if math.Abs(premium-expected) > 0.005 {
				t.Errorf("premium = %.4f, expected %.4f", premium, expected)
			}
		})
	}

	// Above the high-cost limit no tier applies.
	sc := testutil.PurchaseScenario()
	sc.LoanType = scenario.LoanTypeFHA
	_, err := MonthlyInsurancePremium(snap, sc, 1100000, 80.00)
	if err == nil {
		t.Fatal("expected a calculation error above the high-cost limit")
	}
	if !errors.IsKind(err, errors.KindCalculation) {
		t.Errorf("expected a calculation error, got %v", err)
	}
}

func TestMonthlyInsurancePremiumVAAndUSDA(t *testing.T) {
	snap := testutil.Snapshot()

	sc := testutil.PurchaseScenario()
	sc.LoanType = scenario.LoanTypeVA
	sc.VAServiceType = scenario.VAServiceActive
	sc.VAUsage = scenario.VAUsageFirst
	premium, err := MonthlyInsurancePremium(snap, sc, 300000, 100.00)
	if err != nil {
		t.Fatalf("MonthlyInsurancePremium returned error: %v", err)
	}
	if premium != 0 {
		t.Errorf("VA premium = %.4f, expected 0", premium)
	}

	sc = testutil.PurchaseScenario()
	sc.LoanType = scenario.LoanTypeUSDA
	premium, err = MonthlyInsurancePremium(snap, sc, 300000, 100.00)
	if err != nil {
		t.Fatalf("MonthlyInsurancePremium returned error: %v", err)
	}
	expected := 300000 * 0.0035 / 12
	if math.Abs(premium-expected) > 0.005 {
		t.Errorf("USDA premium = %.4f, expected %.4f", premium, expected)
	}
}

// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"time"

	"github.com/homelend/mortgage-engine/internal/config"
	"github.com/homelend/mortgage-engine/pkg/scenario"
)

// Snapshot builds the canonical configuration snapshot used across tests.
// The tables mirror config.yaml.example.
func Snapshot() *config.Snapshot {
	snap := &config.Snapshot{
		Version:  "test",
		LoadedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),

		ClosingFees: []config.FeeDefinition{
			{Name: "Appraisal", Kind: config.FeeKindFixed, Base: config.BaseFixed, Value: 550},
			{Name: "Credit Report", Kind: config.FeeKindFixed, Base: config.BaseFixed, Value: 65},
			{Name: "Underwriting", Kind: config.FeeKindFixed, Base: config.BaseFixed, Value: 995},
			{Name: "Recording", Kind: config.FeeKindFixed, Base: config.BaseFixed, Value: 125},
			{Name: "Flood Certification", Kind: config.FeeKindFixed, Base: config.BaseFixed, Value: 40},
			{Name: "Settlement", Kind: config.FeeKindFixed, Base: config.BaseFixed, Value: 450},
			{Name: "Origination Fee", Kind: config.FeeKindPercentage, Base: config.BaseLoanAmount, Value: 0.5},
			{Name: "Transfer Tax", Kind: config.FeeKindPercentage, Base: config.BasePurchasePrice, Value: 0.1},
		},

		Conventional: config.ConventionalTables{
			PMIAnnualRate: config.MustRateTable("conventional.pmiAnnualRate", map[string]float64{
				"80.01-85.00":  0.30,
				"85.01-90.00":  0.49,
				"90.01-95.00":  0.67,
				"95.01-97.00":  0.88,
				"97.01-103.00": 1.05,
			}),
		},

		FHA: config.FHATables{
			UpfrontPercent:     1.75,
			StandardLimit:      726200,
			HighCostLimit:      1089300,
			ShortTermMaxMonths: 180,
			AnnualLongStandard: config.MustRateTable("fha.annual.longStandard", map[string]float64{
				"0-95.00":      0.50,
				"95.01-103.00": 0.55,
			}),
			AnnualLongHighBalance: config.MustRateTable("fha.annual.longHighBalance", map[string]float64{
				"0-95.00":      0.70,
				"95.01-103.00": 0.75,
			}),
			AnnualShortStandard: config.MustRateTable("fha.annual.shortStandard", map[string]float64{
				"0-90.00":      0.15,
				"90.01-103.00": 0.40,
			}),
			AnnualShortHighBalance: config.MustRateTable("fha.annual.shortHighBalance", map[string]float64{
				"0-90.00":      0.40,
				"90.01-103.00": 0.65,
			}),
		},

		VA: config.VATables{
			ActiveFirst: config.MustRateTable("va.fundingFee.active.first", map[string]float64{
				"0-4.99":    2.15,
				"5.00-9.99": 1.50,
				"10.00-100": 1.25,
			}),
			ActiveSubsequent: config.MustRateTable("va.fundingFee.active.subsequent", map[string]float64{
				"0-4.99":    3.30,
				"5.00-9.99": 1.50,
				"10.00-100": 1.25,
			}),
			ReservesFirst: config.MustRateTable("va.fundingFee.reserves.first", map[string]float64{
				"0-4.99":    2.40,
				"5.00-9.99": 1.75,
				"10.00-100": 1.50,
			}),
			ReservesSubsequent: config.MustRateTable("va.fundingFee.reserves.subsequent", map[string]float64{
				"0-4.99":    3.30,
				"5.00-9.99": 1.75,
				"10.00-100": 1.50,
			}),
		},

		USDA: config.USDATables{
			UpfrontPercent: 1.00,
			AnnualPercent:  0.35,
		},

		Title: config.TitleTables{
			OwnerRate: config.MustRateTable("title.ownerRate", map[string]float64{
				"0-250000":           0.60,
				"250000.01-500000":   0.50,
				"500000.01-1000000":  0.40,
				"1000000.01-5000000": 0.30,
			}),
			LenderSimultaneousRate: config.MustRateTable("title.lenderSimultaneousRate", map[string]float64{
				"0-250000":           0.12,
				"250000.01-500000":   0.10,
				"500000.01-1000000":  0.08,
				"1000000.01-5000000": 0.06,
			}),
			WaiverMultiplier: 1.25,
			SimultaneousFee:  75,
		},

		SellerCaps: config.SellerCapTables{
			ConventionalOwnerOccupied: config.MustRateTable("sellerCaps.conventionalOwnerOccupied", map[string]float64{
				"0-75.00":      9,
				"75.01-90.00":  6,
				"90.01-100.00": 3,
			}),
			ConventionalInvestmentPercent: 2,
			FHAPercent:                    6,
			USDAPercent:                   6,
			VAPercent:                     4,
		},

		LenderCreditCapPercent: 3,

		MaxLTV: config.MaxLTVTables{
			Conventional: config.ProgramMaxLTV{RateTerm: 97, CashOut: 80},
			FHA:          config.ProgramMaxLTV{RateTerm: 96.5, CashOut: 80},
			VA:           config.ProgramMaxLTV{RateTerm: 100, CashOut: 90},
			USDA:         config.ProgramMaxLTV{RateTerm: 100, CashOut: 0},
		},

		Prepaids: config.PrepaidTables{
			TaxReserveMonths:       3,
			InsuranceReserveMonths: 2,
			PrepaidInsuranceMonths: 12,
			PrepaidTaxMonths:       6,
		},
	}
	return snap
}

// PurchaseScenario builds a valid conventional purchase scenario that tests
// can tweak per case.
func PurchaseScenario() *scenario.LoanScenario {
	return &scenario.LoanScenario{
		PurchasePrice:      300000,
		DownPaymentPercent: 20,
		AnnualRate:         6.5,
		TermMonths:         360,
		LoanType:           scenario.LoanTypeConventional,
		Occupancy:          scenario.OccupancyPrimary,
		PropertyTax:        scenario.RecurringCost{Basis: scenario.CostBasisRateOfValue, AnnualRate: 1.2},
		HomeInsurance:      scenario.RecurringCost{Basis: scenario.CostBasisFlatMonthly, MonthlyAmount: 125},
		MonthlyHOAFee:      0,
		ClosingDate:        "2026-03-15",
		IncludeOwnersTitle: true,
	}
}

// RefinanceScenario builds a valid conventional rate/term refinance scenario
// that tests can tweak per case.
func RefinanceScenario() *scenario.RefinanceScenario {
	return &scenario.RefinanceScenario{
		LoanScenario: scenario.LoanScenario{
			AppraisedValue: 400000,
			AnnualRate:     5.5,
			TermMonths:     360,
			LoanType:       scenario.LoanTypeConventional,
			Occupancy:      scenario.OccupancyPrimary,
			PropertyTax:    scenario.RecurringCost{Basis: scenario.CostBasisFlatMonthly, MonthlyAmount: 350},
			HomeInsurance:  scenario.RecurringCost{Basis: scenario.CostBasisFlatMonthly, MonthlyAmount: 120},
			ClosingDate:    "2026-04-10",
		},
		OriginalBalance:    280000,
		OriginalRate:       7.25,
		OriginalTermMonths: 360,
		RefinanceType:      scenario.RefinanceRateTerm,
	}
}

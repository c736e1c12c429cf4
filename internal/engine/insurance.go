package engine

import (
	"github.com/homelend/mortgage-engine/internal/config"
	"github.com/homelend/mortgage-engine/internal/errors"
	"github.com/homelend/mortgage-engine/pkg/constants"
	"github.com/homelend/mortgage-engine/pkg/mathutil"
	"github.com/homelend/mortgage-engine/pkg/scenario"
)

// UpfrontInsuranceFee returns the one-time mortgage-insurance fee financed
// into the loan: FHA upfront MIP, the VA funding fee, or the USDA upfront
// guarantee fee. Conventional loans have none. The fee is a percentage of the
// base loan amount.
func UpfrontInsuranceFee(snap *config.Snapshot, sc *scenario.LoanScenario, baseLoan float64) (float64, error) {
	switch sc.LoanType {
	case scenario.LoanTypeConventional:
		return 0, nil

	case scenario.LoanTypeFHA:
		return mathutil.ApplyPercentage(baseLoan, snap.FHA.UpfrontPercent), nil

	case scenario.LoanTypeVA:
		// The disability exemption overrides every other selector.
		if sc.VADisabilityExempt {
			return 0, nil
		}
		table, err := vaFundingFeeTable(snap, sc)
		if err != nil {
			return 0, err
		}
		// Rounded to two decimals so fractional down payments cannot fall
		// into the seams between tier bounds.
		downPayment := mathutil.RoundCents(sc.DownPaymentPercent)
		rate, ok := table.Lookup(downPayment)
		if !ok {
			return 0, errors.NewCalculation("va_funding_fee",
				"no funding-fee tier matches down payment %.2f%%", downPayment)
		}
		return mathutil.ApplyPercentage(baseLoan, rate), nil

	case scenario.LoanTypeUSDA:
		return mathutil.ApplyPercentage(baseLoan, snap.USDA.UpfrontPercent), nil
	}

	return 0, errors.NewCalculation("mortgage_insurance", "unsupported loan type %q", string(sc.LoanType))
}

// MonthlyInsurancePremium returns the recurring monthly mortgage-insurance
// component for the total loan amount at the given LTV. VA loans never carry
// one; conventional loans carry one only above the PMI cutoff.
func MonthlyInsurancePremium(snap *config.Snapshot, sc *scenario.LoanScenario, loanAmount, ltv float64) (float64, error) {
	switch sc.LoanType {
	case scenario.LoanTypeConventional:
		// Strict inequality: 80.00% exactly is PMI-free.
		if ltv <= constants.ConventionalPMICutoffLTV {
			return 0, nil
		}
		rate, ok := snap.Conventional.PMIAnnualRate.Lookup(ltv)
		if !ok {
			return 0, errors.NewCalculation("conventional_pmi", "no PMI tier matches LTV %.2f%%", ltv)
		}
		return mathutil.ApplyPercentage(loanAmount, rate) / constants.MonthsPerYear, nil

	case scenario.LoanTypeFHA:
		table, err := fhaAnnualTable(snap, sc.TermMonths, loanAmount)
		if err != nil {
			return 0, err
		}
		rate, ok := table.Lookup(ltv)
		if !ok {
			return 0, errors.NewCalculation("fha_annual_mip", "no annual MIP tier matches LTV %.2f%%", ltv)
		}
		return mathutil.ApplyPercentage(loanAmount, rate) / constants.MonthsPerYear, nil

	case scenario.LoanTypeVA:
		return 0, nil

	case scenario.LoanTypeUSDA:
		return mathutil.ApplyPercentage(loanAmount, snap.USDA.AnnualPercent) / constants.MonthsPerYear, nil
	}

	return 0, errors.NewCalculation("mortgage_insurance", "unsupported loan type %q", string(sc.LoanType))
}

func vaFundingFeeTable(snap *config.Snapshot, sc *scenario.LoanScenario) (config.RateTable, error) {
	switch sc.VAServiceType {
	case scenario.VAServiceActive:
		if sc.VAUsage == scenario.VAUsageFirst {
			return snap.VA.ActiveFirst, nil
		}
		return snap.VA.ActiveSubsequent, nil
	case scenario.VAServiceReserves:
		if sc.VAUsage == scenario.VAUsageFirst {
			return snap.VA.ReservesFirst, nil
		}
		return snap.VA.ReservesSubsequent, nil
	}
	return config.RateTable{}, errors.NewCalculation("va_funding_fee",
		"unsupported service type %q", string(sc.VAServiceType))
}

// fhaAnnualTable selects one of the four term/balance annual-MIP tables; the
// LTV split lives inside each table.
func fhaAnnualTable(snap *config.Snapshot, termMonths int, loanAmount float64) (config.RateTable, error) {
	if loanAmount > snap.FHA.HighCostLimit {
		return config.RateTable{}, errors.NewCalculation("fha_annual_mip",
			"loan amount %.2f exceeds the high-cost limit %.2f", loanAmount, snap.FHA.HighCostLimit)
	}

	shortTerm := termMonths <= snap.FHA.ShortTermMaxMonths
	highBalance := loanAmount > snap.FHA.StandardLimit

	switch {
	case shortTerm && highBalance:
		return snap.FHA.AnnualShortHighBalance, nil
	case shortTerm:
		return snap.FHA.AnnualShortStandard, nil
	case highBalance:
		return snap.FHA.AnnualLongHighBalance, nil
	default:
		return snap.FHA.AnnualLongStandard, nil
	}
}

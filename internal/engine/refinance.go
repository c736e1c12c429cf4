package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/homelend/mortgage-engine/internal/config"
	"github.com/homelend/mortgage-engine/pkg/constants"
	"github.com/homelend/mortgage-engine/pkg/datetime"
	"github.com/homelend/mortgage-engine/pkg/mathutil"
	"github.com/homelend/mortgage-engine/pkg/payment"
	"github.com/homelend/mortgage-engine/pkg/scenario"
)

// Refinance produces the complete breakdown plus refinance analysis for a
// refinance scenario. A high LTV never rejects the calculation: mortgage
// insurance is priced in whenever the LTV exceeds the program threshold, and
// exceeding the program maximum only attaches an advisory warning.
func (c *Calculator) Refinance(snap *config.Snapshot, sc *scenario.RefinanceScenario) (*RefinanceResult, error) {
	if err := scenario.ValidateRefinance(sc); err != nil {
		return nil, err
	}

	value := sc.AppraisedValue

	payoff, err := c.payoffBalance(sc)
	if err != nil {
		return nil, err
	}

	baseLoan := payoff
	if sc.RefinanceType == scenario.RefinanceCashOut {
		baseLoan += sc.CashOutAmount
	}

	upfrontFee, err := UpfrontInsuranceFee(snap, &sc.LoanScenario, baseLoan)
	if err != nil {
		return nil, err
	}
	prelimLoan := baseLoan + upfrontFee
	prelimLTV := mathutil.RoundCents(mathutil.CalculatePercentage(prelimLoan, value))

	monthlyTax := sc.PropertyTax.MonthlyFor(value)
	monthlyInsurance := sc.HomeInsurance.MonthlyFor(value)

	// Costs are evaluated once against the pre-financing loan amount;
	// financing them afterwards does not re-price percentage fees.
	closingCosts, err := ClosingCosts(snap, &sc.LoanScenario, value, prelimLoan)
	if err != nil {
		return nil, err
	}
	prepaids, err := Prepaids(snap, &sc.LoanScenario, prelimLoan, monthlyTax, monthlyInsurance)
	if err != nil {
		return nil, err
	}
	credits, err := EvaluateCredits(snap, &sc.LoanScenario, value, prelimLoan, prelimLTV,
		closingCosts.Total, discountPointsAmount(&sc.LoanScenario, prelimLoan))
	if err != nil {
		return nil, err
	}

	loanAmount := prelimLoan
	if sc.ZeroCashToClose {
		financed := mathutil.Max(closingCosts.Total+prepaids.Total-credits.Total, 0)
		loanAmount += financed
	}
	ltv := mathutil.RoundCents(mathutil.CalculatePercentage(loanAmount, value))

	result := &RefinanceResult{}

	maxLTV := maxLTVFor(snap, sc.LoanType, sc.RefinanceType)
	if ltv > maxLTV {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"LTV of %.2f%% exceeds the %s maximum of %.2f%% for a %s refinance",
			ltv, string(sc.LoanType), maxLTV, string(sc.RefinanceType)))
	}

	c.logger.Debug("structured refinance loan",
		zap.String("op", "engine.Refinance"),
		zap.String("loanType", string(sc.LoanType)),
		zap.Float64("payoff", payoff),
		zap.Float64("loanAmount", loanAmount),
		zap.Float64("ltv", ltv),
	)

	monthlyMI, err := MonthlyInsurancePremium(snap, &sc.LoanScenario, loanAmount, ltv)
	if err != nil {
		return nil, err
	}

	newPayment := payment.MonthlyPayment(loanAmount, sc.AnnualRate, sc.TermMonths)
	oldPrincipal := sc.OriginalPrincipal
	if oldPrincipal <= 0 {
		oldPrincipal = sc.OriginalBalance
	}
	oldPayment := payment.MonthlyPayment(oldPrincipal, sc.OriginalRate, sc.OriginalTermMonths)

	monthly := MonthlyBreakdown{
		PrincipalInterest: mathutil.RoundCents(newPayment),
		PropertyTax:       mathutil.RoundCents(monthlyTax),
		Insurance:         mathutil.RoundCents(monthlyInsurance),
		MortgageInsurance: mathutil.RoundCents(monthlyMI),
		HOA:               mathutil.RoundCents(sc.MonthlyHOAFee),
	}
	monthly.Total = mathutil.RoundCents(monthly.PrincipalInterest + monthly.PropertyTax +
		monthly.Insurance + monthly.MortgageInsurance + monthly.HOA)

	// Savings compare P&I only: tax, insurance, and HOA do not change as a
	// result of refinancing. Voluntary extra principal counts toward the
	// break-even budget. Costs are net of credits, which the borrower never
	// pays back.
	savings := (oldPayment - newPayment) + sc.ExtraMonthlyPrincipal
	totalCosts := mathutil.Max(closingCosts.Total+prepaids.Total-credits.Total, 0)
	var breakEven float64
	if savings > constants.CurrencyTolerance {
		breakEven = mathutil.RoundCents(totalCosts / savings)
	} else {
		result.Warnings = append(result.Warnings,
			"new payment does not reduce the monthly principal and interest; no break-even point")
	}

	// Cash accounting: cash received and cash to close are mutually
	// exclusive. Cash-out proceeds cover costs first; only the net is
	// disbursed or due.
	var costsDue float64
	if !sc.ZeroCashToClose {
		costsDue = closingCosts.Total + prepaids.Total - credits.Total
	}
	net := mathutil.RoundCents(sc.CashOutAmount - costsDue)
	var cashReceived, cashToClose float64
	if net >= 0 {
		cashReceived = net
	} else {
		cashToClose = -net
	}

	result.CalculationResult = CalculationResult{
		LoanDetails: LoanDetails{
			PurchasePrice:  value,
			BaseLoanAmount: mathutil.RoundCents(baseLoan),
			FinancedFees:   mathutil.RoundCents(upfrontFee),
			LoanAmount:     mathutil.RoundCents(loanAmount),
			DownPayment:    0,
			LTV:            ltv,
			AnnualRate:     sc.AnnualRate,
			TermMonths:     sc.TermMonths,
		},
		Monthly:         monthly,
		ClosingCosts:    closingCosts,
		Prepaids:        prepaids,
		Credits:         credits,
		TotalCashNeeded: cashToClose,
	}
	result.PayoffBalance = mathutil.RoundCents(payoff)
	result.NewLoanAmount = result.LoanDetails.LoanAmount
	result.OldPayment = mathutil.RoundCents(oldPayment)
	result.NewPayment = mathutil.RoundCents(newPayment)
	result.MonthlySavings = mathutil.RoundCents(savings)
	result.BreakEvenMonths = breakEven
	result.MinAppraised = solveLTVTargets(loanAmount, maxLTV)
	result.CashReceived = cashReceived
	result.CashToClose = cashToClose

	return result, nil
}

// payoffBalance estimates the current payoff of the original loan: the
// supplied balance when known, otherwise the original principal
// forward-amortized to the new closing month.
func (c *Calculator) payoffBalance(sc *scenario.RefinanceScenario) (float64, error) {
	if sc.OriginalBalance > 0 {
		return sc.OriginalBalance, nil
	}

	start, err := datetime.ParseMonth(sc.OriginalStartDate)
	if err != nil {
		return 0, err
	}
	closing, err := datetime.ParseClosingDate(sc.ClosingDate)
	if err != nil {
		return 0, err
	}
	elapsed := datetime.MonthsBetween(start, closing)

	balance := payment.RemainingBalance(sc.OriginalPrincipal, sc.OriginalRate, sc.OriginalTermMonths, elapsed)
	c.logger.Debug("estimated payoff balance",
		zap.String("op", "engine.payoffBalance"),
		zap.Int("monthsElapsed", elapsed),
		zap.Float64("balance", balance),
	)
	return balance, nil
}

// solveLTVTargets back-computes, for each target band, the minimum appraised
// value satisfying value = loan / (target/100), rounded up to the nearest
// thousand.
func solveLTVTargets(loanAmount, maxLTV float64) MinAppraisedValues {
	solve := func(target float64) float64 {
		return mathutil.RoundUpToThousand(loanAmount / (target / constants.PercentageMultiplier))
	}
	return MinAppraisedValues{
		At80:   solve(80),
		At90:   solve(90),
		At95:   solve(95),
		AtMax:  solve(maxLTV),
		MaxLTV: maxLTV,
	}
}

func maxLTVFor(snap *config.Snapshot, lt scenario.LoanType, rt scenario.RefinanceType) float64 {
	var program config.ProgramMaxLTV
	switch lt {
	case scenario.LoanTypeConventional:
		program = snap.MaxLTV.Conventional
	case scenario.LoanTypeFHA:
		program = snap.MaxLTV.FHA
	case scenario.LoanTypeVA:
		program = snap.MaxLTV.VA
	case scenario.LoanTypeUSDA:
		program = snap.MaxLTV.USDA
	}
	if rt == scenario.RefinanceCashOut {
		return program.CashOut
	}
	return program.RateTerm
}

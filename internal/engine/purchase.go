package engine

import (
	"go.uber.org/zap"

	"github.com/homelend/mortgage-engine/internal/config"
	"github.com/homelend/mortgage-engine/pkg/mathutil"
	"github.com/homelend/mortgage-engine/pkg/payment"
	"github.com/homelend/mortgage-engine/pkg/scenario"
)

// Calculator runs purchase and refinance calculations against one
// configuration snapshot. It holds no mutable state; concurrent use is safe.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a calculator instance.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Purchase produces the complete breakdown for a purchase scenario.
func (c *Calculator) Purchase(snap *config.Snapshot, sc *scenario.LoanScenario) (*CalculationResult, error) {
	if err := scenario.ValidatePurchase(sc); err != nil {
		return nil, err
	}

	price := sc.PurchasePrice
	downPayment := mathutil.ApplyPercentage(price, sc.DownPaymentPercent)
	baseLoan := price - downPayment

	upfrontFee, err := UpfrontInsuranceFee(snap, sc, baseLoan)
	if err != nil {
		return nil, err
	}
	loanAmount := baseLoan + upfrontFee
	// LTV carries two decimals everywhere the tables do; rounding here keeps
	// an exact 80.00% from drifting across the PMI boundary.
	ltv := mathutil.RoundCents(mathutil.CalculatePercentage(loanAmount, price))

	c.logger.Debug("structured purchase loan",
		zap.String("op", "engine.Purchase"),
		zap.String("loanType", string(sc.LoanType)),
		zap.Float64("baseLoan", baseLoan),
		zap.Float64("financedFee", upfrontFee),
		zap.Float64("ltv", ltv),
	)

	principalInterest := payment.MonthlyPayment(loanAmount, sc.AnnualRate, sc.TermMonths)
	monthlyTax := sc.PropertyTax.MonthlyFor(price)
	monthlyInsurance := sc.HomeInsurance.MonthlyFor(price)

	monthlyMI, err := MonthlyInsurancePremium(snap, sc, loanAmount, ltv)
	if err != nil {
		return nil, err
	}

	monthly := MonthlyBreakdown{
		PrincipalInterest: mathutil.RoundCents(principalInterest),
		PropertyTax:       mathutil.RoundCents(monthlyTax),
		Insurance:         mathutil.RoundCents(monthlyInsurance),
		MortgageInsurance: mathutil.RoundCents(monthlyMI),
		HOA:               mathutil.RoundCents(sc.MonthlyHOAFee),
	}
	monthly.Total = mathutil.RoundCents(monthly.PrincipalInterest + monthly.PropertyTax +
		monthly.Insurance + monthly.MortgageInsurance + monthly.HOA)

	closingCosts, err := ClosingCosts(snap, sc, price, loanAmount)
	if err != nil {
		return nil, err
	}

	prepaids, err := Prepaids(snap, sc, loanAmount, monthlyTax, monthlyInsurance)
	if err != nil {
		return nil, err
	}

	credits, err := EvaluateCredits(snap, sc, price, loanAmount, ltv,
		closingCosts.Total, discountPointsAmount(sc, loanAmount))
	if err != nil {
		return nil, err
	}

	result := &CalculationResult{
		LoanDetails: LoanDetails{
			PurchasePrice:  price,
			BaseLoanAmount: mathutil.RoundCents(baseLoan),
			FinancedFees:   mathutil.RoundCents(upfrontFee),
			LoanAmount:     mathutil.RoundCents(loanAmount),
			DownPayment:    mathutil.RoundCents(downPayment),
			LTV:            ltv,
			AnnualRate:     sc.AnnualRate,
			TermMonths:     sc.TermMonths,
		},
		Monthly:      monthly,
		ClosingCosts: closingCosts,
		Prepaids:     prepaids,
		Credits:      credits,
	}
	result.TotalCashNeeded = mathutil.RoundCents(
		result.LoanDetails.DownPayment + closingCosts.Total + prepaids.Total - credits.Total)

	return result, nil
}

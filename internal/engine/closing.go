package engine

import (
	"github.com/homelend/mortgage-engine/internal/config"
	"github.com/homelend/mortgage-engine/internal/errors"
	"github.com/homelend/mortgage-engine/pkg/mathutil"
	"github.com/homelend/mortgage-engine/pkg/scenario"
)

// Line item names the engine produces itself, beyond configured fees.
const (
	itemDiscountPoints  = "Discount Points"
	itemOwnersTitle     = "Owner's Title Insurance"
	itemLendersTitle    = "Lender's Title Insurance"
	itemSimultaneousFee = "Simultaneous Issuance Fee"
)

// ClosingCosts evaluates every configured fee definition against the
// scenario, adds discount points and the title-insurance items, and totals
// the section. Amounts are rounded to the cent per item.
func ClosingCosts(snap *config.Snapshot, sc *scenario.LoanScenario, propertyValue, loanAmount float64) (ItemizedSection, error) {
	var section ItemizedSection

	for _, fee := range snap.ClosingFees {
		amount, err := evaluateFee(fee, propertyValue, loanAmount)
		if err != nil {
			return section, err
		}
		section.Items = append(section.Items, LineItem{Name: fee.Name, Amount: mathutil.RoundCents(amount)})
	}

	if sc.DiscountPoints > 0 {
		points := mathutil.ApplyPercentage(loanAmount, sc.DiscountPoints)
		section.Items = append(section.Items, LineItem{Name: itemDiscountPoints, Amount: mathutil.RoundCents(points)})
	}

	title, err := TitleInsurance(snap, sc.IncludeOwnersTitle, propertyValue, loanAmount)
	if err != nil {
		return section, err
	}
	if sc.IncludeOwnersTitle {
		section.Items = append(section.Items, LineItem{Name: itemOwnersTitle, Amount: mathutil.RoundCents(title.Owner)})
	}
	section.Items = append(section.Items, LineItem{Name: itemLendersTitle, Amount: mathutil.RoundCents(title.Lender)})
	if title.SimultaneousFee > 0 {
		section.Items = append(section.Items, LineItem{Name: itemSimultaneousFee, Amount: mathutil.RoundCents(title.SimultaneousFee)})
	}

	for _, item := range section.Items {
		section.Total += item.Amount
	}
	section.Total = mathutil.RoundCents(section.Total)
	return section, nil
}

func evaluateFee(fee config.FeeDefinition, propertyValue, loanAmount float64) (float64, error) {
	switch fee.Kind {
	case config.FeeKindFixed:
		return fee.Value, nil
	case config.FeeKindPercentage:
		base, err := resolveBase(fee, propertyValue, loanAmount)
		if err != nil {
			return 0, err
		}
		return mathutil.ApplyPercentage(base, fee.Value), nil
	}
	return 0, errors.NewCalculation("closing_costs", "fee %q has unsupported kind %q", fee.Name, string(fee.Kind))
}

func resolveBase(fee config.FeeDefinition, propertyValue, loanAmount float64) (float64, error) {
	switch fee.Base {
	case config.BasePurchasePrice:
		return propertyValue, nil
	case config.BaseLoanAmount:
		return loanAmount, nil
	}
	return 0, errors.NewCalculation("closing_costs", "fee %q has unsupported base %q", fee.Name, string(fee.Base))
}

// discountPointsAmount returns the dollar cost of the scenario's discount
// points; zero when none are purchased.
func discountPointsAmount(sc *scenario.LoanScenario, loanAmount float64) float64 {
	if sc.DiscountPoints <= 0 {
		return 0
	}
	return mathutil.RoundCents(mathutil.ApplyPercentage(loanAmount, sc.DiscountPoints))
}

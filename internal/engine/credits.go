package engine

import (
	"fmt"

	"github.com/homelend/mortgage-engine/internal/config"
	"github.com/homelend/mortgage-engine/internal/errors"
	"github.com/homelend/mortgage-engine/pkg/mathutil"
	"github.com/homelend/mortgage-engine/pkg/scenario"
)

// MaxSellerContribution returns the maximum allowed seller contribution in
// dollars for the scenario's program, occupancy, and LTV. For VA the cap
// bounds concessions only; EvaluateCredits applies that distinction.
func MaxSellerContribution(snap *config.Snapshot, sc *scenario.LoanScenario, propertyValue, ltv float64) (float64, error) {
	var capPercent float64

	switch sc.LoanType {
	case scenario.LoanTypeConventional:
		if sc.Occupancy == scenario.OccupancyInvestment {
			capPercent = snap.SellerCaps.ConventionalInvestmentPercent
		} else {
			percent, ok := snap.SellerCaps.ConventionalOwnerOccupied.Lookup(ltv)
			if !ok {
				return 0, errors.NewCalculation("seller_contribution_cap",
					"no contribution tier matches LTV %.2f%%", ltv)
			}
			capPercent = percent
		}
	case scenario.LoanTypeFHA:
		capPercent = snap.SellerCaps.FHAPercent
	case scenario.LoanTypeVA:
		capPercent = snap.SellerCaps.VAPercent
	case scenario.LoanTypeUSDA:
		capPercent = snap.SellerCaps.USDAPercent
	default:
		return 0, errors.NewCalculation("seller_contribution_cap",
			"unsupported loan type %q", string(sc.LoanType))
	}

	return mathutil.ApplyPercentage(propertyValue, capPercent), nil
}

// EvaluateCredits itemizes seller and lender credits and attaches advisory
// warnings for over-cap contributions. The inputs are never clamped or
// rejected; the calculation proceeds and the caller sees the warnings.
//
// closingTotal and pointsTotal feed the VA rule: a VA seller may pay all
// closing costs proper without limit, so the credit is applied to them first
// and only the remainder (prepaids and points, the concessions) is measured
// against the cap. pointsTotal is the discount-points share of closingTotal.
func EvaluateCredits(snap *config.Snapshot, sc *scenario.LoanScenario, propertyValue, loanAmount, ltv, closingTotal, pointsTotal float64) (CreditsSection, error) {
	var section CreditsSection

	maxSeller, err := MaxSellerContribution(snap, sc, propertyValue, ltv)
	if err != nil {
		return section, err
	}

	if sc.SellerCredit > 0 {
		section.Items = append(section.Items, LineItem{Name: "Seller Credit", Amount: mathutil.RoundCents(sc.SellerCredit)})

		if sc.LoanType == scenario.LoanTypeVA {
			// Unlimited toward closing costs proper; capped on the rest.
			concessions := mathutil.Max(sc.SellerCredit-(closingTotal-pointsTotal), 0)
			if concessions > maxSeller+0.005 {
				section.Warnings = append(section.Warnings, fmt.Sprintf(
					"seller concessions of %.2f exceed the VA cap of %.2f (%.2f%% of value)",
					concessions, maxSeller, snap.SellerCaps.VAPercent))
			}
		} else if sc.SellerCredit > maxSeller+0.005 {
			section.Warnings = append(section.Warnings, fmt.Sprintf(
				"seller credit of %.2f exceeds the program maximum of %.2f",
				sc.SellerCredit, maxSeller))
		}
	}

	if sc.LenderCredit > 0 {
		section.Items = append(section.Items, LineItem{Name: "Lender Credit", Amount: mathutil.RoundCents(sc.LenderCredit)})

		maxLender := mathutil.ApplyPercentage(loanAmount, snap.LenderCreditCapPercent)
		if sc.LenderCredit > maxLender+0.005 {
			section.Warnings = append(section.Warnings, fmt.Sprintf(
				"lender credit of %.2f exceeds the cap of %.2f (%.2f%% of loan amount)",
				sc.LenderCredit, maxLender, snap.LenderCreditCapPercent))
		}
	}

	for _, item := range section.Items {
		section.Total += item.Amount
	}
	section.Total = mathutil.RoundCents(section.Total)
	return section, nil
}

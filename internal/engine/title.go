package engine

import (
	"github.com/homelend/mortgage-engine/internal/config"
	"github.com/homelend/mortgage-engine/internal/errors"
	"github.com/homelend/mortgage-engine/pkg/mathutil"
)

// TitlePremiums holds the computed title-insurance charges.
type TitlePremiums struct {
	Owner           float64
	Lender          float64
	SimultaneousFee float64
}

// TitleInsurance prices the owner's and lender's title policies. A single
// tier is selected by amount band and its rate applies to the full insured
// amount, not a marginal blend across bands.
//
// When both policies issue together the lender's policy uses the discounted
// simultaneous-issuance table and the flat simultaneous fee applies. When the
// owner's policy is waived the lender's policy is instead priced from the
// owner-tier rate scaled by the waiver multiplier.
func TitleInsurance(snap *config.Snapshot, includeOwners bool, propertyValue, loanAmount float64) (TitlePremiums, error) {
	var premiums TitlePremiums

	if includeOwners {
		ownerRate, ok := snap.Title.OwnerRate.Lookup(propertyValue)
		if !ok {
			return premiums, errors.NewCalculation("owners_title",
				"no owner title tier matches insured amount %.2f", propertyValue)
		}
		premiums.Owner = mathutil.ApplyPercentage(propertyValue, ownerRate)

		lenderRate, ok := snap.Title.LenderSimultaneousRate.Lookup(loanAmount)
		if !ok {
			return premiums, errors.NewCalculation("lenders_title",
				"no simultaneous lender title tier matches loan amount %.2f", loanAmount)
		}
		premiums.Lender = mathutil.ApplyPercentage(loanAmount, lenderRate)
		premiums.SimultaneousFee = snap.Title.SimultaneousFee
		return premiums, nil
	}

	// Owner's policy waived: the lender's policy is priced standalone from
	// the owner-tier rate times the waiver multiplier.
	ownerRate, ok := snap.Title.OwnerRate.Lookup(loanAmount)
	if !ok {
		return premiums, errors.NewCalculation("lenders_title",
			"no owner title tier matches loan amount %.2f", loanAmount)
	}
	premiums.Lender = mathutil.ApplyPercentage(loanAmount, ownerRate) * snap.Title.WaiverMultiplier
	return premiums, nil
}

package engine

import (
	"fmt"

	"github.com/homelend/mortgage-engine/internal/config"
	"github.com/homelend/mortgage-engine/internal/errors"
	"github.com/homelend/mortgage-engine/pkg/constants"
	"github.com/homelend/mortgage-engine/pkg/datetime"
	"github.com/homelend/mortgage-engine/pkg/mathutil"
	"github.com/homelend/mortgage-engine/pkg/scenario"
)

// Prepaids computes prepaid interest plus escrow items. Prepaid interest is
// prorated over the real calendar from the closing date through the end of
// that month, counting the closing day, on a 365-day basis.
func Prepaids(snap *config.Snapshot, sc *scenario.LoanScenario, loanAmount, monthlyTax, monthlyInsurance float64) (ItemizedSection, error) {
	var section ItemizedSection

	closing, err := datetime.ParseClosingDate(sc.ClosingDate)
	if err != nil {
		return section, errors.NewCalculation("prepaid_interest", "cannot parse closing date %q", sc.ClosingDate)
	}

	days := datetime.DaysRemainingInMonth(closing)
	interest := float64(days) * (sc.AnnualRate / constants.PercentageMultiplier / constants.DaysPerYear) * loanAmount
	section.Items = append(section.Items, LineItem{
		Name:   fmt.Sprintf("Prepaid Interest (%d days)", days),
		Amount: mathutil.RoundCents(interest),
	})

	cfg := snap.Prepaids
	if cfg.PrepaidInsuranceMonths > 0 && monthlyInsurance > 0 {
		section.Items = append(section.Items, LineItem{
			Name:   fmt.Sprintf("Prepaid Homeowners Insurance (%d months)", cfg.PrepaidInsuranceMonths),
			Amount: mathutil.RoundCents(float64(cfg.PrepaidInsuranceMonths) * monthlyInsurance),
		})
	}
	if cfg.PrepaidTaxMonths > 0 && monthlyTax > 0 {
		section.Items = append(section.Items, LineItem{
			Name:   fmt.Sprintf("Prepaid Property Tax (%d months)", cfg.PrepaidTaxMonths),
			Amount: mathutil.RoundCents(float64(cfg.PrepaidTaxMonths) * monthlyTax),
		})
	}
	if cfg.TaxReserveMonths > 0 && monthlyTax > 0 {
		section.Items = append(section.Items, LineItem{
			Name:   fmt.Sprintf("Tax Escrow Reserve (%d months)", cfg.TaxReserveMonths),
			Amount: mathutil.RoundCents(float64(cfg.TaxReserveMonths) * monthlyTax),
		})
	}
	if cfg.InsuranceReserveMonths > 0 && monthlyInsurance > 0 {
		section.Items = append(section.Items, LineItem{
			Name:   fmt.Sprintf("Insurance Escrow Reserve (%d months)", cfg.InsuranceReserveMonths),
			Amount: mathutil.RoundCents(float64(cfg.InsuranceReserveMonths) * monthlyInsurance),
		})
	}

	for _, item := range section.Items {
		section.Total += item.Amount
	}
	section.Total = mathutil.RoundCents(section.Total)
	return section, nil
}

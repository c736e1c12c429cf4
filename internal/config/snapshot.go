// Package config defines the configuration snapshot consumed by the engine:
// fee definitions and rate tables for every loan program, parsed and fully
// validated before publication. A snapshot is immutable after Build; readers
// always observe a complete, consistent set of tables.
package config

import (
	"time"

	"github.com/homelend/mortgage-engine/internal/errors"
)

// FeeKind tags how a closing-cost fee value is interpreted.
type FeeKind string

const (
	FeeKindFixed      FeeKind = "fixed"
	FeeKindPercentage FeeKind = "percentage"
)

// CalculationBase names the figure a percentage fee applies to.
type CalculationBase string

const (
	BasePurchasePrice CalculationBase = "purchase_price"
	BaseLoanAmount    CalculationBase = "loan_amount"
	BaseFixed         CalculationBase = "fixed"
)

// FeeDefinition is a declarative closing-cost fee record. Read-only during a
// calculation.
type FeeDefinition struct {
	Name        string
	Kind        FeeKind
	Base        CalculationBase
	Value       float64
	Description string
}

// ConventionalTables holds the conventional-program rate tables.
type ConventionalTables struct {
	// PMIAnnualRate maps LTV bands to annual PMI rates (percent of loan).
	PMIAnnualRate RateTable
}

// FHATables holds the FHA mortgage-insurance-premium tables.
type FHATables struct {
	// UpfrontPercent is the upfront MIP financed into the loan.
	UpfrontPercent float64

	// StandardLimit splits standard-balance from high-balance loans;
	// HighCostLimit is the ceiling above which no tier applies.
	StandardLimit float64
	HighCostLimit float64

	// ShortTermMaxMonths splits short-term from long-term annual tables.
	ShortTermMaxMonths int

	// Annual MIP rate by LTV band, one table per term/balance cell.
	AnnualLongStandard     RateTable
	AnnualLongHighBalance  RateTable
	AnnualShortStandard    RateTable
	AnnualShortHighBalance RateTable
}

// VATables holds the VA funding-fee matrix: service type and usage select a
// table keyed by down-payment percentage bands.
type VATables struct {
	ActiveFirst        RateTable
	ActiveSubsequent   RateTable
	ReservesFirst      RateTable
	ReservesSubsequent RateTable
}

// USDATables holds the USDA guarantee-fee parameters.
type USDATables struct {
	UpfrontPercent float64
	AnnualPercent  float64
}

// TitleTables holds title-insurance rate tiers and simultaneous-issue terms.
type TitleTables struct {
	// OwnerRate and LenderSimultaneousRate map insured-amount bands to
	// premium rates (percent of the full insured amount).
	OwnerRate              RateTable
	LenderSimultaneousRate RateTable

	// WaiverMultiplier scales the owner-tier rate when the owner's policy
	// is waived and the lender's policy is priced standalone.
	WaiverMultiplier float64

	// SimultaneousFee is the flat fee charged when both policies issue
	// together.
	SimultaneousFee float64
}

// SellerCapTables holds the maximum seller-contribution rules.
type SellerCapTables struct {
	// ConventionalOwnerOccupied maps LTV bands to cap percentages for
	// primary and second-home occupancy.
	ConventionalOwnerOccupied RateTable

	ConventionalInvestmentPercent float64
	FHAPercent                    float64
	USDAPercent                   float64

	// VAPercent caps concessions (prepaids and points) only; seller-paid
	// closing costs proper are not limited on VA loans.
	VAPercent float64
}

// ProgramMaxLTV holds the maximum LTV per refinance type for one program. A
// zero CashOut means the program has no cash-out product.
type ProgramMaxLTV struct {
	RateTerm float64
	CashOut  float64
}

// MaxLTVTables holds maximum LTVs per program.
type MaxLTVTables struct {
	Conventional ProgramMaxLTV
	FHA          ProgramMaxLTV
	VA           ProgramMaxLTV
	USDA         ProgramMaxLTV
}

// PrepaidTables holds the configured month counts for escrow reserves and
// prepaid items.
type PrepaidTables struct {
	TaxReserveMonths       int
	InsuranceReserveMonths int
	PrepaidInsuranceMonths int
	PrepaidTaxMonths       int
}

// Snapshot is an immutable, versioned set of fee and rate tables. Every
// calculation reads exactly one snapshot; reloads swap the whole snapshot
// atomically after validation.
type Snapshot struct {
	Version  string
	LoadedAt time.Time

	ClosingFees []FeeDefinition

	Conventional ConventionalTables
	FHA          FHATables
	VA           VATables
	USDA         USDATables

	Title      TitleTables
	SellerCaps SellerCapTables

	LenderCreditCapPercent float64

	MaxLTV   MaxLTVTables
	Prepaids PrepaidTables
}

// Validate checks the snapshot for completeness. A snapshot that fails
// validation is never published; calculation fails closed rather than
// guessing at missing tables.
func (s *Snapshot) Validate() error {
	for i, fee := range s.ClosingFees {
		if fee.Name == "" {
			return errors.NewConfiguration("closingFees", "fee %d has no name", i)
		}
		if fee.Kind != FeeKindFixed && fee.Kind != FeeKindPercentage {
			return errors.NewConfiguration("closingFees", "fee %q has invalid kind %q", fee.Name, string(fee.Kind))
		}
		switch fee.Base {
		case BasePurchasePrice, BaseLoanAmount, BaseFixed:
		default:
			return errors.NewConfiguration("closingFees", "fee %q has invalid base %q", fee.Name, string(fee.Base))
		}
		if fee.Kind == FeeKindPercentage && fee.Base == BaseFixed {
			return errors.NewConfiguration("closingFees", "fee %q is a percentage of a fixed base", fee.Name)
		}
		if fee.Value < 0 {
			return errors.NewConfiguration("closingFees", "fee %q has negative value %.2f", fee.Name, fee.Value)
		}
	}

	if s.Conventional.PMIAnnualRate.Len() == 0 {
		return errors.NewConfiguration("conventional.pmiAnnualRate", "rate table is missing")
	}

	if s.FHA.UpfrontPercent <= 0 {
		return errors.NewConfiguration("fha.upfrontPercent", "must be greater than zero")
	}
	if s.FHA.StandardLimit <= 0 || s.FHA.HighCostLimit <= s.FHA.StandardLimit {
		return errors.NewConfiguration("fha", "balance limits must satisfy 0 < standardLimit < highCostLimit")
	}
	if s.FHA.ShortTermMaxMonths <= 0 {
		return errors.NewConfiguration("fha.shortTermMaxMonths", "must be greater than zero")
	}
	for name, table := range map[string]RateTable{
		"fha.annual.longStandard":     s.FHA.AnnualLongStandard,
		"fha.annual.longHighBalance":  s.FHA.AnnualLongHighBalance,
		"fha.annual.shortStandard":    s.FHA.AnnualShortStandard,
		"fha.annual.shortHighBalance": s.FHA.AnnualShortHighBalance,
	} {
		if table.Len() == 0 {
			return errors.NewConfiguration(name, "rate table is missing")
		}
	}

	for name, table := range map[string]RateTable{
		"va.fundingFee.active.first":        s.VA.ActiveFirst,
		"va.fundingFee.active.subsequent":   s.VA.ActiveSubsequent,
		"va.fundingFee.reserves.first":      s.VA.ReservesFirst,
		"va.fundingFee.reserves.subsequent": s.VA.ReservesSubsequent,
	} {
		if table.Len() == 0 {
			return errors.NewConfiguration(name, "rate table is missing")
		}
	}

	if s.USDA.UpfrontPercent <= 0 || s.USDA.AnnualPercent <= 0 {
		return errors.NewConfiguration("usda", "upfrontPercent and annualPercent must be greater than zero")
	}

	if s.Title.OwnerRate.Len() == 0 {
		return errors.NewConfiguration("title.ownerRate", "rate table is missing")
	}
	if s.Title.LenderSimultaneousRate.Len() == 0 {
		return errors.NewConfiguration("title.lenderSimultaneousRate", "rate table is missing")
	}
	if s.Title.WaiverMultiplier <= 0 {
		return errors.NewConfiguration("title.waiverMultiplier", "must be greater than zero")
	}
	if s.Title.SimultaneousFee < 0 {
		return errors.NewConfiguration("title.simultaneousFee", "cannot be negative")
	}

	if s.SellerCaps.ConventionalOwnerOccupied.Len() == 0 {
		return errors.NewConfiguration("sellerCaps.conventionalOwnerOccupied", "rate table is missing")
	}
	if s.SellerCaps.ConventionalInvestmentPercent <= 0 ||
		s.SellerCaps.FHAPercent <= 0 || s.SellerCaps.USDAPercent <= 0 || s.SellerCaps.VAPercent <= 0 {
		return errors.NewConfiguration("sellerCaps", "program cap percentages must be greater than zero")
	}
	if s.LenderCreditCapPercent <= 0 {
		return errors.NewConfiguration("lenderCreditCapPercent", "must be greater than zero")
	}

	for name, ltv := range map[string]ProgramMaxLTV{
		"maxLTV.conventional": s.MaxLTV.Conventional,
		"maxLTV.fha":          s.MaxLTV.FHA,
		"maxLTV.va":           s.MaxLTV.VA,
		"maxLTV.usda":         s.MaxLTV.USDA,
	} {
		if ltv.RateTerm <= 0 {
			return errors.NewConfiguration(name, "rateTerm max LTV must be greater than zero")
		}
	}

	if s.Prepaids.TaxReserveMonths < 0 || s.Prepaids.InsuranceReserveMonths < 0 ||
		s.Prepaids.PrepaidInsuranceMonths < 0 || s.Prepaids.PrepaidTaxMonths < 0 {
		return errors.NewConfiguration("prepaids", "month counts cannot be negative")
	}

	return nil
}

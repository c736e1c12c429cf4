// Package scenario defines the loan scenario data structures and input
// validation. A scenario is built once per request and is immutable once
// validated; nothing in this package persists state.
package scenario

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/homelend/mortgage-engine/pkg/constants"
)

// LoanType is the closed set of supported loan programs.
type LoanType string

const (
	LoanTypeConventional LoanType = "conventional"
	LoanTypeFHA          LoanType = "fha"
	LoanTypeVA           LoanType = "va"
	LoanTypeUSDA         LoanType = "usda"
)

// Valid reports whether the loan type is one of the supported programs.
func (lt LoanType) Valid() bool {
	switch lt {
	case LoanTypeConventional, LoanTypeFHA, LoanTypeVA, LoanTypeUSDA:
		return true
	}
	return false
}

// Occupancy is the closed set of occupancy types.
type Occupancy string

const (
	OccupancyPrimary    Occupancy = "primary"
	OccupancySecondHome Occupancy = "second_home"
	OccupancyInvestment Occupancy = "investment"
)

// Valid reports whether the occupancy is a supported value.
func (o Occupancy) Valid() bool {
	switch o {
	case OccupancyPrimary, OccupancySecondHome, OccupancyInvestment:
		return true
	}
	return false
}

// RefinanceType distinguishes rate/term refinances from cash-out refinances.
type RefinanceType string

const (
	RefinanceRateTerm RefinanceType = "rate_term"
	RefinanceCashOut  RefinanceType = "cash_out"
)

// Valid reports whether the refinance type is a supported value.
func (rt RefinanceType) Valid() bool {
	switch rt {
	case RefinanceRateTerm, RefinanceCashOut:
		return true
	}
	return false
}

// VAServiceType selects the VA funding-fee row for the borrower's service.
type VAServiceType string

const (
	VAServiceActive   VAServiceType = "active"
	VAServiceReserves VAServiceType = "reserves"
)

// Valid reports whether the service type is a supported value.
func (st VAServiceType) Valid() bool {
	return st == VAServiceActive || st == VAServiceReserves
}

// VAUsage selects first versus subsequent use of the VA benefit.
type VAUsage string

const (
	VAUsageFirst      VAUsage = "first"
	VAUsageSubsequent VAUsage = "subsequent"
)

// Valid reports whether the usage is a supported value.
func (u VAUsage) Valid() bool {
	return u == VAUsageFirst || u == VAUsageSubsequent
}

// CostBasis tags how a recurring cost (tax or insurance) is specified.
type CostBasis string

const (
	// CostBasisRateOfValue specifies an annual rate as a percent of the
	// property value.
	CostBasisRateOfValue CostBasis = "rate_of_value"

	// CostBasisFlatMonthly specifies a flat monthly dollar amount.
	CostBasisFlatMonthly CostBasis = "flat_monthly"
)

// RecurringCost is the tagged union for tax and insurance inputs. Exactly one
// mode applies; the basis tag decides which figure is read, so a stale value
// in the other field can never leak into a calculation.
type RecurringCost struct {
	Basis         CostBasis
	AnnualRate    float64 // percent of property value per year
	MonthlyAmount float64 // flat dollars per month
}

// MonthlyFor resolves the cost to an effective monthly dollar figure for the
// given property value.
func (c RecurringCost) MonthlyFor(propertyValue float64) float64 {
	if c.Basis == CostBasisRateOfValue {
		return propertyValue * c.AnnualRate / constants.PercentageMultiplier / constants.MonthsPerYear
	}
	return c.MonthlyAmount
}

// LoanScenario holds every input for a purchase calculation. For refinance
// scenarios the same fields describe the new loan, with AppraisedValue
// standing in for the purchase price.
type LoanScenario struct {
	PurchasePrice      float64
	AppraisedValue     float64
	DownPaymentPercent float64
	AnnualRate         float64
	TermMonths         int
	LoanType           LoanType
	Occupancy          Occupancy
	PropertyTax        RecurringCost
	HomeInsurance      RecurringCost
	MonthlyHOAFee      float64
	SellerCredit       float64
	LenderCredit       float64
	DiscountPoints     float64
	ClosingDate        string // constants.DateLayout
	VAServiceType      VAServiceType
	VAUsage            VAUsage
	VADisabilityExempt bool
	IncludeOwnersTitle bool
}

// PropertyValue returns the value the scenario is secured against: the
// appraised value when set, otherwise the purchase price.
func (s *LoanScenario) PropertyValue() float64 {
	if s.AppraisedValue > 0 {
		return s.AppraisedValue
	}
	return s.PurchasePrice
}

// RefinanceScenario extends a LoanScenario with the original loan being paid
// off and the refinance structure.
type RefinanceScenario struct {
	LoanScenario `mapstructure:",squash"`

	// OriginalBalance is the payoff balance when known; when zero the
	// payoff is estimated by forward-amortizing OriginalPrincipal.
	OriginalBalance    float64
	OriginalPrincipal  float64
	OriginalRate       float64
	OriginalTermMonths int
	OriginalStartDate  string // constants.MonthLayout

	RefinanceType         RefinanceType
	CashOutAmount         float64
	ZeroCashToClose       bool
	ExtraMonthlyPrincipal float64
}

// LoadPurchaseScenario reads a purchase scenario from a YAML file.
func LoadPurchaseScenario(path string) (*LoanScenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading scenario file, %s", err)
	}

	var s LoanScenario
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode scenario into struct, %s", err)
	}
	return &s, nil
}

// LoadRefinanceScenario reads a refinance scenario from a YAML file.
func LoadRefinanceScenario(path string) (*RefinanceScenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading scenario file, %s", err)
	}

	var s RefinanceScenario
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode scenario into struct, %s", err)
	}
	return &s, nil
}

// Package engine implements the mortgage calculators and the purchase and
// refinance orchestrators. Every calculation is a pure function over the loan
// scenario and one configuration snapshot; results are deterministic to the
// cent and nothing here performs I/O.
package engine

// LoanDetails summarizes the structured loan.
type LoanDetails struct {
	PurchasePrice  float64 `json:"purchase_price"`
	BaseLoanAmount float64 `json:"base_loan_amount"`
	FinancedFees   float64 `json:"financed_upfront_fees"`
	LoanAmount     float64 `json:"loan_amount"`
	DownPayment    float64 `json:"down_payment"`
	LTV            float64 `json:"ltv"`
	AnnualRate     float64 `json:"annual_rate"`
	TermMonths     int     `json:"loan_term"`
}

// MonthlyBreakdown itemizes the monthly housing payment.
type MonthlyBreakdown struct {
	PrincipalInterest float64 `json:"principal_interest"`
	PropertyTax       float64 `json:"property_tax"`
	Insurance         float64 `json:"insurance"`
	MortgageInsurance float64 `json:"mortgage_insurance"`
	HOA               float64 `json:"hoa"`
	Total             float64 `json:"total"`
}

// LineItem is one named dollar amount in an itemized section.
type LineItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ItemizedSection is a list of line items plus their total.
type ItemizedSection struct {
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
}

// CreditsSection itemizes credits and carries advisory warnings. Warnings
// never fail a calculation; an over-cap seller credit flows through with a
// note attached.
type CreditsSection struct {
	Items    []LineItem `json:"items"`
	Total    float64    `json:"total"`
	Warnings []string   `json:"warnings,omitempty"`
}

// CalculationResult is the complete purchase breakdown.
type CalculationResult struct {
	LoanDetails     LoanDetails      `json:"loan_details"`
	Monthly         MonthlyBreakdown `json:"monthly_breakdown"`
	ClosingCosts    ItemizedSection  `json:"closing_costs"`
	Prepaids        ItemizedSection  `json:"prepaids"`
	Credits         CreditsSection   `json:"credits"`
	TotalCashNeeded float64          `json:"total_cash_needed"`
}

// MinAppraisedValues holds the LTV-target solver output: the minimum
// appraised value, rounded up to the nearest thousand, that brings the loan
// to each target LTV.
type MinAppraisedValues struct {
	At80   float64 `json:"80"`
	At90   float64 `json:"90"`
	At95   float64 `json:"95"`
	AtMax  float64 `json:"max"`
	MaxLTV float64 `json:"max_ltv"`
}

// RefinanceResult extends a CalculationResult with refinance analysis. Cash
// received and cash to close are mutually exclusive: at most one is nonzero.
type RefinanceResult struct {
	CalculationResult

	PayoffBalance   float64 `json:"payoff_balance"`
	NewLoanAmount   float64 `json:"new_loan_amount"`
	OldPayment      float64 `json:"old_principal_interest"`
	NewPayment      float64 `json:"new_principal_interest"`
	MonthlySavings  float64 `json:"monthly_savings"`
	BreakEvenMonths float64 `json:"break_even_months"`

	MinAppraised MinAppraisedValues `json:"min_appraised_values"`

	CashReceived float64 `json:"cash_received"`
	CashToClose  float64 `json:"cash_to_close"`

	Warnings []string `json:"warnings,omitempty"`
}

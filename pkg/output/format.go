// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/homelend/mortgage-engine/internal/engine"
)

// PrettyPurchase writes a human-readable purchase breakdown.
func PrettyPurchase(w io.Writer, result *engine.CalculationResult) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "--- Loan Details ---\n")
	_, _ = p.Fprintf(w, "Purchase price:     $%.2f\n", result.LoanDetails.PurchasePrice)
	_, _ = p.Fprintf(w, "Down payment:       $%.2f\n", result.LoanDetails.DownPayment)
	_, _ = p.Fprintf(w, "Loan amount:        $%.2f\n", result.LoanDetails.LoanAmount)
	if result.LoanDetails.FinancedFees > 0 {
		_, _ = p.Fprintf(w, "  incl. financed fees: $%.2f\n", result.LoanDetails.FinancedFees)
	}
	fmt.Fprintf(w, "LTV:                %.2f%%\n", result.LoanDetails.LTV)
	fmt.Fprintf(w, "Rate / term:        %.3f%% / %d months\n",
		result.LoanDetails.AnnualRate, result.LoanDetails.TermMonths)

	fmt.Fprintf(w, "\n--- Monthly Payment ---\n")
	_, _ = p.Fprintf(w, "Principal & interest: $%.2f\n", result.Monthly.PrincipalInterest)
	_, _ = p.Fprintf(w, "Property tax:         $%.2f\n", result.Monthly.PropertyTax)
	_, _ = p.Fprintf(w, "Insurance:            $%.2f\n", result.Monthly.Insurance)
	_, _ = p.Fprintf(w, "Mortgage insurance:   $%.2f\n", result.Monthly.MortgageInsurance)
	_, _ = p.Fprintf(w, "HOA:                  $%.2f\n", result.Monthly.HOA)
	_, _ = p.Fprintf(w, "Total:                $%.2f\n", result.Monthly.Total)

	prettySection(w, p, "Closing Costs", result.ClosingCosts)
	prettySection(w, p, "Prepaids", result.Prepaids)
	prettySection(w, p, "Credits", engine.ItemizedSection{Items: result.Credits.Items, Total: result.Credits.Total})
	for _, warning := range result.Credits.Warnings {
		fmt.Fprintf(w, "  ! %s\n", warning)
	}

	fmt.Fprintf(w, "\n")
	_, _ = p.Fprintf(w, "Total cash needed: $%.2f\n", result.TotalCashNeeded)
}

// PrettyRefinance writes a human-readable refinance breakdown.
func PrettyRefinance(w io.Writer, result *engine.RefinanceResult) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "--- Refinance ---\n")
	_, _ = p.Fprintf(w, "Payoff balance:     $%.2f\n", result.PayoffBalance)
	_, _ = p.Fprintf(w, "New loan amount:    $%.2f\n", result.NewLoanAmount)
	fmt.Fprintf(w, "LTV:                %.2f%%\n", result.LoanDetails.LTV)
	_, _ = p.Fprintf(w, "Old P&I:            $%.2f\n", result.OldPayment)
	_, _ = p.Fprintf(w, "New P&I:            $%.2f\n", result.NewPayment)
	_, _ = p.Fprintf(w, "Monthly savings:    $%.2f\n", result.MonthlySavings)
	if result.BreakEvenMonths > 0 {
		fmt.Fprintf(w, "Break-even:         %.1f months\n", result.BreakEvenMonths)
	}

	fmt.Fprintf(w, "\n--- Minimum Appraised Values ---\n")
	_, _ = p.Fprintf(w, "For 80%% LTV:   $%.2f\n", result.MinAppraised.At80)
	_, _ = p.Fprintf(w, "For 90%% LTV:   $%.2f\n", result.MinAppraised.At90)
	_, _ = p.Fprintf(w, "For 95%% LTV:   $%.2f\n", result.MinAppraised.At95)
	_, _ = p.Fprintf(w, "For %.1f%% LTV: $%.2f (program maximum)\n", result.MinAppraised.MaxLTV, result.MinAppraised.AtMax)

	fmt.Fprintf(w, "\n--- Monthly Payment ---\n")
	_, _ = p.Fprintf(w, "Principal & interest: $%.2f\n", result.Monthly.PrincipalInterest)
	_, _ = p.Fprintf(w, "Mortgage insurance:   $%.2f\n", result.Monthly.MortgageInsurance)
	_, _ = p.Fprintf(w, "Total:                $%.2f\n", result.Monthly.Total)

	prettySection(w, p, "Closing Costs", result.ClosingCosts)
	prettySection(w, p, "Prepaids", result.Prepaids)

	fmt.Fprintf(w, "\n")
	if result.CashReceived > 0 {
		_, _ = p.Fprintf(w, "Cash received by borrower: $%.2f\n", result.CashReceived)
	} else {
		_, _ = p.Fprintf(w, "Cash needed to close: $%.2f\n", result.CashToClose)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "! %s\n", warning)
	}
}

// JSON writes any result as indented JSON.
func JSON(w io.Writer, result interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func prettySection(w io.Writer, p *message.Printer, title string, section engine.ItemizedSection) {
	fmt.Fprintf(w, "\n--- %s ---\n", title)
	for _, item := range section.Items {
		_, _ = p.Fprintf(w, "%-40s $%.2f\n", item.Name, item.Amount)
	}
	_, _ = p.Fprintf(w, "%-40s $%.2f\n", "Total", section.Total)
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/homelend/mortgage-engine/internal/config"
	"github.com/homelend/mortgage-engine/internal/engine"
	"github.com/homelend/mortgage-engine/pkg/testutil"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	store, err := config.NewStoreFromSnapshot(nil, testutil.Snapshot())
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	return NewHandler(nil, store, 0, "test")
}

const purchaseBody = `{
	"purchasePrice": 300000,
	"downPaymentPercent": 20,
	"annualRate": 6.5,
	"termMonths": 360,
	"loanType": "conventional",
	"occupancy": "primary",
	"propertyTax": {"basis": "rate_of_value", "annualRate": 1.2},
	"homeInsurance": {"basis": "flat_monthly", "monthlyAmount": 125},
	"closingDate": "2026-03-15",
	"includeOwnersTitle": true
}`

func TestHandlePurchase(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/purchase", strings.NewReader(purchaseBody))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var result engine.CalculationResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.LoanDetails.LoanAmount != 240000 {
		t.Errorf("loan amount = %.2f, expected 240000", result.LoanDetails.LoanAmount)
	}
	if result.LoanDetails.LTV != 80.00 {
		t.Errorf("LTV = %.2f, expected 80.00", result.LoanDetails.LTV)
	}
}

func TestHandleRefinance(t *testing.T) {
	h := newTestHandler(t)

	body := `{
		"appraisedValue": 400000,
		"annualRate": 5.5,
		"termMonths": 360,
		"loanType": "conventional",
		"occupancy": "primary",
		"propertyTax": {"basis": "flat_monthly", "monthlyAmount": 350},
		"homeInsurance": {"basis": "flat_monthly", "monthlyAmount": 120},
		"closingDate": "2026-04-10",
		"originalBalance": 280000,
		"originalRate": 7.25,
		"originalTermMonths": 360,
		"refinanceType": "rate_term"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/refinance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var result engine.RefinanceResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.PayoffBalance != 280000 {
		t.Errorf("payoff = %.2f, expected 280000", result.PayoffBalance)
	}
	if result.CashReceived != 0 {
		t.Errorf("cash received = %.2f, expected 0 on rate/term", result.CashReceived)
	}
}

func TestHandlePurchaseValidationError(t *testing.T) {
	h := newTestHandler(t)

	body := strings.Replace(purchaseBody, `"purchasePrice": 300000`, `"purchasePrice": -1`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/purchase", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400; body: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Kind  string `json:"kind"`
		Field string `json:"field"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode error payload: %v", err)
	}
	if payload.Kind != "VALIDATION_ERROR" {
		t.Errorf("kind = %q, expected VALIDATION_ERROR", payload.Kind)
	}
	if payload.Field != "purchase_price" {
		t.Errorf("field = %q, expected purchase_price", payload.Field)
	}
}

func TestHandlePurchaseMalformedBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/purchase", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestHandlePurchaseWrongMethod(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/purchase", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, expected 405", rec.Code)
	}
}

func TestHandleConfigAndVersion(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("config status = %d", rec.Code)
	}
	var cfg struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&cfg); err != nil {
		t.Fatalf("failed to decode config payload: %v", err)
	}
	if cfg.Version != "test" {
		t.Errorf("snapshot version = %q, expected test", cfg.Version)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("version status = %d", rec.Code)
	}
}

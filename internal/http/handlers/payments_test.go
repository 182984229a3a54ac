package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestApplePayGrantsPaidCredit(t *testing.T) {
	app, _, credits, _ := newTestApp(&fakeVideoRepo{})

	body := `{"paymentData":"opaque-token","amount":2.5,"transactionIdentifier":"txn-1"}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/v1/payments/apple-pay", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	app.PaymentsApplePay(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if len(credits.paid) != 1 {
		t.Fatalf("paid grants = %d, want 1", len(credits.paid))
	}
	grant := credits.paid[0]
	if grant.amount != 25 {
		t.Fatalf("granted amount = %d, want 25", grant.amount)
	}
	if grant.purchaseID != "txn-1" {
		t.Fatalf("purchase id = %q, want %q", grant.purchaseID, "txn-1")
	}
}

func TestApplePayValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing payment data", `{"amount":1.0}`},
		{"blank payment data", `{"paymentData":"  ","amount":1.0}`},
		{"zero amount", `{"paymentData":"token","amount":0}`},
		{"negative amount", `{"paymentData":"token","amount":-3}`},
		{"invalid json", `{`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, _, credits, _ := newTestApp(&fakeVideoRepo{})

			req := authedRequest(httptest.NewRequest(http.MethodPost, "/v1/payments/apple-pay", strings.NewReader(tc.body)), "user-1")
			rec := httptest.NewRecorder()
			app.PaymentsApplePay(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if len(credits.paid) != 0 {
				t.Fatalf("paid grants = %d, want 0", len(credits.paid))
			}
		})
	}
}

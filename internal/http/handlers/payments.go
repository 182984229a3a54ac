package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"

	"videoserver/internal/domain"
)

type applePayRequest struct {
	PaymentData           string  `json:"paymentData"`
	Amount                float64 `json:"amount"`
	TransactionIdentifier string  `json:"transactionIdentifier"`
}

// PaymentsApplePay validates an Apple Pay token shape and credits the
// account. Token decryption against the PSP is not performed here; the
// endpoint accepts the opaque payment data and converts the charged amount
// into paid credit.
func (a *App) PaymentsApplePay(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	var req applePayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.PaymentData) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "paymentData required")
		return
	}
	if req.Amount <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "amount must be positive")
		return
	}

	creditsToAdd := int(math.Round(req.Amount * domain.PaidCreditsPerDollar))
	if creditsToAdd <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "amount too small")
		return
	}

	purchaseID := strings.TrimSpace(req.TransactionIdentifier)
	if err := a.Credits.GrantPaid(r.Context(), userID, creditsToAdd, "apple_pay", purchaseID); err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("apple pay grant failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to apply payment")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":       true,
		"credits_added": creditsToAdd,
	})
}

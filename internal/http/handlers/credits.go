package handlers

import (
	"net/http"
)

// CreditsBalance returns the caller's credit account. The account is
// created with zero balances on first read.
func (a *App) CreditsBalance(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	account, err := a.Credits.Get(r.Context(), userID)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("load credit account failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load credits")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":     true,
		"gift_credit": account.GiftCredit,
		"paid_credit": account.PaidCredit,
		"total":       account.Total(),
	})
}

package handlers

import (
	"net/http"

	"videoserver/internal/domain"
)

// ConfigShow exposes the client-facing constants and whether the render
// provider is configured. No secrets leave this endpoint.
func (a *App) ConfigShow(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"credits": map[string]any{
			"weekly_gift":        domain.WeeklyGiftCredit,
			"activation_gift":    domain.ActivationGiftCredit,
			"generation_cost":    domain.VideoGenerationCost,
			"per_dollar":         domain.PaidCreditsPerDollar,
			"purchase_products":  domain.PurchaseCreditAmounts,
			"gift_interval_days": domain.GiftRegrantDays,
		},
		"video": map[string]any{
			"max_duration_seconds": domain.VideoMaxDurationSeconds,
			"max_script_words":     domain.VideoMaxScriptWords,
		},
		"upstream_configured": a.UpstreamConfigured,
	})
}

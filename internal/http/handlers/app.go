package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"videoserver/internal/domain"
	"videoserver/internal/middleware"
	"videoserver/internal/reconcile"
)

type App struct {
	Logger   zerolog.Logger
	Users    domain.UserRepository
	Credits  domain.CreditRepository
	Feedback domain.FeedbackRepository
	Products domain.ProductRepository

	Reconciler *reconcile.Engine

	// UpstreamConfigured reports whether a render provider API key is
	// present. Exposed on the config endpoint so clients can degrade.
	UpstreamConfigured bool
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, codeStr, msg string) {
	a.json(w, code, map[string]any{
		"success": false,
		"error":   map[string]string{"code": codeStr, "message": msg},
	})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

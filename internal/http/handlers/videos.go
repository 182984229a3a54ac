package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"videoserver/internal/domain"
	"videoserver/internal/reconcile"
	"videoserver/pkg/words"
)

// VideosList returns the caller's videos with statuses reconciled against
// the render provider.
func (a *App) VideosList(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	views, err := a.Reconciler.ListForOwner(r.Context(), userID)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("list videos failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load videos")
		return
	}
	if views == nil {
		views = []reconcile.VideoView{}
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"videos":  views,
		"count":   len(views),
	})
}

type validateScriptRequest struct {
	Script string `json:"script"`
}

// VideosValidateScript checks a script against the duration limits before
// the client submits a generation job.
func (a *App) VideosValidateScript(w http.ResponseWriter, r *http.Request) {
	var req validateScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	script := strings.TrimSpace(req.Script)
	if script == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "script required")
		return
	}

	count := words.Count(script)
	a.json(w, http.StatusOK, map[string]any{
		"success":    true,
		"valid":      count <= domain.VideoMaxScriptWords,
		"word_count": count,
		"max_words":  domain.VideoMaxScriptWords,
	})
}

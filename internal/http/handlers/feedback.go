package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"videoserver/internal/domain"
)

type feedbackRequest struct {
	Body string `json:"body"`
}

// FeedbackCreate stores a feedback entry. The profile lookup is best
// effort; a missing or unreadable profile never blocks submission.
func (a *App) FeedbackCreate(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	body := strings.TrimSpace(req.Body)
	if body == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "feedback body required")
		return
	}

	fb := &domain.Feedback{
		ID:        uuid.NewString(),
		UserID:    userID,
		Body:      body,
		Status:    domain.FeedbackStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if user, err := a.Users.GetByID(r.Context(), userID); err == nil {
		fb.Email = user.Email
		fb.DisplayName = user.DisplayName
	}

	if err := a.Feedback.Create(r.Context(), fb); err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("store feedback failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to store feedback")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"success":     true,
		"feedback_id": fb.ID,
	})
}

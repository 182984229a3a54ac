package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"videoserver/internal/domain"
)

type signupRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photo_url"`
}

// UsersSignup creates or refreshes the caller's profile and ensures a
// zero-balance credit account exists for them.
func (a *App) UsersSignup(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		// Anonymous sign-in providers omit the address. The profile is
		// still created; feedback enrichment just has less to work with.
		a.Logger.Warn().Str("user_id", userID).Msg("signup without email")
	}

	user := &domain.User{
		ID:          userID,
		DisplayName: strings.TrimSpace(req.DisplayName),
		Email:       email,
		PhotoURL:    strings.TrimSpace(req.PhotoURL),
	}
	if err := a.Users.Create(r.Context(), user); err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("create user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create profile")
		return
	}

	if _, err := a.Credits.Get(r.Context(), userID); err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("ensure credit account failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to initialize credits")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"success": true,
		"user_id": userID,
	})
}

// UsersMe returns the caller's stored profile.
func (a *App) UsersMe(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	user, err := a.Users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "profile not found")
			return
		}
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("load user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":      true,
		"user_id":      user.ID,
		"display_name": user.DisplayName,
		"email":        user.Email,
		"photo_url":    user.PhotoURL,
		"entitlements": user.Entitlements,
	})
}

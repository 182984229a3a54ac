package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"videoserver/internal/domain"
)

func TestFeedbackCreateEnrichesFromProfile(t *testing.T) {
	app, users, _, feedback := newTestApp(&fakeVideoRepo{})
	users.users = map[string]*domain.User{
		"user-1": {ID: "user-1", Email: "u@example.com", DisplayName: "U"},
	}

	body := `{"body":"  the app is great  "}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/v1/feedback", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	app.FeedbackCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if len(feedback.stored) != 1 {
		t.Fatalf("stored = %d, want 1", len(feedback.stored))
	}
	fb := feedback.stored[0]
	if fb.Body != "the app is great" {
		t.Fatalf("body = %q, want trimmed", fb.Body)
	}
	if fb.Email != "u@example.com" || fb.DisplayName != "U" {
		t.Fatalf("profile not attached: %+v", fb)
	}
	if fb.Status != domain.FeedbackStatusPending {
		t.Fatalf("status = %q, want pending", fb.Status)
	}
	if fb.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestFeedbackCreateWithoutProfile(t *testing.T) {
	app, _, _, feedback := newTestApp(&fakeVideoRepo{})

	req := authedRequest(httptest.NewRequest(http.MethodPost, "/v1/feedback", strings.NewReader(`{"body":"hi"}`)), "user-1")
	rec := httptest.NewRecorder()
	app.FeedbackCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if len(feedback.stored) != 1 || feedback.stored[0].Email != "" {
		t.Fatalf("expected unenriched entry, got %+v", feedback.stored)
	}
}

func TestFeedbackCreateRejectsEmptyBody(t *testing.T) {
	app, _, _, feedback := newTestApp(&fakeVideoRepo{})

	req := authedRequest(httptest.NewRequest(http.MethodPost, "/v1/feedback", strings.NewReader(`{"body":"   "}`)), "user-1")
	rec := httptest.NewRecorder()
	app.FeedbackCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(feedback.stored) != 0 {
		t.Fatalf("stored = %d, want 0", len(feedback.stored))
	}
}

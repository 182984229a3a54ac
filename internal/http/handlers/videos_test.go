package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"videoserver/internal/domain"
)

func TestVideosListReturnsOwnerTasks(t *testing.T) {
	now := time.Now().UTC()
	videos := &fakeVideoRepo{tasks: []domain.VideoTask{
		{ID: "vid-1", OwnerID: "user-1", Status: domain.VideoStatusCompleted, CreatedAt: now},
		{ID: "vid-2", OwnerID: "user-1", Status: domain.VideoStatusFailed, CreatedAt: now.Add(-time.Hour)},
		{ID: "vid-3", OwnerID: "someone-else", Status: domain.VideoStatusCompleted, CreatedAt: now},
	}}
	app, _, _, _ := newTestApp(videos)

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/v1/videos", nil), "user-1")
	rec := httptest.NewRecorder()
	app.VideosList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Videos  []struct {
			VideoID string `json:"video_id"`
		} `json:"videos"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Count != 2 || len(resp.Videos) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Videos[0].VideoID != "vid-1" {
		t.Fatalf("first video = %q, want newest vid-1", resp.Videos[0].VideoID)
	}
}

func TestVideosListEmptyIsArrayNotNull(t *testing.T) {
	app, _, _, _ := newTestApp(&fakeVideoRepo{})

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/v1/videos", nil), "user-1")
	rec := httptest.NewRecorder()
	app.VideosList(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `"videos":[]`) {
		t.Fatalf("expected empty array in body, got %s", body)
	}
}

func TestVideosListRequiresAuth(t *testing.T) {
	app, _, _, _ := newTestApp(&fakeVideoRepo{})

	rec := httptest.NewRecorder()
	app.VideosList(rec, httptest.NewRequest(http.MethodGet, "/v1/videos", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestVideosValidateScript(t *testing.T) {
	app, _, _, _ := newTestApp(&fakeVideoRepo{})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantValid  bool
	}{
		{"short script passes", `{"script":"hello world"}`, http.StatusOK, true},
		{"long script fails", `{"script":"` + strings.Repeat("word ", domain.VideoMaxScriptWords+1) + `"}`, http.StatusOK, false},
		{"empty script rejected", `{"script":"  "}`, http.StatusBadRequest, false},
		{"invalid json rejected", `{`, http.StatusBadRequest, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := authedRequest(httptest.NewRequest(http.MethodPost, "/v1/videos/validate-script", strings.NewReader(tc.body)), "user-1")
			rec := httptest.NewRecorder()
			app.VideosValidateScript(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantStatus != http.StatusOK {
				return
			}
			var resp struct {
				Valid bool `json:"valid"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Valid != tc.wantValid {
				t.Fatalf("valid = %v, want %v", resp.Valid, tc.wantValid)
			}
		})
	}
}
